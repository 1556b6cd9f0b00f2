package core

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract the frame scheduler drives. Step
// receives the wall-clock delta in seconds; implementations must accept
// any non-negative dt and stay stable across long pauses.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step(dt float64)
	Cells() []uint8
}

// Factory constructs a Sim for a named scenario using an optional
// configuration map.
type Factory func(cfg map[string]string) Sim

var scenarios = map[string]Factory{}

// Register adds a scenario factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenarios[name] = f
}

// Scenarios exposes the registry of available scenario factories.
func Scenarios() map[string]Factory {
	return scenarios
}
