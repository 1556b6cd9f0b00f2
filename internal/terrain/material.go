package terrain

// Material enumerates the soil classes a cell can hold.
type Material uint8

const (
	MaterialWater Material = iota
	MaterialSilt
	MaterialSand
	MaterialClay
	MaterialRock

	materialCount
)

// Hardness returns the cutting-resistance scalar in [0, 1] for the
// material. Harder material cuts slower and loads the winches more.
func (m Material) Hardness() float64 {
	switch m {
	case MaterialSilt:
		return 0.15
	case MaterialSand:
		return 0.35
	case MaterialClay:
		return 0.60
	case MaterialRock:
		return 0.95
	default:
		return 0
	}
}

// SpecificGravity returns the in-situ specific gravity of the material.
func (m Material) SpecificGravity() float64 {
	switch m {
	case MaterialSilt:
		return 1.90
	case MaterialSand:
		return 2.00
	case MaterialClay:
		return 2.10
	case MaterialRock:
		return 2.65
	default:
		return 1.0
	}
}

func (m Material) String() string {
	switch m {
	case MaterialWater:
		return "water"
	case MaterialSilt:
		return "silt"
	case MaterialSand:
		return "sand"
	case MaterialClay:
		return "clay"
	case MaterialRock:
		return "rock"
	default:
		return "unknown"
	}
}
