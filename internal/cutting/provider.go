// Package cutting removes material from the terrain under the rotating
// cutter head and reports the removed volume to the hydraulic model.
package cutting

// SoilProvider is the boundary between the hydraulic model and whatever
// supplies soil. Cut excavates around the cutter head for one tick and
// returns the volume removed in cubic feet; HardnessAt reports the
// hardness currently under the head, or zero when the cutter is above
// the material surface.
type SoilProvider interface {
	Cut(angleDeg, depthFt, cutterRPM, swingVelDegSec, dt float64) float64
	HardnessAt(angleDeg, depthFt float64) float64
}

// NoopProvider is the default provider used when no terrain is
// configured: it never cuts and reports a fixed hardness.
type NoopProvider struct {
	Hardness float64
}

// Cut reports zero volume removed.
func (NoopProvider) Cut(angleDeg, depthFt, cutterRPM, swingVelDegSec, dt float64) float64 {
	return 0
}

// HardnessAt reports the fixed hardness.
func (p NoopProvider) HardnessAt(angleDeg, depthFt float64) float64 {
	return p.Hardness
}
