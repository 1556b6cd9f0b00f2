package hydro

// Config holds the pipeline geometry and normalising constants of the
// hydraulic model.
type Config struct {
	WaterSG float64

	PipelineLengthFt float64
	PipeDiameterIn   float64
	FrictionFactor   float64
	StaticLiftFt     float64

	// MaxVelocityFtSec is the slurry velocity at full pump speed.
	MaxVelocityFtSec float64

	// MaxCv is the solids-concentration ceiling for the softest material.
	MaxCv float64

	// Normalisers for the vessel fractions. Zero values yield zero
	// fractions rather than non-finite results.
	MaxCutterRPM      float64
	MaxPumpRPM        float64
	RefSwingVelDegSec float64
	MaxUsefulDepthFt  float64
	SwingLimitDeg     float64
	LadderLengthFt    float64

	VacuumMinPSI    float64
	VacuumMaxPSI    float64
	MaxDischargePSI float64

	// JitterPSI is the amplitude of the load-dependent noise injected
	// into the winch and cutter pressure readings.
	JitterPSI float64
}

// DefaultConfig returns a 24-inch pipeline matched to the default vessel.
func DefaultConfig() Config {
	return Config{
		WaterSG:           1.0,
		PipelineLengthFt:  1000,
		PipeDiameterIn:    24,
		FrictionFactor:    0.018,
		StaticLiftFt:      18,
		MaxVelocityFtSec:  18,
		MaxCv:             0.35,
		MaxCutterRPM:      30,
		MaxPumpRPM:        450,
		RefSwingVelDegSec: 6,
		MaxUsefulDepthFt:  30,
		SwingLimitDeg:     35,
		LadderLengthFt:    45,
		VacuumMinPSI:      -20,
		VacuumMaxPSI:      5,
		MaxDischargePSI:   150,
		JitterPSI:         14,
	}
}
