package vessel

import "strconv"

// Config holds the mechanical limits and slew rates of the dredge.
type Config struct {
	// LadderLengthFt is the pivot-to-cutter length of the ladder.
	LadderLengthFt float64

	// Swing bounds and rates. SwingMaxVelDegSec is also the reference
	// swing speed the hydraulic model normalises against.
	SwingLimitDeg     float64
	SwingMaxVelDegSec float64
	SwingAccelDegSec2 float64

	LadderMinDeg     float64
	LadderMaxDeg     float64
	LadderRateDegSec float64

	CutterMaxRPM     float64
	CutterRateRPMSec float64

	PumpMaxRPM     float64
	PumpRateRPMSec float64
}

// DefaultConfig returns the standard 24-inch trainer vessel.
func DefaultConfig() Config {
	return Config{
		LadderLengthFt:    45,
		SwingLimitDeg:     35,
		SwingMaxVelDegSec: 6,
		SwingAccelDegSec2: 4,
		LadderMinDeg:      2,
		LadderMaxDeg:      75,
		LadderRateDegSec:  5,
		CutterMaxRPM:      30,
		CutterRateRPMSec:  8,
		PumpMaxRPM:        450,
		PumpRateRPMSec:    140,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	set := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	set("ladder_length_ft", &c.LadderLengthFt)
	set("swing_limit_deg", &c.SwingLimitDeg)
	set("swing_max_vel", &c.SwingMaxVelDegSec)
	set("cutter_max_rpm", &c.CutterMaxRPM)
	set("pump_max_rpm", &c.PumpMaxRPM)
	return c
}
