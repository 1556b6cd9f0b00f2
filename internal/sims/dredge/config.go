package dredge

import (
	"strconv"

	"dredgesim/internal/cutting"
	"dredgesim/internal/hydro"
	"dredgesim/internal/terrain"
	"dredgesim/internal/vessel"
)

// Config aggregates the per-component configurations for one scenario.
type Config struct {
	Terrain terrain.Config
	Vessel  vessel.Config
	Cutting cutting.Config
	Hydro   hydro.Config

	// AdvanceCooldownSec is how long the advance status flag stays set
	// after a step command.
	AdvanceCooldownSec float64
}

// DefaultConfig returns the standard scenario configuration with the
// component normalisers cross-wired to the vessel limits.
func DefaultConfig() Config {
	c := Config{
		Terrain:            terrain.DefaultConfig(),
		Vessel:             vessel.DefaultConfig(),
		Cutting:            cutting.DefaultConfig(),
		Hydro:              hydro.DefaultConfig(),
		AdvanceCooldownSec: 1.5,
	}
	c.normalize()
	return c
}

// normalize keeps the cutting and hydraulic normalisers consistent with
// the vessel limits so a scenario override cannot desynchronise them.
func (c *Config) normalize() {
	c.Cutting.LadderLengthFt = c.Vessel.LadderLengthFt
	c.Cutting.MaxCutterRPM = c.Vessel.CutterMaxRPM
	c.Cutting.RefSwingVelDegSec = c.Vessel.SwingMaxVelDegSec

	c.Hydro.LadderLengthFt = c.Vessel.LadderLengthFt
	c.Hydro.MaxCutterRPM = c.Vessel.CutterMaxRPM
	c.Hydro.MaxPumpRPM = c.Vessel.PumpMaxRPM
	c.Hydro.RefSwingVelDegSec = c.Vessel.SwingMaxVelDegSec
	c.Hydro.SwingLimitDeg = c.Vessel.SwingLimitDeg
	c.Hydro.MaxUsefulDepthFt = c.Cutting.MaxUsefulDepthFt
}

// FromMap populates the config from a string map (flag-style key/value
// pairs), delegating component keys to their packages.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Terrain = terrain.FromMap(cfg)
	c.Vessel = vessel.FromMap(cfg)
	if v, ok := cfg["advance_cooldown"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.AdvanceCooldownSec = parsed
		}
	}
	c.normalize()
	return c
}
