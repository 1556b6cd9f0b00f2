package terrain

import "strconv"

// Params holds tunables for procedural seabed generation.
type Params struct {
	// Zone lattice spacing in cells. One noise sample per lattice point,
	// smooth-interpolated across the full grid.
	ZoneRows int
	ZoneCols int

	// RockChance is the per-cell probability of an isolated rock
	// inclusion overriding the zone material.
	RockChance float64

	// Shoal depth band for the undisturbed seabed, in feet.
	MinDepthFt float64
	MaxDepthFt float64

	// ChannelWidthFrac is the fraction of the grid width occupied by the
	// deeper navigable channel centered on the grid.
	ChannelWidthFrac float64

	// SternRows is the number of rows at the near edge treated as open
	// water behind the spud; they are pre-cleared and never deformed.
	SternRows int

	// StepRows is the number of rows evicted/synthesised per advance.
	StepRows int
}

// Config controls terrain grid dimensions and generation.
type Config struct {
	Width  int
	Height int

	// CellFt is the world-space edge length of one cell in feet.
	CellFt float64

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  96,
		Height: 128,
		CellFt: 2,
		Seed:   1337,
		Params: Params{
			ZoneRows:         8,
			ZoneCols:         8,
			RockChance:       0.03,
			MinDepthFt:       3,
			MaxDepthFt:       12,
			ChannelWidthFrac: 0.7,
			SternRows:        10,
			StepRows:         4,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["cell_ft"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CellFt = parsed
		}
	}
	if v, ok := cfg["rock_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.RockChance = parsed
		}
	}
	if v, ok := cfg["step_rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.StepRows = parsed
		}
	}
	if v, ok := cfg["stern_rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SternRows = parsed
		}
	}
	return c
}
