package dredge

import "dredgesim/internal/core"

// Scenario presets. Each registers a factory under its name so the
// cmds can pick one by flag. Explicit keys in the config map win over
// the preset values.

func init() {
	core.Register("harbor", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New("harbor", c)
	})

	// A wide, soft channel: generous swing room, mostly silt and sand.
	core.Register("channel", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Terrain.Params.ChannelWidthFrac = 0.9
		if _, ok := cfg["rock_chance"]; !ok {
			c.Terrain.Params.RockChance = 0.01
		}
		c.normalize()
		return New("channel", c)
	})

	// A shoal laced with boulders: shallow band, frequent rock.
	core.Register("rockbar", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		if _, ok := cfg["rock_chance"]; !ok {
			c.Terrain.Params.RockChance = 0.12
		}
		c.Terrain.Params.MinDepthFt = 3
		c.Terrain.Params.MaxDepthFt = 8
		c.normalize()
		return New("rockbar", c)
	})
}
