package terrain

import "dredgesim/internal/core"

// hash2 is a bespoke integer-mixing function producing a deterministic
// value in [0, 1) for a lattice coordinate and seed. Idempotent per
// (x, y, seed), so regenerating any region reproduces it exactly.
func hash2(x, y int, seed int64) float64 {
	h := int64(x)*374761393 + int64(y)*668265263 + seed*1442695040888963407
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(uint64(h)&0xffffff) / float64(1<<24)
}

// zoneAt samples the coarse geological zone value for a field
// coordinate: one hash per lattice point, smooth-step bilinear blend in
// between. This yields broad, gradually varying strata instead of
// per-cell noise.
func (g *Grid) zoneAt(fieldRow, col int) float64 {
	zr := g.cfg.Params.ZoneRows
	zc := g.cfg.Params.ZoneCols
	if zr <= 0 {
		zr = 1
	}
	if zc <= 0 {
		zc = 1
	}

	r0 := floorDiv(fieldRow, zr)
	c0 := floorDiv(col, zc)
	fr := float64(fieldRow-r0*zr) / float64(zr)
	fc := float64(col-c0*zc) / float64(zc)
	fr = core.SmoothStep(fr)
	fc = core.SmoothStep(fc)

	v00 := hash2(r0, c0, g.cfg.Seed)
	v01 := hash2(r0, c0+1, g.cfg.Seed)
	v10 := hash2(r0+1, c0, g.cfg.Seed)
	v11 := hash2(r0+1, c0+1, g.cfg.Seed)

	top := v00 + (v01-v00)*fc
	bottom := v10 + (v11-v10)*fc
	return top + (bottom-top)*fr
}

// generateCell produces the undisturbed cell for a field coordinate.
func (g *Grid) generateCell(fieldRow, col int) Cell {
	zone := g.zoneAt(fieldRow, col)

	material := MaterialSilt
	switch {
	case zone >= 0.65:
		material = MaterialClay
	case zone >= 0.35:
		material = MaterialSand
	}

	// Sparse high-frequency sample for isolated boulders; independent of
	// the zone lattice so inclusions do not follow strata boundaries.
	if hash2(fieldRow*7919, col*104729, g.cfg.Seed^0x5eed) < g.cfg.Params.RockChance {
		material = MaterialRock
	}

	return Cell{
		BaseDepth: g.baseDepthAt(col, zone),
		CutDepth:  0,
		Material:  material,
	}
}

// baseDepthAt derives the seabed depth from the channel cross-profile
// (deeper toward the channel centerline) plus the zone variation,
// clamped to the configured shoal band.
func (g *Grid) baseDepthAt(col int, zone float64) float64 {
	p := g.cfg.Params
	halfWidth := float64(g.cfg.Width) * p.ChannelWidthFrac / 2
	if halfWidth <= 0 {
		halfWidth = 1
	}
	center := float64(g.cfg.Width-1) / 2
	offset := float64(col) - center
	if offset < 0 {
		offset = -offset
	}
	channel := core.SmoothStep(1 - offset/halfWidth)

	depth := p.MinDepthFt + (p.MaxDepthFt-p.MinDepthFt)*(0.65*channel+0.35*zone)
	return core.Clamp(depth, p.MinDepthFt, p.MaxDepthFt)
}

// floorDiv divides rounding toward negative infinity so lattice lookups
// stay continuous across zero when the field row goes negative after
// repeated advances.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
