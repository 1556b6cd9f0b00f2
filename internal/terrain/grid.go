package terrain

import "dredgesim/internal/core"

// MaxCutFt is the maximum depth of material that can be excavated from
// a single cell before it counts as fully cleared.
const MaxCutFt = 12.0

// Cell is one position of the soil grid.
type Cell struct {
	// BaseDepth is the undisturbed seabed depth in feet, fixed at
	// generation time.
	BaseDepth float64
	// CutDepth is the cumulative excavated depth in [0, MaxCutFt].
	CutDepth float64
	// Material is fixed at generation time.
	Material Material
}

// TotalDepth is the depth the cutter engagement test sees.
func (c Cell) TotalDepth() float64 {
	return c.BaseDepth + c.CutDepth
}

// Cleared reports whether the cell has been fully excavated.
func (c Cell) Cleared() bool {
	return c.CutDepth >= MaxCutFt
}

// Sample is the result of a world-space terrain query. Out-of-bounds
// queries return the open-water sentinel instead of an error.
type Sample struct {
	BaseDepth float64
	CutDepth  float64
	Material  Material
}

// waterSample is the sentinel returned for queries outside the grid or
// behind the stern.
var waterSample = Sample{BaseDepth: 0, CutDepth: MaxCutFt, Material: MaterialWater}

// Grid owns the 2-D soil cell array covering the working area. Row 0 is
// the far (uncut) edge; rows grow toward the vessel, with the stern
// rows at the bottom pre-cleared as open water. The spud anchor sits on
// the stern boundary at the horizontal center.
type Grid struct {
	cfg   Config
	w, h  int
	cells []Cell

	// advanced counts total rows shifted this session so regeneration
	// never revisits a field coordinate already generated.
	advanced int

	display []uint8
}

// New builds a grid for the provided configuration. Reset must be
// called before use.
func New(cfg Config) *Grid {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	if cfg.CellFt <= 0 {
		cfg.CellFt = 1
	}
	total := cfg.Width * cfg.Height
	return &Grid{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		cells:   make([]Cell, total),
		display: make([]uint8, total),
	}
}

// Size reports the grid dimensions in cells.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// CellFt returns the world-space cell edge length in feet.
func (g *Grid) CellFt() float64 { return g.cfg.CellFt }

// Cells exposes the display buffer for rendering.
func (g *Grid) Cells() []uint8 { return g.display }

// RowsAdvanced returns the total rows shifted since the last Reset.
func (g *Grid) RowsAdvanced() int { return g.advanced }

// SpudX returns the world X of the swing pivot.
func (g *Grid) SpudX() float64 {
	return float64(g.w) * g.cfg.CellFt / 2
}

// SpudY returns the world Y of the swing pivot, on the stern boundary.
func (g *Grid) SpudY() float64 {
	return float64(g.sternRow()) * g.cfg.CellFt
}

func (g *Grid) sternRow() int {
	row := g.h - g.cfg.Params.SternRows
	if row < 0 {
		row = 0
	}
	return row
}

// Reset regenerates every cell from the seed. A zero seed keeps the
// configured one, matching deterministic-session behaviour.
func (g *Grid) Reset(seed int64) {
	if seed != 0 {
		g.cfg.Seed = seed
	}
	g.advanced = 0
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			g.setCell(row, col, g.generateCell(row, col))
		}
	}
	g.clearSternRows()
}

// clearSternRows pre-clears the region behind the spud: permanently
// open water the cutter never touches.
func (g *Grid) clearSternRows() {
	for row := g.sternRow(); row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			cell := g.cells[row*g.w+col]
			cell.CutDepth = MaxCutFt
			g.setCell(row, col, cell)
		}
	}
}

// CellAt returns the cell at (row, col), reporting false out of bounds.
func (g *Grid) CellAt(row, col int) (Cell, bool) {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		return Cell{}, false
	}
	return g.cells[row*g.w+col], true
}

// CellIndex maps world coordinates in feet to grid indices. The indices
// may be out of range; callers use CellAt or Sample for bounds handling.
func (g *Grid) CellIndex(worldX, worldY float64) (row, col int) {
	col = int(worldX / g.cfg.CellFt)
	row = int(worldY / g.cfg.CellFt)
	if worldX < 0 {
		col--
	}
	if worldY < 0 {
		row--
	}
	return row, col
}

// Sample performs a nearest-cell lookup at a world position. Positions
// outside the grid or behind the stern return the open-water sentinel.
func (g *Grid) Sample(worldX, worldY float64) Sample {
	row, col := g.CellIndex(worldX, worldY)
	if row >= g.sternRow() {
		return waterSample
	}
	cell, ok := g.CellAt(row, col)
	if !ok {
		return waterSample
	}
	return Sample{BaseDepth: cell.BaseDepth, CutDepth: cell.CutDepth, Material: cell.Material}
}

// DepthAt returns the bilinearly interpolated total depth (base + cut)
// at a world position, for smooth profile readouts.
func (g *Grid) DepthAt(worldX, worldY float64) float64 {
	cx := worldX/g.cfg.CellFt - 0.5
	cy := worldY/g.cfg.CellFt - 0.5
	col0 := int(cx)
	row0 := int(cy)
	if cx < 0 {
		col0--
	}
	if cy < 0 {
		row0--
	}
	tx := cx - float64(col0)
	ty := cy - float64(row0)

	d := func(row, col int) float64 {
		cell, ok := g.CellAt(row, col)
		if !ok || row >= g.sternRow() {
			return waterSample.BaseDepth + waterSample.CutDepth
		}
		return cell.TotalDepth()
	}

	top := core.Lerp(d(row0, col0), d(row0, col0+1), tx)
	bottom := core.Lerp(d(row0+1, col0), d(row0+1, col0+1), tx)
	return core.Lerp(top, bottom, ty)
}

// Deform increases a cell's cut depth by amount, clamped so CutDepth
// never decreases and never exceeds MaxCutFt. Cells behind the stern
// are never deformed. Returns the depth actually removed.
func (g *Grid) Deform(row, col int, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	if row < 0 || row >= g.sternRow() || col < 0 || col >= g.w {
		return 0
	}
	idx := row*g.w + col
	cell := g.cells[idx]
	before := cell.CutDepth
	cell.CutDepth = core.Clamp(before+amount, before, MaxCutFt)
	g.setCell(row, col, cell)
	return cell.CutDepth - before
}

// Advance evicts StepRows rows at the stern edge and synthesises the
// same number of fresh rows at the far edge, continuing the procedural
// field forward without repeating generated coordinates.
func (g *Grid) Advance() {
	step := g.cfg.Params.StepRows
	if step <= 0 {
		return
	}
	if step > g.h {
		step = g.h
	}
	for row := g.h - 1; row >= step; row-- {
		for col := 0; col < g.w; col++ {
			g.setCell(row, col, g.cells[(row-step)*g.w+col])
		}
	}
	g.advanced += step
	for row := 0; row < step; row++ {
		for col := 0; col < g.w; col++ {
			g.setCell(row, col, g.generateCell(row-g.advanced, col))
		}
	}
	// The vessel has moved up over its cut; everything at the stern is
	// open water again.
	g.clearSternRows()
}

func (g *Grid) setCell(row, col int, cell Cell) {
	idx := row*g.w + col
	g.cells[idx] = cell
	g.display[idx] = encodeDisplayValue(cell)
}
