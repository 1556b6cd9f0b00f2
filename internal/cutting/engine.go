package cutting

import (
	"math"

	"dredgesim/internal/core"
	"dredgesim/internal/terrain"
)

// Config holds the cutter geometry and removal-rate constants.
type Config struct {
	// CutterRadiusFt is the footprint radius of the cutter head.
	CutterRadiusFt float64
	// LadderLengthFt maps ladder depth to horizontal reach from the spud.
	LadderLengthFt float64
	// MaxCutterRPM and RefSwingVelDegSec normalise the speed factors.
	MaxCutterRPM      float64
	RefSwingVelDegSec float64
	// MaxUsefulDepthFt normalises the depth factor.
	MaxUsefulDepthFt float64
	// RemovalRateFtSec scales the per-cell removal rate into ft/s of cut.
	RemovalRateFtSec float64
	// Idle guards: below these the cutter does no work at all.
	MinCutterRPM      float64
	MinSwingVelDegSec float64
}

// DefaultConfig returns removal constants matched to the default vessel.
func DefaultConfig() Config {
	return Config{
		CutterRadiusFt:    5,
		LadderLengthFt:    45,
		MaxCutterRPM:      30,
		RefSwingVelDegSec: 6,
		MaxUsefulDepthFt:  30,
		RemovalRateFtSec:  2.0,
		MinCutterRPM:      2,
		MinSwingVelDegSec: 0.02,
	}
}

// Engine is the terrain-backed SoilProvider. It is the sole writer of
// cell cut depths.
type Engine struct {
	cfg  Config
	grid *terrain.Grid
}

// NewEngine binds a cutting engine to a terrain grid.
func NewEngine(cfg Config, grid *terrain.Grid) *Engine {
	return &Engine{cfg: cfg, grid: grid}
}

// headPosition maps a swing angle and cutter depth to the cutter head
// world position. Forward of the spud is toward smaller world Y.
func (e *Engine) headPosition(angleDeg, depthFt float64) (float64, float64) {
	reach := e.cfg.LadderLengthFt*e.cfg.LadderLengthFt - depthFt*depthFt
	if reach < 0 {
		reach = 0
	}
	reach = math.Sqrt(reach)
	rad := angleDeg * math.Pi / 180
	return e.grid.SpudX() + reach*math.Sin(rad), e.grid.SpudY() - reach*math.Cos(rad)
}

// Cut removes material under the cutter disc for one tick and returns
// the volume removed in cubic feet. An idle cutter (near-zero RPM or
// swing speed) performs no cutting at all.
func (e *Engine) Cut(angleDeg, depthFt, cutterRPM, swingVelDegSec, dt float64) float64 {
	if e.grid == nil || dt <= 0 {
		return 0
	}
	if cutterRPM <= e.cfg.MinCutterRPM || math.Abs(swingVelDegSec) < e.cfg.MinSwingVelDegSec {
		return 0
	}

	cx, cy := e.headPosition(angleDeg, depthFt)
	radius := e.cfg.CutterRadiusFt
	cellFt := e.grid.CellFt()

	minRow, minCol := e.grid.CellIndex(cx-radius, cy-radius)
	maxRow, maxCol := e.grid.CellIndex(cx+radius, cy+radius)

	depthFactor := core.Frac(depthFt, e.cfg.MaxUsefulDepthFt)
	speedFactor := core.Frac(cutterRPM, e.cfg.MaxCutterRPM)
	swingFactor := core.Frac(math.Abs(swingVelDegSec), e.cfg.RefSwingVelDegSec)
	common := depthFactor * speedFactor * swingFactor
	if common <= 0 {
		return 0
	}

	cellArea := cellFt * cellFt
	volume := 0.0
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cell, ok := e.grid.CellAt(row, col)
			if !ok || cell.Cleared() {
				continue
			}
			wx := (float64(col) + 0.5) * cellFt
			wy := (float64(row) + 0.5) * cellFt
			dx := wx - cx
			dy := wy - cy
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			// The cutter only does work once it is at or below the
			// current bottom of this cell.
			if depthFt <= cell.TotalDepth() {
				continue
			}
			rate := common * (1 - cell.Material.Hardness()*0.5)
			removed := e.grid.Deform(row, col, rate*dt*e.cfg.RemovalRateFtSec)
			volume += removed * cellArea
		}
	}
	return volume
}

// HardnessAt reports the hardness of the material currently under the
// cutter head, or zero when the head is above the bottom there.
func (e *Engine) HardnessAt(angleDeg, depthFt float64) float64 {
	if e.grid == nil {
		return 0
	}
	cx, cy := e.headPosition(angleDeg, depthFt)
	s := e.grid.Sample(cx, cy)
	if s.Material == terrain.MaterialWater {
		return 0
	}
	if depthFt <= s.BaseDepth+s.CutDepth {
		return 0
	}
	return s.Material.Hardness()
}

// MaterialAt reports the material under the cutter head, for mixture
// density weighting.
func (e *Engine) MaterialAt(angleDeg, depthFt float64) terrain.Material {
	if e.grid == nil {
		return terrain.MaterialWater
	}
	cx, cy := e.headPosition(angleDeg, depthFt)
	return e.grid.Sample(cx, cy).Material
}
