//go:build ebiten

package app

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dredgesim/internal/core"
	"dredgesim/internal/render"
	"dredgesim/internal/sims/dredge"
	"dredgesim/internal/ui"
)

const hudWidth = 220

var (
	hullColor   = color.RGBA{R: 230, G: 60, B: 40, A: 255}
	cutterColor = color.RGBA{R: 250, G: 200, B: 60, A: 160}
)

// Game adapts the dredge simulation to the ebiten.Game interface: it
// polls the keyboard into target setpoints, steps the simulation with
// the clamped wall-clock delta, and paints terrain plus instruments.
type Game struct {
	sim     *dredge.Simulation
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.DeltaClock

	scale  int
	paused bool
	seed   int64
}

// New constructs a Game for the provided simulation.
func New(sim *dredge.Simulation, scale int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, hudWidth),
		clock:   core.NewDeltaClock(),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.RequestAdvance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.sim.SetEStop(!g.sim.Vessel().EStop)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sim.SetPumpsEnabled(!g.sim.Vessel().PumpsEnabled)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.SetCutterEnabled(!g.sim.Vessel().CutterEnabled)
	}

	dt := g.clock.Delta()
	if g.paused {
		return nil
	}

	g.applySetpoints(dt)
	g.sim.Step(dt)
	g.hud.Update()
	return nil
}

// applySetpoints turns held keys into target changes. Swing is
// non-centering: releasing both keys holds the last commanded rate.
func (g *Game) applySetpoints(dt float64) {
	v := g.sim.Vessel()
	cfg := v.Config()

	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.sim.SetSwingTarget(-cfg.SwingMaxVelDegSec)
	} else if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.sim.SetSwingTarget(cfg.SwingMaxVelDegSec)
	}

	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.sim.SetLadderTarget(v.LadderTarget() + 10*dt)
	} else if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.sim.SetLadderTarget(v.LadderTarget() - 10*dt)
	}

	if ebiten.IsKeyPressed(ebiten.KeyT) {
		g.sim.SetCutterTarget(v.CutterTarget() + 12*dt)
	} else if ebiten.IsKeyPressed(ebiten.KeyG) {
		g.sim.SetCutterTarget(v.CutterTarget() - 12*dt)
	}

	if ebiten.IsKeyPressed(ebiten.KeyY) {
		g.sim.SetPumpTarget(v.PumpTarget() + 180*dt)
	} else if ebiten.IsKeyPressed(ebiten.KeyH) {
		g.sim.SetPumpTarget(v.PumpTarget() - 180*dt)
	}
}

// Draw renders the terrain, the vessel geometry and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Palette(), g.scale)
	g.drawVessel(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// drawVessel paints the ladder from the spud to the cutter head.
func (g *Game) drawVessel(screen *ebiten.Image) {
	grid := g.sim.Grid()
	if grid == nil {
		return
	}
	v := g.sim.Vessel()
	pxPerFt := float64(g.scale) / grid.CellFt()

	spudX := grid.SpudX() * pxPerFt
	spudY := grid.SpudY() * pxPerFt
	reach := v.CutterReachFt()
	rad := v.SwingAngleDeg * math.Pi / 180
	headX := (grid.SpudX() + reach*math.Sin(rad)) * pxPerFt
	headY := (grid.SpudY() - reach*math.Cos(rad)) * pxPerFt

	vector.StrokeLine(screen, float32(spudX), float32(spudY), float32(headX), float32(headY), 3, hullColor, true)
	vector.DrawFilledCircle(screen, float32(headX), float32(headY), float32(5*pxPerFt), cutterColor, true)
	vector.DrawFilledCircle(screen, float32(spudX), float32(spudY), 4, hullColor, true)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
