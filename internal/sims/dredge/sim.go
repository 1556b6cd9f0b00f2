// Package dredge wires the terrain grid, vessel kinematics, cutting
// engine and hydraulic model into one tick-driven simulation. The
// external frame scheduler calls Step once per frame; all work
// completes synchronously inside the tick.
package dredge

import (
	"image/color"

	"github.com/rs/zerolog"

	"dredgesim/internal/core"
	"dredgesim/internal/cutting"
	"dredgesim/internal/hydro"
	"dredgesim/internal/terrain"
	"dredgesim/internal/vessel"
)

// StepState is the advance status flag: purely bookkeeping, it gates
// nothing but re-entrant advance commands.
type StepState int

const (
	StepIdle StepState = iota
	StepAdvancing
)

// Simulation owns one training session: terrain, vessel, cutting,
// instruments and the advance state machine.
type Simulation struct {
	name string
	cfg  Config
	log  zerolog.Logger

	grid   *terrain.Grid
	vessel *vessel.State
	soil   cutting.SoilProvider
	engine *cutting.Engine
	hydro  *hydro.Model

	stepState    StepState
	advanceTimer float64
}

// New builds a simulation for the configuration. A degenerate terrain
// size leaves the grid unset and falls back to the no-op soil provider,
// so ticks keep succeeding with zeroed cutting output.
func New(name string, cfg Config) *Simulation {
	s := &Simulation{
		name:   name,
		cfg:    cfg,
		log:    zerolog.Nop(),
		vessel: vessel.New(cfg.Vessel),
		hydro:  hydro.NewModel(cfg.Hydro, core.NewRNG(cfg.Terrain.Seed)),
		soil:   cutting.NoopProvider{},
	}
	if cfg.Terrain.Width > 0 && cfg.Terrain.Height > 0 {
		s.grid = terrain.New(cfg.Terrain)
		s.engine = cutting.NewEngine(cfg.Cutting, s.grid)
		s.soil = s.engine
	}
	return s
}

// SetLogger attaches a logger for discrete session events. The tick
// path never logs.
func (s *Simulation) SetLogger(log zerolog.Logger) { s.log = log }

// Name returns the scenario identifier.
func (s *Simulation) Name() string { return s.name }

// Size reports the terrain dimensions in cells.
func (s *Simulation) Size() core.Size {
	if s.grid == nil {
		return core.Size{W: 1, H: 1}
	}
	return s.grid.Size()
}

// Cells exposes the terrain display buffer.
func (s *Simulation) Cells() []uint8 {
	if s.grid == nil {
		return []uint8{0}
	}
	return s.grid.Cells()
}

// Palette exposes the terrain color palette for rendering.
func (s *Simulation) Palette() []color.RGBA {
	if s.grid == nil {
		return nil
	}
	return s.grid.Palette()
}

// Reset regenerates the terrain and returns the vessel and instruments
// to their initial state. A zero seed keeps the configured one.
func (s *Simulation) Reset(seed int64) {
	if s.grid != nil {
		s.grid.Reset(seed)
	}
	s.vessel = vessel.New(s.cfg.Vessel)
	s.hydro.Reset()
	s.stepState = StepIdle
	s.advanceTimer = 0
	s.log.Info().Str("scenario", s.name).Int64("seed", seed).Msg("simulation reset")
}

// Step advances the whole simulation by dt seconds: vessel integration,
// cutting, hydraulics, then the advance timer. dt is clamped so long
// frame pauses cannot destabilise the integrators.
func (s *Simulation) Step(dt float64) {
	dt = core.ClampDelta(dt)
	if dt <= 0 {
		return
	}

	s.vessel.Step(dt)

	angle := s.vessel.SwingAngleDeg
	depth := s.vessel.CutterDepthFt()
	removed := s.soil.Cut(angle, depth, s.vessel.CutterRPM, s.vessel.SwingVelDegSec, dt)
	hardness := s.soil.HardnessAt(angle, depth)

	soilSG := 2.65
	if s.engine != nil {
		soilSG = s.engine.MaterialAt(angle, depth).SpecificGravity()
	}
	s.hydro.Update(s.vessel, hardness, soilSG, removed, dt)

	if s.stepState == StepAdvancing {
		s.advanceTimer -= dt
		if s.advanceTimer <= 0 {
			s.stepState = StepIdle
			s.advanceTimer = 0
		}
	}
}

// RequestAdvance shifts the terrain forward to reveal fresh ground.
// Ignored while a previous advance is still flagged. Returns whether
// the shift happened.
func (s *Simulation) RequestAdvance() bool {
	if s.stepState != StepIdle {
		return false
	}
	if s.grid != nil {
		s.grid.Advance()
	}
	s.stepState = StepAdvancing
	s.advanceTimer = s.cfg.AdvanceCooldownSec
	rows := 0
	if s.grid != nil {
		rows = s.grid.RowsAdvanced()
	}
	s.log.Info().Int("rows_advanced", rows).Msg("vessel advanced")
	return true
}

// StepState returns the advance status flag.
func (s *Simulation) StepState() StepState { return s.stepState }

// Vessel exposes the vessel state. Rendering reads it; targets are set
// through the Simulation setters.
func (s *Simulation) Vessel() *vessel.State { return s.vessel }

// Grid exposes the terrain grid for rendering, or nil when the
// simulation runs on the no-op provider.
func (s *Simulation) Grid() *terrain.Grid { return s.grid }

// Instruments returns the smoothed instrument bank.
func (s *Simulation) Instruments() hydro.Instruments { return s.hydro.Instruments() }

// Input-layer setters. Each clamps through the vessel's own bounds, so
// out-of-range device values cannot enter the state.

func (s *Simulation) SetSwingTarget(rateDegSec float64) { s.vessel.SetSwingTarget(rateDegSec) }
func (s *Simulation) SetLadderTarget(angleDeg float64)  { s.vessel.SetLadderTarget(angleDeg) }
func (s *Simulation) SetCutterTarget(rpm float64)       { s.vessel.SetCutterTarget(rpm) }
func (s *Simulation) SetPumpTarget(rpm float64)         { s.vessel.SetPumpTarget(rpm) }
func (s *Simulation) SetEStop(engaged bool) {
	if engaged && !s.vessel.EStop {
		s.log.Warn().Msg("emergency stop engaged")
	}
	s.vessel.SetEStop(engaged)
}
func (s *Simulation) SetPumpsEnabled(enabled bool)  { s.vessel.SetPumpsEnabled(enabled) }
func (s *Simulation) SetCutterEnabled(enabled bool) { s.vessel.SetCutterEnabled(enabled) }
