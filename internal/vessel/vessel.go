// Package vessel owns the rigid-body state of the dredge: spud-anchored
// swing, ladder angle, cutter and pump RPM. Every actuated quantity
// moves toward its operator-set target under a slew-rate limit and is
// clamped to its mechanical bounds after integration.
package vessel

import (
	"math"

	"dredgesim/internal/core"
)

// State is the singleton vessel state for a session. Targets are set by
// the input layer; Step is the only mutator of the actuator values.
type State struct {
	cfg Config

	SwingAngleDeg  float64
	SwingVelDegSec float64
	LadderAngleDeg float64
	CutterRPM      float64
	PumpRPM        float64

	swingTarget  float64
	ladderTarget float64
	cutterTarget float64
	pumpTarget   float64

	PumpsEnabled  bool
	CutterEnabled bool
	EStop         bool
}

// New returns a vessel at rest: ladder raised, cutter and pumps stopped
// but enabled.
func New(cfg Config) *State {
	return &State{
		cfg:            cfg,
		LadderAngleDeg: cfg.LadderMinDeg,
		ladderTarget:   cfg.LadderMinDeg,
		PumpsEnabled:   true,
		CutterEnabled:  true,
	}
}

// Config exposes the mechanical limits.
func (s *State) Config() Config { return s.cfg }

// SetSwingTarget commands an angular swing rate in deg/s. The target is
// non-centering: it holds when operator input stops.
func (s *State) SetSwingTarget(rateDegSec float64) {
	s.swingTarget = core.Clamp(rateDegSec, -s.cfg.SwingMaxVelDegSec, s.cfg.SwingMaxVelDegSec)
}

// SetLadderTarget commands a ladder angle in degrees.
func (s *State) SetLadderTarget(angleDeg float64) {
	s.ladderTarget = core.Clamp(angleDeg, s.cfg.LadderMinDeg, s.cfg.LadderMaxDeg)
}

// SetCutterTarget commands a cutter speed in RPM.
func (s *State) SetCutterTarget(rpm float64) {
	s.cutterTarget = core.Clamp(rpm, 0, s.cfg.CutterMaxRPM)
}

// SetPumpTarget commands a pump speed in RPM.
func (s *State) SetPumpTarget(rpm float64) {
	s.pumpTarget = core.Clamp(rpm, 0, s.cfg.PumpMaxRPM)
}

// SetEStop engages or releases the emergency stop. Engaging zeroes all
// targets; actuators wind down at their normal slew rates rather than
// snapping to zero.
func (s *State) SetEStop(engaged bool) { s.EStop = engaged }

// SetPumpsEnabled gates the pump drive. Disabling forces the pump
// target to zero each tick.
func (s *State) SetPumpsEnabled(enabled bool) { s.PumpsEnabled = enabled }

// SetCutterEnabled gates the cutter drive. Disabling forces the cutter
// target to zero each tick.
func (s *State) SetCutterEnabled(enabled bool) { s.CutterEnabled = enabled }

// SwingTarget returns the commanded swing rate in deg/s.
func (s *State) SwingTarget() float64 { return s.swingTarget }

// LadderTarget returns the commanded ladder angle in degrees.
func (s *State) LadderTarget() float64 { return s.ladderTarget }

// CutterTarget returns the commanded cutter speed in RPM.
func (s *State) CutterTarget() float64 { return s.cutterTarget }

// PumpTarget returns the commanded pump speed in RPM.
func (s *State) PumpTarget() float64 { return s.pumpTarget }

// CutterDepthFt derives the cutter head depth below the waterline from
// the ladder angle.
func (s *State) CutterDepthFt() float64 {
	depth := s.cfg.LadderLengthFt * math.Sin(s.LadderAngleDeg*math.Pi/180)
	if depth < 0 {
		return 0
	}
	return depth
}

// CutterReachFt derives the horizontal distance from the spud to the
// cutter head.
func (s *State) CutterReachFt() float64 {
	return s.cfg.LadderLengthFt * math.Cos(s.LadderAngleDeg*math.Pi/180)
}

// Step advances every actuator one tick: overrides from estop and the
// enable flags, then slew-limited integration, then bounds clamping.
func (s *State) Step(dt float64) {
	if dt <= 0 {
		return
	}

	if s.EStop {
		s.swingTarget = 0
		s.cutterTarget = 0
		s.pumpTarget = 0
		s.ladderTarget = s.cfg.LadderMinDeg
	}
	if !s.CutterEnabled {
		s.cutterTarget = 0
	}
	if !s.PumpsEnabled {
		s.pumpTarget = 0
	}

	s.SwingVelDegSec = slew(s.SwingVelDegSec, s.swingTarget, s.cfg.SwingAccelDegSec2, dt)
	s.SwingAngleDeg += s.SwingVelDegSec * dt
	if s.SwingAngleDeg >= s.cfg.SwingLimitDeg {
		s.SwingAngleDeg = s.cfg.SwingLimitDeg
		s.hitSwingStop()
	} else if s.SwingAngleDeg <= -s.cfg.SwingLimitDeg {
		s.SwingAngleDeg = -s.cfg.SwingLimitDeg
		s.hitSwingStop()
	}

	s.LadderAngleDeg = slew(s.LadderAngleDeg, s.ladderTarget, s.cfg.LadderRateDegSec, dt)
	s.LadderAngleDeg = core.Clamp(s.LadderAngleDeg, s.cfg.LadderMinDeg, s.cfg.LadderMaxDeg)

	s.CutterRPM = slew(s.CutterRPM, s.cutterTarget, s.cfg.CutterRateRPMSec, dt)
	s.CutterRPM = core.Clamp(s.CutterRPM, 0, s.cfg.CutterMaxRPM)

	s.PumpRPM = slew(s.PumpRPM, s.pumpTarget, s.cfg.PumpRateRPMSec, dt)
	s.PumpRPM = core.Clamp(s.PumpRPM, 0, s.cfg.PumpMaxRPM)
}

// hitSwingStop absorbs the motion at a swing limit and zeroes the
// target so the winch does not keep pushing against the stop.
func (s *State) hitSwingStop() {
	s.SwingVelDegSec = 0
	s.swingTarget = 0
}

// slew moves current toward target by at most rate*dt, snapping exactly
// to target when the remaining distance is smaller than one step.
func slew(current, target, rate, dt float64) float64 {
	step := rate * dt
	diff := target - current
	if math.Abs(diff) <= step {
		return target
	}
	if diff > 0 {
		return current + step
	}
	return current - step
}
