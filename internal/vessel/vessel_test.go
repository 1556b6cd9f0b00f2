package vessel

import (
	"math"
	"testing"
)

func run(s *State, seconds float64) {
	const dt = 0.05
	for t := 0.0; t < seconds; t += dt {
		s.Step(dt)
	}
}

func TestSlewApproachesAndSnaps(t *testing.T) {
	s := New(DefaultConfig())
	s.SetCutterTarget(10)

	s.Step(0.1)
	want := DefaultConfig().CutterRateRPMSec * 0.1
	if math.Abs(s.CutterRPM-want) > 1e-9 {
		t.Fatalf("after one tick cutter RPM = %v, want %v", s.CutterRPM, want)
	}

	run(s, 5)
	if s.CutterRPM != 10 {
		t.Fatalf("cutter RPM should snap exactly to target, got %v", s.CutterRPM)
	}
}

func TestBoundsHoldEveryTick(t *testing.T) {
	cfg := DefaultConfig()
	s := New(cfg)
	s.SetSwingTarget(99)
	s.SetLadderTarget(999)
	s.SetCutterTarget(999)
	s.SetPumpTarget(999)

	const dt = 0.05
	for i := 0; i < 1200; i++ {
		s.Step(dt)
		if math.Abs(s.SwingAngleDeg) > cfg.SwingLimitDeg {
			t.Fatalf("swing angle %v exceeds limit %v", s.SwingAngleDeg, cfg.SwingLimitDeg)
		}
		if s.LadderAngleDeg < cfg.LadderMinDeg || s.LadderAngleDeg > cfg.LadderMaxDeg {
			t.Fatalf("ladder angle %v outside [%v, %v]", s.LadderAngleDeg, cfg.LadderMinDeg, cfg.LadderMaxDeg)
		}
		if s.CutterRPM < 0 || s.CutterRPM > cfg.CutterMaxRPM {
			t.Fatalf("cutter RPM %v outside [0, %v]", s.CutterRPM, cfg.CutterMaxRPM)
		}
		if s.PumpRPM < 0 || s.PumpRPM > cfg.PumpMaxRPM {
			t.Fatalf("pump RPM %v outside [0, %v]", s.PumpRPM, cfg.PumpMaxRPM)
		}
	}
}

func TestSwingStopZeroesTarget(t *testing.T) {
	cfg := DefaultConfig()
	s := New(cfg)
	s.SetSwingTarget(cfg.SwingMaxVelDegSec)

	run(s, 30)
	if s.SwingAngleDeg != cfg.SwingLimitDeg {
		t.Fatalf("swing should rest on the stop, got %v", s.SwingAngleDeg)
	}
	if s.SwingTarget() != 0 {
		t.Fatalf("swing target should reset to 0 at the stop, got %v", s.SwingTarget())
	}

	// Continued input keeps re-commanding the stop side; the angle must
	// never cross the limit.
	for i := 0; i < 200; i++ {
		s.SetSwingTarget(cfg.SwingMaxVelDegSec)
		s.Step(0.05)
		if s.SwingAngleDeg > cfg.SwingLimitDeg {
			t.Fatalf("swing angle %v crossed the stop", s.SwingAngleDeg)
		}
	}
}

func TestSwingTargetIsNonCentering(t *testing.T) {
	s := New(DefaultConfig())
	s.SetSwingTarget(3)
	run(s, 2)
	// No further input: the commanded rate holds.
	if s.SwingTarget() != 3 {
		t.Fatalf("swing target decayed without input: %v", s.SwingTarget())
	}
	if math.Abs(s.SwingVelDegSec-3) > 1e-9 {
		t.Fatalf("swing velocity should hold at 3, got %v", s.SwingVelDegSec)
	}
}

func TestEStopDecaysUnderSlew(t *testing.T) {
	cfg := DefaultConfig()
	s := New(cfg)
	s.SetCutterTarget(cfg.CutterMaxRPM)
	s.SetPumpTarget(cfg.PumpMaxRPM)
	s.SetSwingTarget(cfg.SwingMaxVelDegSec)
	run(s, 10)

	if s.CutterRPM != cfg.CutterMaxRPM || s.PumpRPM != cfg.PumpMaxRPM {
		t.Fatalf("setup failed: cutter %v pump %v", s.CutterRPM, s.PumpRPM)
	}

	s.SetEStop(true)
	s.Step(0.05)

	if s.CutterTarget() != 0 || s.PumpTarget() != 0 || s.SwingTarget() != 0 {
		t.Fatal("estop must zero all targets")
	}
	if s.CutterRPM <= 0 || s.PumpRPM <= 0 {
		t.Fatal("estop must not snap actuator values to zero instantly")
	}

	run(s, 20)
	if s.CutterRPM != 0 || s.PumpRPM != 0 || s.SwingVelDegSec != 0 {
		t.Fatalf("actuators should wind down to zero: cutter %v pump %v swing %v",
			s.CutterRPM, s.PumpRPM, s.SwingVelDegSec)
	}
}

func TestEnableFlagsGateTheirActuators(t *testing.T) {
	cfg := DefaultConfig()
	s := New(cfg)
	s.SetCutterTarget(cfg.CutterMaxRPM)
	s.SetPumpTarget(cfg.PumpMaxRPM)
	run(s, 10)

	s.SetCutterEnabled(false)
	run(s, 10)
	if s.CutterRPM != 0 {
		t.Fatalf("disabled cutter should wind down, got %v", s.CutterRPM)
	}
	if s.PumpRPM != cfg.PumpMaxRPM {
		t.Fatalf("pump should be unaffected by cutter disable, got %v", s.PumpRPM)
	}

	s.SetPumpsEnabled(false)
	run(s, 10)
	if s.PumpRPM != 0 {
		t.Fatalf("disabled pumps should wind down, got %v", s.PumpRPM)
	}
}

func TestCutterDepthDerivation(t *testing.T) {
	cfg := DefaultConfig()
	s := New(cfg)
	s.LadderAngleDeg = 30

	want := cfg.LadderLengthFt * 0.5 // sin 30°
	if math.Abs(s.CutterDepthFt()-want) > 1e-9 {
		t.Fatalf("cutter depth = %v, want %v", s.CutterDepthFt(), want)
	}
}
