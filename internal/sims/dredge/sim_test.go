package dredge

import (
	"testing"

	"dredgesim/internal/core"
)

func testConfig() Config {
	c := DefaultConfig()
	c.Terrain.Width = 40
	c.Terrain.Height = 60
	c.Terrain.Seed = 99
	return c
}

func newTestSim() *Simulation {
	s := New("test", testConfig())
	s.Reset(0)
	return s
}

func TestStepClampsLongDeltas(t *testing.T) {
	s := newTestSim()
	cfg := testConfig()
	s.SetCutterTarget(cfg.Vessel.CutterMaxRPM)

	// A ten-second frame pause must integrate as one clamped tick.
	s.Step(10)
	want := cfg.Vessel.CutterRateRPMSec * core.MaxDelta
	if got := s.Vessel().CutterRPM; got != want {
		t.Fatalf("after clamped tick cutter RPM = %v, want %v", got, want)
	}

	// Zero and negative deltas are no-ops.
	before := *s.Vessel()
	s.Step(0)
	s.Step(-1)
	if *s.Vessel() != before {
		t.Fatal("non-positive dt must not mutate the vessel")
	}
}

func TestAdvanceStateMachine(t *testing.T) {
	s := newTestSim()
	cfg := testConfig()
	step := cfg.Terrain.Params.StepRows

	if !s.RequestAdvance() {
		t.Fatal("first advance should be accepted")
	}
	if s.StepState() != StepAdvancing {
		t.Fatalf("step state = %v, want advancing", s.StepState())
	}
	if s.Grid().RowsAdvanced() != step {
		t.Fatalf("rows advanced = %d, want %d", s.Grid().RowsAdvanced(), step)
	}

	// Re-entrant requests are ignored while the flag is set.
	if s.RequestAdvance() {
		t.Fatal("advance should be refused while one is pending")
	}
	if s.Grid().RowsAdvanced() != step {
		t.Fatal("refused advance must not move the grid")
	}

	// The flag clears after the cooldown elapses.
	for i := 0; i < 40; i++ { // 2 s at the max clamped tick
		s.Step(core.MaxDelta)
	}
	if s.StepState() != StepIdle {
		t.Fatalf("step state = %v after cooldown, want idle", s.StepState())
	}
	if !s.RequestAdvance() {
		t.Fatal("advance should be accepted again after cooldown")
	}
	if s.Grid().RowsAdvanced() != 2*step {
		t.Fatalf("rows advanced = %d, want %d", s.Grid().RowsAdvanced(), 2*step)
	}
}

func TestDegenerateTerrainFallsBackToNoop(t *testing.T) {
	cfg := testConfig()
	cfg.Terrain.Width = 0
	s := New("test", cfg)
	s.Reset(0)

	if s.Grid() != nil {
		t.Fatal("degenerate terrain should leave the grid unset")
	}
	if size := s.Size(); size.W != 1 || size.H != 1 {
		t.Fatalf("fallback size = %+v, want 1x1", size)
	}

	s.SetCutterTarget(cfg.Vessel.CutterMaxRPM)
	s.SetPumpTarget(cfg.Vessel.PumpMaxRPM)
	s.SetSwingTarget(cfg.Vessel.SwingMaxVelDegSec)
	s.SetLadderTarget(45)
	for i := 0; i < 200; i++ {
		s.Step(0.05)
	}

	// No soil means no production, but the pump gauges still move.
	inst := s.Instruments()
	if inst.ProductionCYH != 0 || inst.SlurryCv != 0 || inst.TotalVolumeCY != 0 {
		t.Fatalf("noop provider should yield zero production, got %+v", inst)
	}
	if inst.VacuumPSI >= 0 {
		t.Fatalf("running pump should pull vacuum even in open water, got %v", inst.VacuumPSI)
	}
}

func TestResetRestoresInitialSession(t *testing.T) {
	s := newTestSim()
	fresh := newTestSim()

	s.SetCutterTarget(30)
	s.SetPumpTarget(450)
	s.SetSwingTarget(6)
	s.SetLadderTarget(40)
	for i := 0; i < 400; i++ {
		s.Step(0.05)
	}
	s.RequestAdvance()

	s.Reset(0)

	if s.StepState() != StepIdle {
		t.Fatal("reset should clear the advance flag")
	}
	if s.Grid().RowsAdvanced() != 0 {
		t.Fatal("reset should clear the advance counter")
	}
	if got, want := s.Vessel().CutterRPM, fresh.Vessel().CutterRPM; got != want {
		t.Fatalf("reset vessel cutter RPM = %v, want %v", got, want)
	}
	if inst := s.Instruments(); inst.TotalVolumeCY != 0 {
		t.Fatalf("reset should zero session totals, got %v", inst.TotalVolumeCY)
	}

	a, b := s.Cells(), fresh.Cells()
	if len(a) != len(b) {
		t.Fatalf("cell buffer lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("reset terrain differs from a fresh session at index %d", i)
		}
	}
}

func TestSettersClampThroughVesselBounds(t *testing.T) {
	s := newTestSim()
	cfg := testConfig()

	s.SetSwingTarget(999)
	s.SetLadderTarget(999)
	s.SetCutterTarget(-5)
	s.SetPumpTarget(1e9)

	v := s.Vessel()
	if v.SwingTarget() != cfg.Vessel.SwingMaxVelDegSec {
		t.Fatalf("swing target = %v, want %v", v.SwingTarget(), cfg.Vessel.SwingMaxVelDegSec)
	}
	if v.LadderTarget() != cfg.Vessel.LadderMaxDeg {
		t.Fatalf("ladder target = %v, want %v", v.LadderTarget(), cfg.Vessel.LadderMaxDeg)
	}
	if v.CutterTarget() != 0 {
		t.Fatalf("cutter target = %v, want 0", v.CutterTarget())
	}
	if v.PumpTarget() != cfg.Vessel.PumpMaxRPM {
		t.Fatalf("pump target = %v, want %v", v.PumpTarget(), cfg.Vessel.PumpMaxRPM)
	}
}

func TestScenarioPresetRespectsMapOverrides(t *testing.T) {
	for _, name := range []string{"channel", "rockbar"} {
		sim, ok := core.Scenarios()[name](map[string]string{"rock_chance": "0.25"}).(*Simulation)
		if !ok {
			t.Fatalf("scenario %q did not build a dredge simulation", name)
		}
		if got := sim.cfg.Terrain.Params.RockChance; got != 0.25 {
			t.Fatalf("scenario %q clobbered the rock_chance override: got %v", name, got)
		}
	}

	// Without an explicit key the preset value still applies.
	sim := core.Scenarios()["rockbar"](nil).(*Simulation)
	if got := sim.cfg.Terrain.Params.RockChance; got != 0.12 {
		t.Fatalf("rockbar preset rock chance = %v, want 0.12", got)
	}
}

func TestScenarioPresetsRegistered(t *testing.T) {
	for _, name := range []string{"harbor", "channel", "rockbar"} {
		factory, ok := core.Scenarios()[name]
		if !ok {
			t.Fatalf("scenario %q not registered", name)
		}
		sim := factory(map[string]string{"w": "32", "h": "48"})
		if sim.Name() != name {
			t.Fatalf("scenario %q built sim named %q", name, sim.Name())
		}
		sim.Reset(0)
		sim.Step(0.05)
		if size := sim.Size(); size.W != 32 || size.H != 48 {
			t.Fatalf("config map overrides ignored: size %+v", size)
		}
	}
}
