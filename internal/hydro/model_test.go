package hydro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dredgesim/internal/core"
	"dredgesim/internal/vessel"
)

func newTestModel() *Model {
	return NewModel(DefaultConfig(), core.NewRNG(42))
}

func TestIdleStartReadsNearZero(t *testing.T) {
	m := newTestModel()
	v := vessel.New(vessel.DefaultConfig())

	for i := 0; i < 100; i++ { // 5 simulated seconds, enough for the slowest EMA
		m.Update(v, 0, 0, 0, 0.05)
	}

	inst := m.Instruments()
	assert.Zero(t, inst.SlurryCv)
	assert.Zero(t, inst.VelocityFtSec)
	assert.Zero(t, inst.ProductionCYH)
	assert.Zero(t, inst.ProductionTPH)
	assert.Zero(t, inst.TotalVolumeCY)
	assert.Zero(t, inst.PumpEffort)
	assert.InDelta(t, 0, inst.VacuumPSI, 0.01)
	assert.InDelta(t, 0, inst.DischargePSI, 0.01)
	assert.Less(t, inst.SwingWinchPSI, 5.0)
	assert.Less(t, inst.CutterPSI, 5.0)
	assert.Less(t, inst.LadderWinchPSI, 40.0)
	// The mixture gauge settles at clear water.
	assert.InDelta(t, 1.0, inst.SlurrySG, 0.05)
}

func fullCutVessel() *vessel.State {
	cfg := vessel.DefaultConfig()
	v := vessel.New(cfg)
	v.CutterRPM = cfg.CutterMaxRPM
	v.PumpRPM = cfg.PumpMaxRPM
	v.SwingVelDegSec = cfg.SwingMaxVelDegSec
	v.LadderAngleDeg = 41.8 // cutter depth ≈ 30 ft
	return v
}

func TestSustainedCutProducesAndStaysBounded(t *testing.T) {
	m := newTestModel()
	cfg := DefaultConfig()
	v := fullCutVessel()

	for i := 0; i < 200; i++ { // 10 simulated seconds of hard cutting
		m.Update(v, 0.15, 1.9, 0.5, 0.05)

		inst := m.Instruments()
		require.GreaterOrEqual(t, inst.VacuumPSI, cfg.VacuumMinPSI)
		require.LessOrEqual(t, inst.VacuumPSI, cfg.VacuumMaxPSI)
		require.GreaterOrEqual(t, inst.DischargePSI, 0.0)
		require.LessOrEqual(t, inst.DischargePSI, cfg.MaxDischargePSI)
		require.GreaterOrEqual(t, inst.SlurryCv, 0.0)
		require.LessOrEqual(t, inst.SlurryCv, cfg.MaxCv)
	}

	inst := m.Instruments()
	assert.Greater(t, inst.ProductionCYH, 0.0)
	assert.Greater(t, inst.ProductionTPH, inst.ProductionCYH) // tons/CY > 1 for silt
	assert.Greater(t, inst.TotalVolumeCY, 0.0)
	assert.Greater(t, inst.TotalTons, 0.0)
	assert.Greater(t, inst.SlurrySG, 1.0)
	assert.Greater(t, inst.PumpEffort, 0.1)
	assert.Less(t, inst.VacuumPSI, 0.0)
}

func TestNoRemovalMeansNoConcentration(t *testing.T) {
	m := newTestModel()
	v := fullCutVessel()

	// Spinning and swinging in open water: no removed volume, no Cv.
	for i := 0; i < 100; i++ {
		m.Update(v, 0, 1.0, 0, 0.05)
	}
	inst := m.Instruments()
	assert.Zero(t, inst.SlurryCv)
	assert.Zero(t, inst.ProductionCYH)
	assert.InDelta(t, 1.0, inst.SlurrySG, 0.05)
}

func TestZeroDenominatorsStayFinite(t *testing.T) {
	cfg := Config{} // every limit zero
	m := NewModel(cfg, core.NewRNG(1))
	v := fullCutVessel()

	for i := 0; i < 50; i++ {
		m.Update(v, 0.5, 2.0, 1.0, 0.05)
	}

	inst := m.Instruments()
	for name, val := range map[string]float64{
		"cv":        inst.SlurryCv,
		"sg":        inst.SlurrySG,
		"velocity":  inst.VelocityFtSec,
		"vacuum":    inst.VacuumPSI,
		"discharge": inst.DischargePSI,
		"effort":    inst.PumpEffort,
		"swing":     inst.SwingWinchPSI,
		"ladder":    inst.LadderWinchPSI,
		"cutter":    inst.CutterPSI,
		"cyh":       inst.ProductionCYH,
		"tph":       inst.ProductionTPH,
	} {
		require.Falsef(t, math.IsNaN(val) || math.IsInf(val, 0), "%s is not finite: %v", name, val)
	}
}

func TestHarderMaterialLoadsWinches(t *testing.T) {
	soft := newTestModel()
	hard := newTestModel()
	v := fullCutVessel()

	for i := 0; i < 100; i++ {
		soft.Update(v, 0.15, 1.9, 0.5, 0.05)
		hard.Update(v, 0.95, 2.65, 0.5, 0.05)
	}

	assert.Greater(t, hard.Instruments().SwingWinchPSI, soft.Instruments().SwingWinchPSI)
	assert.Greater(t, hard.Instruments().CutterPSI, soft.Instruments().CutterPSI)
	// Harder soil also caps the achievable concentration lower.
	assert.Less(t, hard.Instruments().SlurryCv, soft.Instruments().SlurryCv)
}

func TestSessionTotalsAccumulate(t *testing.T) {
	m := newTestModel()
	v := fullCutVessel()

	for i := 0; i < 100; i++ {
		m.Update(v, 0.15, 1.9, 0.5, 0.05)
	}
	mid := m.Instruments().TotalVolumeCY
	for i := 0; i < 100; i++ {
		m.Update(v, 0.15, 1.9, 0.5, 0.05)
	}
	assert.Greater(t, m.Instruments().TotalVolumeCY, mid)

	m.Reset()
	assert.Zero(t, m.Instruments().TotalVolumeCY)
	assert.Zero(t, m.Instruments().ProductionCYH)
}
