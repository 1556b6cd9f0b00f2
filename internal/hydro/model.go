// Package hydro converts the vessel state and the cutting signal into
// slurry density, pump pressures and production statistics. Every
// instrument output passes through an exponential moving average before
// display; raw per-tick values never leave the model.
package hydro

import (
	"math"

	"dredgesim/internal/core"
	"dredgesim/internal/vessel"
)

// psiPerFt converts feet of water column to PSI.
const psiPerFt = 0.433

// gravityFtSec2 is standard gravity in ft/s².
const gravityFtSec2 = 32.2

// Instruments is the smoothed readout bank shown on the operator
// console. Read-only to rendering and UI.
type Instruments struct {
	SlurryCv      float64
	SlurrySG      float64
	VelocityFtSec float64
	VacuumPSI     float64
	DischargePSI  float64
	PumpEffort    float64

	SwingWinchPSI  float64
	LadderWinchPSI float64
	CutterPSI      float64

	ProductionCYH float64
	ProductionTPH float64
	SwingWidthFt  float64

	// Session totals, integrated from the raw production rate.
	TotalVolumeCY float64
	TotalTons     float64
}

// Model is the sole writer of the instrument bank.
type Model struct {
	cfg Config
	rng *core.RNG

	cvEma        Ema
	sgEma        Ema
	velocityEma  Ema
	vacuumEma    Ema
	dischargeEma Ema
	effortEma    Ema
	swingEma     Ema
	ladderEma    Ema
	cutterEma    Ema
	prodCYHEma   Ema
	prodTPHEma   Ema
	widthEma     Ema

	lastDepthFt float64

	inst Instruments
}

// NewModel returns a hydraulic model with per-signal smoothing time
// constants. The RNG seeds the load-dependent gauge jitter.
func NewModel(cfg Config, rng *core.RNG) *Model {
	if rng == nil {
		rng = core.NewRNG(1)
	}
	return &Model{
		cfg:          cfg,
		rng:          rng,
		cvEma:        Ema{Tau: 1.0},
		sgEma:        Ema{Tau: 1.0},
		velocityEma:  Ema{Tau: 0.3},
		vacuumEma:    Ema{Tau: 0.5},
		dischargeEma: Ema{Tau: 0.5},
		effortEma:    Ema{Tau: 0.5},
		swingEma:     Ema{Tau: 0.4},
		ladderEma:    Ema{Tau: 0.4},
		cutterEma:    Ema{Tau: 0.4},
		prodCYHEma:   Ema{Tau: 1.5},
		prodTPHEma:   Ema{Tau: 1.5},
		widthEma:     Ema{Tau: 1.0},
	}
}

// Instruments returns the current smoothed readouts.
func (m *Model) Instruments() Instruments { return m.inst }

// Reset clears all smoothed values and session totals.
func (m *Model) Reset() {
	*m = *NewModel(m.cfg, m.rng)
}

// Update runs one tick of the hydraulic model. hardness is the soil
// hardness under the cutter head (zero when the head is above the
// bottom), soilSG the in-situ specific gravity of that soil, and
// volumeRemovedFt3 the cutting engine's output for this tick.
func (m *Model) Update(v *vessel.State, hardness, soilSG, volumeRemovedFt3, dt float64) {
	if v == nil || dt <= 0 {
		return
	}

	pumpFrac := core.Frac(v.PumpRPM, m.cfg.MaxPumpRPM)
	cutterFrac := core.Frac(v.CutterRPM, m.cfg.MaxCutterRPM)
	swingFrac := core.Frac(math.Abs(v.SwingVelDegSec), m.cfg.RefSwingVelDegSec)
	depthFt := v.CutterDepthFt()
	depthFrac := core.Frac(depthFt, m.cfg.MaxUsefulDepthFt)

	// Solids concentration only rises while material is actually being
	// removed hard, fast and deep.
	cv := 0.0
	if volumeRemovedFt3 > 0 {
		ceiling := m.cfg.MaxCv * (1 - 0.4*hardness)
		cv = core.Clamp01(cutterFrac*swingFrac*depthFrac) * ceiling
	}
	if soilSG <= m.cfg.WaterSG {
		soilSG = 2.65
	}
	sg := m.cfg.WaterSG + cv*(soilSG-m.cfg.WaterSG)

	velocity := pumpFrac * m.cfg.MaxVelocityFtSec

	// Simplified Darcy-Weisbach: friction head from L/D and the
	// velocity head, weighted by mixture density.
	pipeDiaFt := m.cfg.PipeDiameterIn / 12
	friction := 0.0
	pipeArea := 0.0
	if pipeDiaFt > 0 {
		velocityHeadFt := velocity * velocity / (2 * gravityFtSec2)
		friction = m.cfg.FrictionFactor * (m.cfg.PipelineLengthFt / pipeDiaFt) * velocityHeadFt * psiPerFt * sg
		pipeArea = math.Pi * pipeDiaFt * pipeDiaFt / 4
	}

	// Suction and discharge gauges read zero with the pump stopped.
	velocityLoss := velocity * velocity / (2 * gravityFtSec2) * psiPerFt * sg
	vacuum := core.Clamp(pumpFrac*-(depthFt*psiPerFt*sg)-velocityLoss, m.cfg.VacuumMinPSI, m.cfg.VacuumMaxPSI)

	discharge := core.Clamp(friction+0.25*m.cfg.StaticLiftFt*psiPerFt*sg*pumpFrac, 0, m.cfg.MaxDischargePSI)

	// Load fraction used for gauge feedback and pressure noise; rises
	// steeply with solids concentration.
	cvFrac := core.Frac(cv, m.cfg.MaxCv)
	effort := core.Clamp01(0.15*pumpFrac + 0.85*math.Pow(cvFrac, 1.5))

	jitter := func() float64 {
		return m.rng.Jitter(m.cfg.JitterPSI * (0.25 + 0.75*effort))
	}

	// Swing winch loads up only while dragging the ladder sideways
	// through standing material.
	swingPSI := 30*swingFrac + 1400*swingFrac*hardness + jitter()

	// Ladder winch: static holding load from gravity/buoyancy plus a
	// spike while actively plunging into new material.
	plungeRate := 0.0
	if depthFt > m.lastDepthFt {
		plungeRate = (depthFt - m.lastDepthFt) / dt
	}
	m.lastDepthFt = depthFt
	ladderPSI := 320 * depthFrac
	if hardness > 0 {
		ladderPSI += 900 * core.Frac(plungeRate, 2) * (0.5 + hardness)
	}
	ladderPSI += jitter()

	// Cutter motor loads with RPM against hardness whether or not the
	// vessel is swinging.
	cutterPSI := 60*cutterFrac + 1600*cutterFrac*hardness + jitter()

	// Production: volumetric flow times concentration.
	flowFt3Sec := velocity * pipeArea
	prodCYH := flowFt3Sec * cv * 3600 / 27
	tonsPerCY := soilSG * 62.4 * 27 / 2000
	prodTPH := prodCYH * tonsPerCY

	m.inst.TotalVolumeCY += prodCYH * dt / 3600
	m.inst.TotalTons += prodTPH * dt / 3600

	reach := v.CutterReachFt()
	swingWidth := 2 * reach * math.Sin(m.cfg.SwingLimitDeg*math.Pi/180)

	m.inst.SlurryCv = m.cvEma.Update(cv, dt)
	m.inst.SlurrySG = m.sgEma.Update(sg, dt)
	m.inst.VelocityFtSec = m.velocityEma.Update(velocity, dt)
	m.inst.VacuumPSI = m.vacuumEma.Update(vacuum, dt)
	m.inst.DischargePSI = m.dischargeEma.Update(discharge, dt)
	m.inst.PumpEffort = m.effortEma.Update(effort, dt)
	m.inst.SwingWinchPSI = m.swingEma.Update(core.Clamp(swingPSI, 0, 3000), dt)
	m.inst.LadderWinchPSI = m.ladderEma.Update(core.Clamp(ladderPSI, 0, 3000), dt)
	m.inst.CutterPSI = m.cutterEma.Update(core.Clamp(cutterPSI, 0, 3000), dt)
	m.inst.ProductionCYH = m.prodCYHEma.Update(prodCYH, dt)
	m.inst.ProductionTPH = m.prodTPHEma.Update(prodTPH, dt)
	m.inst.SwingWidthFt = m.widthEma.Update(swingWidth, dt)
}
