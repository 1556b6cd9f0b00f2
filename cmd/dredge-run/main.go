// Command dredge-run drives a scenario headless with a scripted
// operator: ladder down, cutter and pump up, swinging stop to stop,
// advancing on a fixed cadence. Useful for tuning removal constants and
// for exercising the full tick path without a display.
package main

import (
	"flag"
	"fmt"

	"dredgesim/internal/config"
	"dredgesim/internal/core"
	"dredgesim/internal/logging"
	"dredgesim/internal/sims/dredge"
)

// scriptedSwing reverses the commanded swing rate before the stop
// zeroes the target, holding the current command elsewhere.
func scriptedSwing(angleDeg, limitDeg, rateDegSec, current float64) float64 {
	if angleDeg >= limitDeg-0.5 {
		return -rateDegSec
	}
	if angleDeg <= -limitDeg+0.5 {
		return rateDegSec
	}
	return current
}

func main() {
	scenario := flag.String("scenario", "harbor", "scenario to run")
	seconds := flag.Float64("seconds", 300, "simulated seconds to run")
	dt := flag.Float64("dt", 0.05, "fixed tick size in seconds")
	seed := flag.Int64("seed", 0, "terrain seed (0 keeps the scenario default)")
	configPath := flag.String("config", "", "path to a scenario settings file")
	advanceEvery := flag.Float64("advance-every", 90, "simulated seconds between advance commands (0 disables)")
	flag.Parse()

	log := logging.New("info")
	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading settings")
	}
	log = logging.New(settings.LogLevel)

	factory, ok := core.Scenarios()[*scenario]
	if !ok {
		log.Fatal().Str("scenario", *scenario).Msg("unknown scenario")
	}
	sim, ok := factory(settings.Params).(*dredge.Simulation)
	if !ok {
		log.Fatal().Str("scenario", *scenario).Msg("scenario is not a dredge simulation")
	}
	sim.SetLogger(log)
	sim.Reset(*seed)

	v := sim.Vessel()
	cfg := v.Config()
	sim.SetLadderTarget(40)
	sim.SetCutterTarget(cfg.CutterMaxRPM)
	sim.SetPumpTarget(cfg.PumpMaxRPM)
	sim.SetSwingTarget(cfg.SwingMaxVelDegSec)

	step := core.ClampDelta(*dt)
	if step <= 0 {
		step = 0.05
	}

	nextReport := 30.0
	nextAdvance := *advanceEvery
	swingCmd := cfg.SwingMaxVelDegSec
	for elapsed := 0.0; elapsed < *seconds; elapsed += step {
		swingCmd = scriptedSwing(v.SwingAngleDeg, cfg.SwingLimitDeg, cfg.SwingMaxVelDegSec, swingCmd)
		sim.SetSwingTarget(swingCmd)
		if *advanceEvery > 0 && elapsed >= nextAdvance {
			sim.RequestAdvance()
			nextAdvance += *advanceEvery
		}

		sim.Step(step)

		if elapsed >= nextReport {
			inst := sim.Instruments()
			log.Info().
				Float64("t", elapsed).
				Float64("cyh", inst.ProductionCYH).
				Float64("sg", inst.SlurrySG).
				Float64("vacuum_psi", inst.VacuumPSI).
				Float64("discharge_psi", inst.DischargePSI).
				Msg("progress")
			nextReport += 30
		}
	}

	inst := sim.Instruments()
	fmt.Printf("scenario %s: %.1f s simulated\n", sim.Name(), *seconds)
	fmt.Printf("  production     %8.1f CY/h  %8.1f t/h\n", inst.ProductionCYH, inst.ProductionTPH)
	fmt.Printf("  session totals %8.1f CY    %8.1f tons\n", inst.TotalVolumeCY, inst.TotalTons)
	fmt.Printf("  mixture        SG %.3f  Cv %.3f  vel %.1f ft/s\n", inst.SlurrySG, inst.SlurryCv, inst.VelocityFtSec)
	fmt.Printf("  pressures      vac %.1f  disch %.1f  swing %.0f  ladder %.0f  cutter %.0f PSI\n",
		inst.VacuumPSI, inst.DischargePSI, inst.SwingWinchPSI, inst.LadderWinchPSI, inst.CutterPSI)
}
