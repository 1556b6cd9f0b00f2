//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"dredgesim/internal/app"
	"dredgesim/internal/config"
	"dredgesim/internal/core"
	"dredgesim/internal/logging"
	"dredgesim/internal/sims/dredge"
)

func main() {
	scenario := flag.String("scenario", "", "scenario to run (overrides config file)")
	scale := flag.Int("scale", 5, "pixel scale multiplier")
	tps := flag.Int("tps", 60, "ticks per second")
	seed := flag.Int64("seed", 0, "terrain seed (0 keeps the scenario default)")
	configPath := flag.String("config", "", "path to a scenario settings file")
	logLevel := flag.String("log-level", "", "log level (overrides config file)")
	flag.Parse()

	log := logging.New("info")
	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading settings")
	}
	if *scenario != "" {
		settings.Scenario = *scenario
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}

	log = logging.New(settings.LogLevel)

	factory, ok := core.Scenarios()[settings.Scenario]
	if !ok {
		log.Fatal().Str("scenario", settings.Scenario).Msg("unknown scenario")
	}

	sim, ok := factory(settings.Params).(*dredge.Simulation)
	if !ok {
		log.Fatal().Str("scenario", settings.Scenario).Msg("scenario is not a dredge simulation")
	}
	sim.SetLogger(log)
	sim.Reset(settings.Seed)

	game := app.New(sim, *scale, settings.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("dredgesim — " + sim.Name())
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(size.W**scale+220, size.H**scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop")
	}
}
