package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/platform/cli"
	"github.com/vovakirdan/match3/internal/storage"
)

// app holds everything a command needs for one invocation.
type app struct {
	rules  match3.Rules
	store  *storage.Store
	ctrl   *match3.Controller
	logger *log.Logger
}

// openApp loads configuration, opens the database and builds the controller
// from the global flags.
func openApp() (*app, error) {
	logger, err := cli.NewLogger(os.Stderr, flagLogLevel)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return nil, err
	}
	rules, err := match3.RulesFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}

	logger.Debug("opened database", "path", flagDBPath, "size", rules.Size, "colors", len(rules.Palette))

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctrl := match3.NewController(rules, store, store,
		match3.WithSourceFactory(seededSources(seed, rules.Palette)),
		match3.WithRecorder(store),
		match3.WithLogger(logger),
	)

	return &app{rules: rules, store: store, ctrl: ctrl, logger: logger}, nil
}

// seedStride separates the seeds of consecutive turns.
const seedStride = 7919

// seededSources derives one seed per turn, so a game replayed with the same
// --seed deals and refills the same tiles without every refill repeating
// the dealing sequence.
func seededSources(seed int64, palette []match3.Tile) match3.SourceFactory {
	return func(turn int) match3.TileSource {
		return match3.NewRandSource(seed+int64(turn)*seedStride, palette)
	}
}

// Close releases the database.
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("could not close database", "error", err)
	}
}

// mustOpenApp opens the app or exits with an error message.
func mustOpenApp() *app {
	a, err := openApp()
	if err != nil {
		fail(err)
	}
	return a
}

// fail prints the error and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// fail closes the database, then prints the error and exits.
func (a *app) fail(err error) {
	a.Close()
	fail(err)
}
