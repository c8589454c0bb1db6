package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"balloon/internal/desktop"
	"balloon/internal/game"
	"balloon/internal/term"
)

var (
	termFlag     = flag.Bool("term", false, "Play in the terminal instead of a window")
	configFlag   = flag.String("config", "", "YAML file overriding the default tuning")
	seedFlag     = flag.Uint64("seed", 0, "Random seed (0: BALLOON_SEED or the clock)")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/balloon.log in terminal mode")
	logLevelFlag = flag.String("log-level", "info", "Log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	cfg := game.DefaultConfig()
	if *configFlag != "" {
		var err error
		cfg, err = game.LoadConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "balloon: %v\n", err)
			os.Exit(2)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		fmt.Fprintf(os.Stderr, "balloon: log level: %v\n", err)
		os.Exit(2)
	}

	seed := resolveSeed(*seedFlag, os.Getenv("BALLOON_SEED"), time.Now())

	if *termFlag {
		os.Exit(runTerminal(cfg, seed, level))
	}

	logger := newLogger(os.Stderr, level)
	logger.Info("starting", "mode", "desktop", "seed", seed)
	if err := desktop.Run(cfg, seed, logger); err != nil {
		logger.Error("desktop failed", "err", err)
		os.Exit(1)
	}
}

// resolveSeed prefers the flag, then the environment, then the clock.
func resolveSeed(flagSeed uint64, env string, now time.Time) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if env != "" {
		if v, err := strconv.ParseUint(env, 10, 64); err == nil {
			return v
		}
	}
	return uint64(now.UnixNano())
}

func runTerminal(cfg game.Config, seed uint64, level slog.Level) (code int) {
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	var logger *slog.Logger
	if logFile != nil {
		logger = newLogger(logFile, level)
	} else {
		logger = newLogger(nil, level)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "balloon: terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "balloon: terminal init: %v\n", err)
		return 1
	}

	// Restore the terminal before printing a crash.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nBALLOON CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			code = 1
		}
	}()

	logger.Info("starting", "mode", "terminal", "seed", seed)
	g := term.New(screen, cfg, seed, logger)
	err = g.Run()
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "balloon: %v\n", err)
		return 1
	}
	return 0
}
