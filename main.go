package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"classic-snake/audio"
	"classic-snake/game"
	"classic-snake/game/loop"
	"classic-snake/game/manager"
	"classic-snake/logger"
	"classic-snake/ui"
	"classic-snake/ui/terminal"

	"github.com/pkg/errors"
)

func init() {
	// raylib must stay on the main OS thread
	runtime.LockOSThread()
}

func main() {
	cfg, err := LoadConfig(os.Args[1:], os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	log, closeLog, err := openLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	g := game.NewGame(game.WithSeed(cfg.Seed))
	stats := manager.NewStatsManager()

	sched := loop.NewScheduler(g, log)
	sched.AddListener(loop.NewStatsListener(stats))
	sched.AddListener(loop.NewEventLogger(log))

	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Warnf("Audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			sched.AddListener(loop.NewSoundListener(sm))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("Starting %s front end, seed %d", cfg.Frontend, cfg.Seed)
	go sched.Start(ctx)
	defer func() {
		sched.Stop()
		<-sched.Done()
		log.Infof("Session over: games=%d best=%d average=%.1f",
			stats.GetGamesPlayed(), stats.GetHighScore(), stats.GetAverageScore())
	}()

	switch cfg.Frontend {
	case FrontendTerminal:
		screen, err := terminal.NewScreen()
		if err != nil {
			return err
		}
		defer screen.Fini()
		return terminal.Run(ctx, screen, sched, stats)
	default:
		ui.Run(ctx, sched, g, stats)
		return nil
	}
}

func openLogger(path string) (*logger.Logger, func(), error) {
	switch path {
	case "":
		return logger.Stderr(), func() {}, nil
	case "off":
		return logger.Discard(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log file %s", path)
	}
	return logger.NewLogger(f), func() { f.Close() }, nil
}
