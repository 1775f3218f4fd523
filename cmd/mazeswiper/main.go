// Command mazeswiper is a sliding maze game. It runs in an ebiten window by default, or in a
// terminal with MAZE_UI=terminal.
package main

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kalra1569/MazeSwiper/config"
	"github.com/kalra1569/MazeSwiper/round"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("configuration: LOG_LEVEL: %v", err)
	}
	log.SetLevel(level)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.WithFields(log.Fields{"seed": seed, "ui": cfg.UI, "rows": cfg.Rows, "cols": cfg.Cols}).Info("starting")

	switch cfg.UI {
	case config.UITerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runTerminal(ctx, cfg, rng, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
	default:
		if err := runWindow(cfg, rng); err != nil {
			log.Fatal(err)
		}
	}
}

func logRoundEnd(r round.Result) {
	log.WithFields(log.Fields{
		"round":     r.RoundID,
		"outcome":   r.Outcome.Name(),
		"completed": r.Completed,
		"remaining": r.Remaining,
	}).Info("round finished")
}
