//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"mazegen/internal/app"
	"mazegen/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	game, err := app.New(*cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to start")
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("mazegen %dx%d", cfg.Rows, cfg.Cols))
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.WithError(err).Fatal("game exited")
	}
}
