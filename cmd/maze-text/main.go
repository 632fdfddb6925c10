package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"mazegen/internal/config"
	"mazegen/internal/maze"
	"mazegen/internal/render"

	"github.com/sirupsen/logrus"
)

const clearScreen = "\x1b[H\x1b[2J"

func main() {
	cfg := config.NewConfig()
	final := flag.Bool("final", false, "print only the finished maze")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := play(ctx, os.Stdout, cfg, *final, logger.WithFields(cfg.Fields())); err != nil {
		logger.WithError(err).Fatal("generation failed")
	}
}

// play carves the maze, redrawing the terminal once per checkpoint unless
// finalOnly is set. An interrupt stops carving and prints the partial maze.
func play(ctx context.Context, out io.Writer, cfg *config.Config, finalOnly bool, log *logrus.Entry) error {
	grid, err := maze.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return err
	}
	gen, err := maze.NewGenerator(grid, maze.WithSeed(cfg.Seed), maze.WithLogger(log))
	if err != nil {
		return err
	}

	var observe maze.Observer
	if !finalOnly {
		var tick <-chan time.Time
		if cfg.Rate > 0 {
			ticker := time.NewTicker(time.Second / time.Duration(cfg.Rate))
			defer ticker.Stop()
			tick = ticker.C
		}
		observe = func(cp maze.Checkpoint) error {
			if tick != nil {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-tick:
				}
			}
			_, err := fmt.Fprintf(out, "%s%s step %d/%d  depth %d\n", clearScreen, render.Text(cp), cp.Step, grid.Len(), len(cp.Path))
			return err
		}
	}

	err = gen.Run(ctx, observe)
	switch {
	case errors.Is(err, context.Canceled):
		log.WithField("step", gen.Steps()).Info("generation aborted")
	case err != nil:
		return err
	default:
		log.WithFields(logrus.Fields{"carved": gen.Carved(), "max_depth": gen.MaxDepth()}).Info("generation complete")
	}
	if !finalOnly {
		if _, err := fmt.Fprint(out, clearScreen); err != nil {
			return err
		}
	}
	_, err = fmt.Fprint(out, render.TextGrid(grid))
	return err
}
