package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"mazegen/internal/config"
	"mazegen/internal/sweep"
)

func main() {
	cfg := config.NewConfig()
	count := flag.Int("count", 100, "number of mazes to generate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	verbose := flag.Bool("v", false, "print one line per maze")
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

	fmt.Printf("Sweeping %d mazes of %dx%d from seed %d (%d workers)\n", *count, cfg.Rows, cfg.Cols, cfg.Seed, *workers)

	start := time.Now()
	results, err := sweep.Run(ctx, sweep.Options{
		Rows:      cfg.Rows,
		Cols:      cfg.Cols,
		Count:     *count,
		StartSeed: cfg.Seed,
		Workers:   *workers,
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("sweep stopped")
	}
	elapsed := time.Since(start)

	if *verbose {
		for _, r := range results {
			status := "ok"
			if r.Err != nil {
				status = "FAIL"
			}
			fmt.Printf("seed=%d %s deadEnds=%d corridors=%d straights=%d junctions=%d maxDepth=%d\n",
				r.Seed, status, r.Stats.DeadEnds, r.Stats.Corridors, r.Stats.Straights, r.Stats.Junctions, r.MaxDepth)
		}
	}

	sum := sweep.Summarize(results)
	fmt.Printf("\n%d mazes in %s, %d failed verification\n", sum.Mazes, elapsed.Round(time.Millisecond), sum.Failures)
	if sum.Mazes > 0 {
		n := float64(sum.Mazes)
		fmt.Printf("avg deadEnds=%.2f junctions=%.2f straights=%.2f\n",
			float64(sum.DeadEnds)/n, float64(sum.Junctions)/n, float64(sum.Straights)/n)
		fmt.Printf("deepest stack %d (seed %d)\n", sum.MaxDepth, sum.MaxDepthSeed)
	}
	if sum.Failures > 0 {
		os.Exit(1)
	}
}
