// Package sweep generates many mazes in parallel and checks each one.
package sweep

import (
	"context"
	"fmt"

	"mazegen/internal/maze"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Options describe a sweep over Count consecutive seeds starting at
// StartSeed.
type Options struct {
	Rows      int
	Cols      int
	Count     int
	StartSeed int64
	Workers   int
}

// Result holds the outcome for a single seed.
type Result struct {
	Seed     int64
	Stats    maze.Stats
	Steps    int
	MaxDepth int
	Err      error
}

// Summary aggregates a sweep.
type Summary struct {
	Mazes        int
	Failures     int
	DeadEnds     int
	Junctions    int
	Straights    int
	MaxDepth     int
	MaxDepthSeed int64
}

// Run generates and verifies one maze per seed. A maze that fails
// verification is recorded in its Result; only cancellation or invalid
// options end the sweep early. Results come back sorted by seed.
func Run(parent context.Context, opts Options, log logrus.FieldLogger) ([]Result, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, &maze.ConfigError{Rows: opts.Rows, Cols: opts.Cols}
	}
	if opts.Count < 0 {
		return nil, fmt.Errorf("count %d must not be negative", opts.Count)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	// Slot i belongs to seed StartSeed+i, so results stay in seed order.
	results := make([]Result, opts.Count)
	group, ctx := errgroup.WithContext(parent)
	group.SetLimit(workers)
	for i := 0; i < opts.Count; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i
		group.Go(func() error {
			res, err := runOne(ctx, opts.Rows, opts.Cols, opts.StartSeed+int64(i))
			if err != nil {
				return err
			}
			if res.Err != nil {
				log.WithError(res.Err).WithField("seed", res.Seed).Warn("maze failed verification")
			}
			results[i] = res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, rows, cols int, seed int64) (Result, error) {
	grid, err := maze.New(rows, cols)
	if err != nil {
		return Result{}, err
	}
	gen, err := maze.NewGenerator(grid, maze.WithSeed(seed))
	if err != nil {
		return Result{}, err
	}
	if err := gen.Run(ctx, nil); err != nil {
		return Result{}, err
	}
	return Result{
		Seed:     seed,
		Stats:    maze.Collect(grid),
		Steps:    gen.Steps(),
		MaxDepth: gen.MaxDepth(),
		Err:      maze.Verify(grid),
	}, nil
}

// Summarize folds results into totals. Ties on depth keep the lowest seed.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.Mazes++
		if r.Err != nil {
			s.Failures++
		}
		s.DeadEnds += r.Stats.DeadEnds
		s.Junctions += r.Stats.Junctions
		s.Straights += r.Stats.Straights
		if r.MaxDepth > s.MaxDepth {
			s.MaxDepth = r.MaxDepth
			s.MaxDepthSeed = r.Seed
		}
	}
	return s
}
