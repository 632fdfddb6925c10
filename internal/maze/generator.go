package maze

import (
	"context"
	"fmt"
	"io"
	"time"

	"mazegen/internal/core"

	"github.com/sirupsen/logrus"
)

// Rand supplies the randomness behind direction shuffles. *core.RNG and
// *rand.Rand both satisfy it.
type Rand interface {
	IntN(n int) int
}

// Checkpoint is the state exposed to a renderer each time the generator
// enters a cell.
type Checkpoint struct {
	View   View
	Active Coord
	Start  Coord
	End    Coord
	// Path is the current depth-first stack from Start to Active. It aliases
	// generator state and is only valid until the next step.
	Path   []Coord
	Step   int
	Carved int
}

// Observer receives checkpoints synchronously and in entry order. Returning
// a non-nil error (conventionally ErrAbort) stops the run.
type Observer func(Checkpoint) error

type frame struct {
	cell Coord
	dirs [4]Direction
	next int
}

// Generator carves a perfect maze into a Grid with randomized depth-first
// backtracking. It keeps an explicit stack of frames instead of recursing,
// so grid size is not limited by goroutine stack depth, and it draws the same
// random numbers in the same order as the recursive formulation would.
type Generator struct {
	grid  *Grid
	rng   Rand
	start Coord
	log   *logrus.Entry
	trace bool

	stack    []frame
	path     []Coord
	started  bool
	steps    int
	carved   int
	maxDepth int
}

// Option configures a Generator.
type Option func(*Generator)

// WithStart overrides the start cell, (0,0) by default.
func WithStart(c Coord) Option {
	return func(g *Generator) { g.start = c }
}

// WithRand sets the random source used for direction shuffles.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithSeed seeds a deterministic random source.
func WithSeed(seed int64) Option {
	return WithRand(core.NewRNG(seed))
}

// WithLogger routes trace diagnostics (frame entry and exit) to l.
func WithLogger(l *logrus.Entry) Option {
	return func(g *Generator) { g.log = l }
}

// NewGenerator prepares a run over grid. The grid should be freshly
// constructed; the start cell must lie inside it.
func NewGenerator(grid *Grid, opts ...Option) (*Generator, error) {
	g := &Generator{grid: grid}
	for _, opt := range opts {
		opt(g)
	}
	if !grid.Contains(g.start) {
		return nil, grid.outOfBounds(g.start)
	}
	if g.rng == nil {
		g.rng = core.NewRNG(time.Now().UnixNano())
	}
	if g.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		g.log = logrus.NewEntry(discard)
	}
	g.trace = g.log.Logger.IsLevelEnabled(logrus.TraceLevel)
	g.stack = make([]frame, 0, 64)
	g.path = make([]Coord, 0, 64)
	return g, nil
}

// Grid returns the grid being carved.
func (g *Generator) Grid() *Grid { return g.grid }

// Steps returns the number of cells entered so far.
func (g *Generator) Steps() int { return g.steps }

// Carved returns the number of passages opened so far.
func (g *Generator) Carved() int { return g.carved }

// Depth returns the current stack depth.
func (g *Generator) Depth() int { return len(g.stack) }

// MaxDepth returns the deepest stack reached so far.
func (g *Generator) MaxDepth() int { return g.maxDepth }

// Done reports whether the start frame has been exhausted.
func (g *Generator) Done() bool { return g.started && len(g.stack) == 0 }

// Next advances to the next cell entry and returns its checkpoint. It returns
// false once the maze is complete.
func (g *Generator) Next() (Checkpoint, bool) {
	if !g.started {
		g.started = true
		g.enter(g.start)
		return g.checkpoint(), true
	}
	for len(g.stack) > 0 {
		top := &g.stack[len(g.stack)-1]
		for top.next < len(top.dirs) {
			d := top.dirs[top.next]
			top.next++
			if !g.grid.Cell(top.cell).Walls.Has(d) {
				continue
			}
			n, ok := g.grid.Neighbor(top.cell, d)
			if !ok || g.grid.Visited(n) {
				continue
			}
			g.grid.Carve(top.cell, d)
			g.carved++
			g.enter(n)
			return g.checkpoint(), true
		}
		g.leave()
	}
	return Checkpoint{}, false
}

// Run drives the generator to completion, handing every checkpoint to
// observe. A nil observer runs headless. Cancelling ctx or returning an error
// from observe stops the run; the grid is left as a valid partial maze.
func (g *Generator) Run(ctx context.Context, observe Observer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		cp, ok := g.Next()
		if !ok {
			g.log.WithFields(logrus.Fields{
				"steps":     g.steps,
				"carved":    g.carved,
				"max_depth": g.maxDepth,
			}).Debug("maze complete")
			return nil
		}
		if observe == nil {
			continue
		}
		if err := observe(cp); err != nil {
			return fmt.Errorf("stopped at step %d: %w", cp.Step, err)
		}
	}
}

func (g *Generator) enter(c Coord) {
	g.grid.MarkVisited(c)
	g.stack = append(g.stack, frame{cell: c, dirs: g.shuffled()})
	g.path = append(g.path, c)
	g.steps++
	if len(g.stack) > g.maxDepth {
		g.maxDepth = len(g.stack)
	}
	if g.trace {
		g.log.WithFields(logrus.Fields{"depth": len(g.stack), "cell": c}).Trace("enter")
	}
}

func (g *Generator) leave() {
	if g.trace {
		top := g.stack[len(g.stack)-1]
		g.log.WithFields(logrus.Fields{"depth": len(g.stack), "cell": top.cell}).Trace("exit")
	}
	g.stack = g.stack[:len(g.stack)-1]
	g.path = g.path[:len(g.path)-1]
}

// shuffled returns a fresh uniform permutation of the four directions
// (Fisher-Yates).
func (g *Generator) shuffled() [4]Direction {
	dirs := Directions
	for i := len(dirs) - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}

func (g *Generator) checkpoint() Checkpoint {
	return Checkpoint{
		View:   g.grid,
		Active: g.path[len(g.path)-1],
		Start:  g.start,
		End:    g.grid.End(),
		Path:   g.path,
		Step:   g.steps,
		Carved: g.carved,
	}
}

// Generate builds a rows x cols grid and carves it to completion with a
// deterministic source seeded by seed.
func Generate(rows, cols int, seed int64) (*Grid, error) {
	grid, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	gen, err := NewGenerator(grid, WithSeed(seed))
	if err != nil {
		return nil, err
	}
	if err := gen.Run(context.Background(), nil); err != nil {
		return nil, err
	}
	return grid, nil
}
