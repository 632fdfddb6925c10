//go:build ebiten

package app

import (
	"fmt"
	"time"

	"mazegen/internal/config"
	"mazegen/internal/core"
	"mazegen/internal/maze"
	"mazegen/internal/render"
	"mazegen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

const (
	hudWidth = 200
	// unpacedSteps bounds the work done per tick when the rate is 0.
	unpacedSteps = 512
	maxRate      = 960
)

// Game adapts a maze generator to the ebiten.Game interface. It owns the
// window-side state: painter, HUD and pacing.
type Game struct {
	cfg     config.Config
	log     *logrus.Entry
	painter *render.MazePainter
	hud     *ui.HUD
	pacer   *core.FixedStep

	gen      *maze.Generator
	cp       maze.Checkpoint
	seed     int64
	rate     int
	paused   bool
	tickOnce bool
}

// New constructs a Game from the validated configuration.
func New(cfg config.Config, logger *logrus.Logger) (*Game, error) {
	layout := render.Layout{Rows: cfg.Rows, Cols: cfg.Cols, CellPx: cfg.CellPx, Margin: cfg.Margin}
	g := &Game{
		cfg:     cfg,
		log:     logger.WithFields(logrus.Fields{"rows": cfg.Rows, "cols": cfg.Cols}),
		painter: render.NewMazePainter(layout, render.DefaultPalette()),
		hud:     ui.NewHUD(hudWidth),
		pacer:   core.NewFixedStep(cfg.Rate),
		rate:    cfg.Rate,
	}
	if err := g.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset discards the current maze and starts a new one from seed.
func (g *Game) Reset(seed int64) error {
	grid, err := maze.New(g.cfg.Rows, g.cfg.Cols)
	if err != nil {
		return err
	}
	gen, err := maze.NewGenerator(grid,
		maze.WithSeed(seed),
		maze.WithLogger(g.log.WithField("seed", seed)),
	)
	if err != nil {
		return err
	}
	g.gen = gen
	g.seed = seed
	g.tickOnce = false
	g.cp, _ = gen.Next()
	g.log.WithField("seed", seed).Info("generation started")
	return nil
}

// Update handles per-frame input and advances the generator at the paced rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !g.gen.Done() {
			g.log.WithFields(logrus.Fields{"seed": g.seed, "step": g.gen.Steps()}).Info("generation aborted")
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.setRate(g.rate * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.setRate(g.rate / 2)
	}

	steps := 0
	switch {
	case g.tickOnce:
		steps = 1
		g.tickOnce = false
	case g.paused:
		g.pacer.Steps(0)
	case g.rate == 0:
		steps = unpacedSteps
	default:
		steps = g.pacer.Steps(g.rate)
	}
	g.advance(steps)
	return nil
}

func (g *Game) advance(steps int) {
	for i := 0; i < steps && !g.gen.Done(); i++ {
		cp, ok := g.gen.Next()
		if !ok {
			g.cp.Path = nil
			g.log.WithFields(logrus.Fields{
				"seed":      g.seed,
				"carved":    g.gen.Carved(),
				"max_depth": g.gen.MaxDepth(),
			}).Info("generation complete")
			return
		}
		g.cp = cp
	}
}

func (g *Game) setRate(rate int) {
	if rate < 1 {
		rate = 1
	}
	if rate > maxRate {
		rate = maxRate
	}
	g.rate = rate
	g.pacer.SetRate(rate)
}

// Draw renders the current checkpoint and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cp, g.cfg.Scale)
	w, h := g.painter.Size()
	g.hud.Draw(screen, w*g.cfg.Scale, h*g.cfg.Scale, g.status())
}

func (g *Game) status() ui.Status {
	return ui.Status{
		Seed:     g.seed,
		Rows:     g.cfg.Rows,
		Cols:     g.cfg.Cols,
		Step:     g.gen.Steps(),
		Carved:   g.gen.Carved(),
		Depth:    g.gen.Depth(),
		MaxDepth: g.gen.MaxDepth(),
		Rate:     g.rate,
		Paused:   g.paused,
		Done:     g.gen.Done(),
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w*g.cfg.Scale + g.hud.Width(), h * g.cfg.Scale
}
