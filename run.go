package sway

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the Run frame driver.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// OnUpdate, if set, is called once per tick after the scheduler has
	// advanced. Return ebiten.Termination to stop the loop cleanly.
	OnUpdate func() error

	// OnDraw, if set, renders the frame. It should read published values
	// from the Group and SpringWidget handles it holds.
	OnDraw func(screen *ebiten.Image)
}

type game struct {
	sched *Scheduler
	cfg   RunConfig
	start time.Time
}

func (g *game) Update() error {
	g.sched.Tick(time.Since(g.start).Seconds(), DefaultDT)
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run creates a window and drives the scheduler at a fixed 60 Hz step until
// the window closes or OnUpdate returns an error. elapsed is wall-clock
// seconds since Run started; the step passed to Tick is always DefaultDT,
// never the measured frame delta.
//
// Run is convenience glue: any host loop that calls Scheduler.Tick on a
// fixed cadence works just as well.
func Run(sched *Scheduler, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{sched: sched, cfg: cfg, start: time.Now()})
}
