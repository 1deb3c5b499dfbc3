// Package sway is a spring-physics animation engine for UI motion:
// staggered per-word text reveals, fade-in opacity ramps, and press/hover
// feedback, all advanced by one shared fixed-step clock.
//
// Sway simulates; it does not draw. A renderer registers animations,
// reads the published values each frame, and translates them into
// transforms however it likes.
//
// # Quick start
//
// Create a [Scheduler], register a word [Group], and drive it with [Run]:
//
//	sched := sway.NewScheduler()
//	title := sched.NewGroup(sway.WordReveal, []string{"Hello", "from", "sway"})
//
//	sway.Run(sched, sway.RunConfig{
//		Title: "Reveal", Width: 640, Height: 480,
//		OnDraw: func(screen *ebiten.Image) {
//			for _, item := range title.Items() {
//				// item.Position, item.Opacity → transform + alpha
//			}
//		},
//	})
//
// For full control, call [Scheduler.Tick] from your own loop with a fixed
// step ([DefaultDT] for 60 Hz): the step is constant on purpose — fixed
// stepping keeps the spring integration stable and replayable regardless
// of frame jitter.
//
// # Groups and widgets
//
// A [Group] animates an ordered set of [Item]s sharing one [Config], each
// offset by Config.Stagger. When every item's spring settles the group is
// evicted from the live set; the handle keeps its final published values.
// A [SpringWidget] is a single retargetable spring for interactive
// controls ([SpringWidget.SetTarget] on press/release); widgets are never
// evicted.
//
// # Visibility
//
// [Scheduler.SetVisible] gates all work: while false, Tick does nothing at
// all, so an off-screen page costs zero animation computation.
// [VisibilityGate] aggregates per-surface visibility signals into that one
// flag.
//
// # Presets
//
// [WordReveal] and [Press] are built in; [LoadPresets] reads named configs
// from YAML.
package sway
