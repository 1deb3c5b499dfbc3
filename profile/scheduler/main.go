// Profiling:
// go build ./profile/scheduler
// go tool pprof -http=":8000" -nodefraction=0.001 ./scheduler cpu.pprof

package main

import (
	"fmt"

	"github.com/phanxgames/sway"
	"github.com/pkg/profile"
)

func main() {
	rounds := 50
	ticks := 10000
	groups := 200
	words := 8
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, ticks, groups, words)
	p.Stop()
}

func run(rounds, ticks, groups, words int) {
	// Undamped springs keep every group live for the whole run.
	cfg := sway.Config{Mass: 1, Stiffness: 400, From: -2, Stagger: 0.01, FadeDuration: 0.5}
	labels := make([]string, words)
	for i := range labels {
		labels[i] = fmt.Sprintf("w%d", i)
	}

	for range rounds {
		sched := sway.NewScheduler()
		for range groups {
			sched.NewGroup(cfg, labels)
		}
		elapsed := 0.0
		for range ticks {
			elapsed += sway.DefaultDT
			sched.Tick(elapsed, sway.DefaultDT)
		}
	}
}
