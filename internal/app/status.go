package app

import (
	"fmt"

	"seat-ca/internal/core"
)

type progressReporter interface {
	Generation() int
	Occupied() int
	Stable() bool
}

// StatusLine summarises the sim state for the HUD.
func StatusLine(sim core.Sim, paused bool) string {
	s := sim.Name()
	if p, ok := sim.(progressReporter); ok {
		s += fmt.Sprintf("  gen %d  occupied %d", p.Generation(), p.Occupied())
		if p.Stable() {
			s += "  [stable]"
		}
	}
	if paused {
		s += "  [paused]"
	}
	return s
}
