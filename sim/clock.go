package sim

import (
	"log"
	"math"
)

// Timestep is the resolution of the simulation grid, in milliseconds. All
// continuous state advances by exactly one Timestep per update.
type Timestep float64

// Steps counts positions on the fixed simulation grid.
type Steps int64

// DefaultResolution is the grid resolution used when none is configured.
const DefaultResolution Timestep = 0.1

// Steps converts a duration in milliseconds to a step count, rounding to the
// nearest grid position.
func (h Timestep) Steps(ms float64) Steps {
	if h <= 0 {
		log.Panic("resolution must be positive")
	}

	if math.IsNaN(ms) {
		log.Panic("invalid duration")
	}

	return Steps(math.Round(ms / float64(h)))
}

// Ms converts a step count back to milliseconds.
func (h Timestep) Ms(s Steps) float64 {
	return float64(s) * float64(h)
}

// DelaySteps converts a transmission delay in milliseconds to steps. A delay
// must round to at least one full step, as same-step delivery would let an
// event influence the very update that emitted it.
func (h Timestep) DelaySteps(ms float64) (Steps, error) {
	s := h.Steps(ms)
	if s < 1 {
		return 0, &BadPropertyError{
			Property: "delay",
			Reason:   "delay must be at least one resolution step",
		}
	}

	return s, nil
}
