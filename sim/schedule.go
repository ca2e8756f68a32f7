package sim

// A DelaySchedule owns discrete simulation time and the network-wide delay
// horizon. Ring buffers delegate all index arithmetic to the schedule so that
// buffer and clock time bases can never drift apart.
//
// The horizon is minDelay+maxDelay steps: an event is delivered no earlier
// than minDelay and no later than minDelay+maxDelay-1 steps after emission,
// so a buffer of exactly that length holds every in-flight event without a
// slot ever being overwritten before it is drained.
type DelaySchedule struct {
	resolution Timestep
	minDelay   Steps
	maxDelay   Steps
	current    Steps
	frozen     bool
}

// NewDelaySchedule creates a schedule with a one-step delay horizon in each
// direction. Connection wiring extends the horizon through EnsureDelay.
func NewDelaySchedule(resolution Timestep) *DelaySchedule {
	if resolution <= 0 {
		faultf("schedule resolution %v is not positive", resolution)
	}

	return &DelaySchedule{
		resolution: resolution,
		minDelay:   1,
		maxDelay:   1,
	}
}

// Resolution returns the grid resolution in milliseconds.
func (s *DelaySchedule) Resolution() Timestep {
	return s.resolution
}

// MinDelay returns the smallest transmission delay in the network, in steps.
func (s *DelaySchedule) MinDelay() Steps {
	return s.minDelay
}

// MaxDelay returns the largest transmission delay in the network, in steps.
func (s *DelaySchedule) MaxDelay() Steps {
	return s.maxDelay
}

// Horizon returns the ring-buffer length, minDelay+maxDelay steps.
func (s *DelaySchedule) Horizon() Steps {
	return s.minDelay + s.maxDelay
}

// CurrentStep returns the step the simulation is currently updating.
func (s *DelaySchedule) CurrentStep() Steps {
	return s.current
}

// Modulo maps a relative delivery offset to a physical buffer slot. Offset 0
// is the slot due at the current step.
func (s *DelaySchedule) Modulo(offset Steps) Steps {
	return (s.current + offset) % s.Horizon()
}

// AdvanceStep moves the schedule to the next grid position. Only the engine
// calls this, once per step, after the spike exchange for the step completed.
func (s *DelaySchedule) AdvanceStep() {
	s.current++
}

// EnsureDelay widens the delay horizon to cover a connection with the given
// delay. Legal only while the network is still being wired; after Freeze the
// buffers are sized and a changed horizon would remap live slots.
func (s *DelaySchedule) EnsureDelay(delay Steps) {
	if delay < 1 {
		faultf("delay %d is below one step", delay)
	}

	if s.frozen {
		if delay < s.minDelay || delay > s.maxDelay {
			faultf("delay %d registered after freeze, horizon [%d, %d]",
				delay, s.minDelay, s.maxDelay)
		}

		return
	}

	if delay < s.minDelay {
		s.minDelay = delay
	}

	if delay > s.maxDelay {
		s.maxDelay = delay
	}
}

// Freeze fixes the delay horizon. Called once when the network is finalized,
// before the first update.
func (s *DelaySchedule) Freeze() {
	s.frozen = true
}

// Frozen tells whether the delay horizon is fixed.
func (s *DelaySchedule) Frozen() bool {
	return s.frozen
}
