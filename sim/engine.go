package sim

// An Engine drives a network across the simulation grid, one step at a time.
//
// Every step runs in three phases: all nodes update (draining their ring
// buffers at offset 0 and reporting emissions), the exchange stage routes the
// collected emissions through the connections into the target ring buffers,
// and the schedule advances. Transmission delays of at least one step
// guarantee that everything emitted in step t is buffered before any target
// drains step t+delay.
type Engine interface {
	Hookable

	// CurrentStep returns the step the engine is about to run.
	CurrentStep() Steps

	// Run advances the simulation by the given duration in milliseconds.
	// It freezes the network on first use and returns when the requested
	// number of steps completed.
	Run(durationMs float64) error

	// Pause blocks the engine at the next step boundary until Continue is
	// called.
	Pause()

	// Continue resumes a paused engine.
	Continue()
}

// exchange routes the emissions in a register through the network's
// connections. Runs single-threaded: ring-buffer writes need no locks
// because this is the only stage that touches buffers of foreign nodes.
func exchange(
	network *Network,
	register *SpikeRegister,
	hookable *HookableBase,
) {
	for _, em := range register.Spikes() {
		for _, conn := range network.Outgoing(em.Source) {
			ev := conn.DeliverSpike(em)

			if hookable.NumHooks() > 0 {
				hookable.InvokeHook(HookCtx{
					Domain: hookable,
					Pos:    HookPosSpikeEmitted,
					Step:   em.Step,
					Item:   ev,
				})
			}
		}
	}

	for _, em := range register.Currents() {
		for _, conn := range network.Outgoing(em.Source) {
			conn.DeliverCurrent(em)
		}
	}

	register.Reset()
}
