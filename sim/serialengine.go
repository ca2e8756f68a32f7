package sim

import "sync"

// A SerialEngine updates all nodes on a single goroutine, in registration
// order. Deterministic and simple; the reference engine for tests and small
// networks.
type SerialEngine struct {
	HookableBase

	network  *Network
	register SpikeRegister

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex

	singleRunLock sync.Mutex
}

// NewSerialEngine creates a SerialEngine for the given network.
func NewSerialEngine(network *Network) *SerialEngine {
	return &SerialEngine{network: network}
}

// CurrentStep returns the step the engine is about to run.
func (e *SerialEngine) CurrentStep() Steps {
	return e.network.Schedule().CurrentStep()
}

// Run advances the simulation by the given duration.
func (e *SerialEngine) Run(durationMs float64) error {
	e.singleRunLock.Lock()
	defer e.singleRunLock.Unlock()

	e.network.Freeze()

	schedule := e.network.Schedule()
	steps := schedule.Resolution().Steps(durationMs)

	for i := Steps(0); i < steps; i++ {
		e.pauseLock.Lock()
		e.runStep(schedule)
		e.pauseLock.Unlock()
	}

	return nil
}

func (e *SerialEngine) runStep(schedule *DelaySchedule) {
	step := schedule.CurrentStep()

	e.InvokeHook(HookCtx{Domain: e, Pos: HookPosStepStart, Step: step})

	for _, node := range e.network.Nodes() {
		node.Update(step, &e.register)
	}

	exchange(e.network, &e.register, &e.HookableBase)

	e.InvokeHook(HookCtx{Domain: e, Pos: HookPosStepEnd, Step: step})

	schedule.AdvanceStep()
}

// Pause prevents the SerialEngine from starting further steps.
func (e *SerialEngine) Pause() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if e.isPaused {
		return
	}

	e.pauseLock.Lock()
	e.isPaused = true
}

// Continue allows a paused SerialEngine to run again.
func (e *SerialEngine) Continue() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if !e.isPaused {
		return
	}

	e.pauseLock.Unlock()
	e.isPaused = false
}
