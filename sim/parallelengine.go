package sim

import (
	"runtime"
	"sync"
)

// A ParallelEngine updates disjoint node partitions on worker goroutines and
// synchronizes them at every step boundary. Each worker owns its partition's
// nodes and its own spike register for the whole run, so the update phase
// shares no mutable state; the exchange stage then drains all registers on
// the coordinating goroutine.
type ParallelEngine struct {
	HookableBase

	network    *Network
	numWorkers int

	partitions [][]Node
	registers  []SpikeRegister
	waitGroup  sync.WaitGroup

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex

	singleRunLock sync.Mutex
}

// NewParallelEngine creates a ParallelEngine with one worker per available
// CPU.
func NewParallelEngine(network *Network) *ParallelEngine {
	return &ParallelEngine{
		network:    network,
		numWorkers: runtime.GOMAXPROCS(0),
	}
}

// WithNumWorkers overrides the worker count.
func (e *ParallelEngine) WithNumWorkers(n int) *ParallelEngine {
	if n < 1 {
		faultf("cannot run with %d workers", n)
	}

	e.numWorkers = n

	return e
}

// CurrentStep returns the step the engine is about to run.
func (e *ParallelEngine) CurrentStep() Steps {
	return e.network.Schedule().CurrentStep()
}

// Run advances the simulation by the given duration.
func (e *ParallelEngine) Run(durationMs float64) error {
	e.singleRunLock.Lock()
	defer e.singleRunLock.Unlock()

	e.network.Freeze()

	if e.partitions == nil {
		e.partitions = e.network.Partitions(e.numWorkers)
		e.registers = make([]SpikeRegister, e.numWorkers)
	}

	schedule := e.network.Schedule()
	steps := schedule.Resolution().Steps(durationMs)

	for i := Steps(0); i < steps; i++ {
		e.pauseLock.Lock()
		e.runStep(schedule)
		e.pauseLock.Unlock()
	}

	return nil
}

func (e *ParallelEngine) runStep(schedule *DelaySchedule) {
	step := schedule.CurrentStep()

	e.InvokeHook(HookCtx{Domain: e, Pos: HookPosStepStart, Step: step})

	for w := range e.partitions {
		e.waitGroup.Add(1)
		go e.updatePartition(w, step)
	}
	e.waitGroup.Wait()

	for w := range e.registers {
		exchange(e.network, &e.registers[w], &e.HookableBase)
	}

	e.InvokeHook(HookCtx{Domain: e, Pos: HookPosStepEnd, Step: step})

	schedule.AdvanceStep()
}

func (e *ParallelEngine) updatePartition(w int, step Steps) {
	for _, node := range e.partitions[w] {
		node.Update(step, &e.registers[w])
	}

	e.waitGroup.Done()
}

// Pause prevents the ParallelEngine from starting further steps.
func (e *ParallelEngine) Pause() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if e.isPaused {
		return
	}

	e.pauseLock.Lock()
	e.isPaused = true
}

// Continue allows a paused ParallelEngine to run again.
func (e *ParallelEngine) Continue() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if !e.isPaused {
		return
	}

	e.pauseLock.Unlock()
	e.isPaused = false
}
