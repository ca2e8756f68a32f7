// Package device provides stimulus sources and recording sinks. Devices are
// ordinary nodes: they are wired with connections, updated on the grid, and
// speak the same event protocol as neurons.
package device

import (
	"github.com/spikelab/dendrite/sim"
)

// A DCGenerator outputs a constant current to its targets between a start
// and a stop time.
type DCGenerator struct {
	name string

	amplitude float64
	startMs   float64
	stopMs    float64

	startStep sim.Steps
	stopStep  sim.Steps
}

// NewDCGenerator creates a generator that is on for the whole run. Use
// WithWindow to restrict it.
func NewDCGenerator(name string, amplitude float64) *DCGenerator {
	return &DCGenerator{
		name:      name,
		amplitude: amplitude,
		stopMs:    -1,
	}
}

// WithWindow restricts the output to [startMs, stopMs).
func (g *DCGenerator) WithWindow(startMs, stopMs float64) *DCGenerator {
	g.startMs = startMs
	g.stopMs = stopMs

	return g
}

// Name returns the name of the generator.
func (g *DCGenerator) Name() string {
	return g.name
}

// Calibrate converts the stimulation window to grid steps.
func (g *DCGenerator) Calibrate(schedule *sim.DelaySchedule) {
	h := schedule.Resolution()

	g.startStep = h.Steps(g.startMs)
	if g.stopMs < 0 {
		g.stopStep = sim.Steps(int64(^uint64(0) >> 1))
		return
	}

	g.stopStep = h.Steps(g.stopMs)
}

// Update emits the configured current while inside the window.
func (g *DCGenerator) Update(step sim.Steps, out *sim.SpikeRegister) {
	if step < g.startStep || step >= g.stopStep {
		return
	}

	out.EmitCurrent(g, step, g.amplitude)
}

// SendTestEvent negotiates an outgoing current connection.
func (g *DCGenerator) SendTestEvent(target sim.Receiver, port int) (int, error) {
	return target.CheckCurrentPort(port)
}

// CheckSpikePort rejects incoming spikes; a generator has no inputs.
func (g *DCGenerator) CheckSpikePort(port int) (int, error) {
	return 0, &sim.UnknownReceptorTypeError{Node: g.name, Port: port}
}

// CheckCurrentPort rejects incoming currents.
func (g *DCGenerator) CheckCurrentPort(port int) (int, error) {
	return 0, &sim.UnknownReceptorTypeError{Node: g.name, Port: port}
}

// HandleSpike must never be called; wiring validation rejects it.
func (g *DCGenerator) HandleSpike(ev sim.SpikeEvent) {
	panic(g.name + " does not accept spike events")
}

// HandleCurrent must never be called; wiring validation rejects it.
func (g *DCGenerator) HandleCurrent(ev sim.CurrentEvent) {
	panic(g.name + " does not accept current events")
}

var _ sim.Node = (*DCGenerator)(nil)
