package device

import (
	"math"
	"math/rand"

	"github.com/spikelab/dendrite/sim"
)

// A PoissonGenerator emits a Poisson spike train at a fixed rate through
// ordinary spike connections. Coincident events within one step are folded
// into a single emission with the matching multiplicity.
type PoissonGenerator struct {
	name string

	rateHz  float64
	startMs float64
	stopMs  float64

	startStep sim.Steps
	stopStep  sim.Steps
	expLambda float64

	rng *rand.Rand
}

// NewPoissonGenerator creates a generator with its own seeded source, so the
// emitted train is reproducible regardless of worker partitioning.
func NewPoissonGenerator(name string, rateHz float64, seed int64) *PoissonGenerator {
	return &PoissonGenerator{
		name:   name,
		rateHz: rateHz,
		stopMs: -1,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// WithWindow restricts the output to [startMs, stopMs).
func (g *PoissonGenerator) WithWindow(startMs, stopMs float64) *PoissonGenerator {
	g.startMs = startMs
	g.stopMs = stopMs

	return g
}

// Name returns the name of the generator.
func (g *PoissonGenerator) Name() string {
	return g.name
}

// Calibrate converts the window to steps and caches exp(-rate·h), the term
// of the per-step Poisson draw.
func (g *PoissonGenerator) Calibrate(schedule *sim.DelaySchedule) {
	h := schedule.Resolution()

	g.startStep = h.Steps(g.startMs)
	if g.stopMs < 0 {
		g.stopStep = sim.Steps(int64(^uint64(0) >> 1))
	} else {
		g.stopStep = h.Steps(g.stopMs)
	}

	g.expLambda = math.Exp(-g.rateHz * float64(h) / 1000.0)
}

// Update draws the number of events for this step and emits one spike with
// that multiplicity.
func (g *PoissonGenerator) Update(step sim.Steps, out *sim.SpikeRegister) {
	if step < g.startStep || step >= g.stopStep {
		return
	}

	count := g.drawPoisson()
	if count == 0 {
		return
	}

	out.EmitSpike(g, step, 0.0, count)
}

// drawPoisson samples from a Poisson distribution by multiplying uniform
// draws until they fall below exp(-lambda). At grid resolutions the expected
// count is far below one, so the loop rarely runs more than once.
func (g *PoissonGenerator) drawPoisson() int {
	count := 0
	product := g.rng.Float64()

	for product > g.expLambda {
		count++
		product *= g.rng.Float64()
	}

	return count
}

// SendTestEvent negotiates an outgoing spike connection.
func (g *PoissonGenerator) SendTestEvent(target sim.Receiver, port int) (int, error) {
	return target.CheckSpikePort(port)
}

// CheckSpikePort rejects incoming spikes; a generator has no inputs.
func (g *PoissonGenerator) CheckSpikePort(port int) (int, error) {
	return 0, &sim.UnknownReceptorTypeError{Node: g.name, Port: port}
}

// CheckCurrentPort rejects incoming currents.
func (g *PoissonGenerator) CheckCurrentPort(port int) (int, error) {
	return 0, &sim.UnknownReceptorTypeError{Node: g.name, Port: port}
}

// HandleSpike must never be called; wiring validation rejects it.
func (g *PoissonGenerator) HandleSpike(ev sim.SpikeEvent) {
	panic(g.name + " does not accept spike events")
}

// HandleCurrent must never be called; wiring validation rejects it.
func (g *PoissonGenerator) HandleCurrent(ev sim.CurrentEvent) {
	panic(g.name + " does not accept current events")
}

var _ sim.Node = (*PoissonGenerator)(nil)
