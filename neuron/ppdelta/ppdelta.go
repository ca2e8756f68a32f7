// Package ppdelta implements a stochastic point-process neuron with
// delta-shaped postsynaptic currents and an adaptive threshold. Arriving
// spikes kick the membrane potential directly; firing replaces the
// deterministic threshold test with a per-step draw from an exponential
// escape-noise intensity of the distance between the membrane potential and
// the (time-varying) threshold. A dead time after each spike suppresses
// further firing.
package ppdelta

import (
	"math"
	"math/rand"

	"github.com/spikelab/dendrite/model"
	"github.com/spikelab/dendrite/sim"
)

// Parameters are the user-settable physical constants of the neuron.
// Voltages in mV, times in ms, capacitance in pF, currents in pA, Rho in 1/s.
type Parameters struct {
	TauM     float64 // membrane time constant
	CM       float64 // membrane capacitance
	DeadTime float64 // post-spike interval with firing suppressed
	EL       float64 // resting potential
	IE       float64 // constant external input current
	Theta    float64 // baseline threshold, relative to EL
	Rho      float64 // firing intensity at threshold
	DeltaV   float64 // escape-noise sharpness; larger is noisier
	DTheta   float64 // additive threshold increment per spike
	TauTheta float64 // threshold adaptation decay time constant
}

// DefaultParameters returns the standard parameterization.
func DefaultParameters() Parameters {
	return Parameters{
		TauM:     10.0,
		CM:       250.0,
		DeadTime: 2.0,
		EL:       -70.0,
		IE:       0.0,
		Theta:    15.0,
		Rho:      10.0,
		DeltaV:   2.0,
		DTheta:   5.0,
		TauTheta: 50.0,
	}
}

// Validate checks the full parameter set.
func (p Parameters) Validate() error {
	if p.CM <= 0 {
		return &sim.BadPropertyError{
			Property: "C_m", Reason: "capacitance must be positive"}
	}

	if p.TauM <= 0 || p.TauTheta <= 0 {
		return &sim.BadPropertyError{
			Property: "tau", Reason: "all time constants must be positive"}
	}

	if p.DeadTime < 0 {
		return &sim.BadPropertyError{
			Property: "dead_time", Reason: "dead time must not be negative"}
	}

	if p.Rho < 0 {
		return &sim.BadPropertyError{
			Property: "rho", Reason: "firing intensity must not be negative"}
	}

	if p.DeltaV <= 0 {
		return &sim.BadPropertyError{
			Property: "delta_V", Reason: "escape-noise sharpness must be positive"}
	}

	return nil
}

// State is the mutable per-step state, relative to EL.
type State struct {
	Y0        float64 // piecewise-constant input current applied this step
	V         float64 // membrane potential relative to EL
	ThetaAdd  float64 // adaptive threshold component, decays to zero
	DeadSteps int64   // remaining steps of the running dead time
}

// Variables are the derived coefficients, recomputed only in Calibrate.
type Variables struct {
	P33        float64 // membrane decay factor
	PInput     float64 // constant-current propagator
	ThetaDecay float64 // adaptation decay factor
	HSec       float64 // step length in seconds, for the intensity draw
	DeadTotal  int64
}

// Buffers are the per-instance ring buffers.
type Buffers struct {
	Spikes   *sim.RingBuffer
	Currents *sim.RingBuffer
}

// A Neuron is one ppdelta instance.
type Neuron struct {
	name string

	params Parameters
	state  State
	vars   Variables
	bufs   Buffers

	schedule    *sim.DelaySchedule
	rng         *rand.Rand
	recordables model.Recordables
}

// New creates a neuron with default parameters and the given RNG seed. Each
// instance owns its source, so a run is reproducible regardless of how nodes
// are partitioned across workers.
func New(name string, seed int64) *Neuron {
	n := &Neuron{
		name:   name,
		params: DefaultParameters(),
		rng:    rand.New(rand.NewSource(seed)),
	}

	n.recordables = model.Recordables{
		"V_m":   func() float64 { return n.state.V + n.params.EL },
		"theta": func() float64 { return n.params.Theta + n.state.ThetaAdd },
	}

	return n
}

// Name returns the name of the neuron.
func (n *Neuron) Name() string {
	return n.name
}

// Recordables returns the read accessors over the neuron's state.
func (n *Neuron) Recordables() model.Recordables {
	return n.recordables
}

// Calibrate recomputes the derived coefficients and sizes the ring buffers.
func (n *Neuron) Calibrate(schedule *sim.DelaySchedule) {
	n.schedule = schedule
	h := float64(schedule.Resolution())

	n.vars.P33 = model.DecayFactor(n.params.TauM, h)
	n.vars.PInput = model.MembraneInputPropagator(n.params.TauM, n.params.CM, h)
	n.vars.ThetaDecay = model.DecayFactor(n.params.TauTheta, h)
	n.vars.HSec = h / 1000.0
	n.vars.DeadTotal = model.RefractoryCounts(n.params.DeadTime, h)

	if n.bufs.Spikes == nil {
		n.bufs.Spikes = sim.NewRingBuffer(n.name+".Spikes", schedule)
		n.bufs.Currents = sim.NewRingBuffer(n.name+".Currents", schedule)
		return
	}

	n.bufs.Spikes.Resize()
	n.bufs.Currents.Resize()
}

// Update advances the neuron by one step.
func (n *Neuron) Update(step sim.Steps, out *sim.SpikeRegister) {
	s := &n.state
	v := &n.vars

	s.V = v.PInput*(s.Y0+n.params.IE) + v.P33*s.V
	s.V += n.bufs.Spikes.GetValue(0)
	s.ThetaAdd *= v.ThetaDecay

	if s.DeadSteps > 0 {
		s.DeadSteps--
	} else if n.drawSpike() {
		s.ThetaAdd += n.params.DTheta
		s.DeadSteps = v.DeadTotal

		out.EmitSpike(n, step, 0.0, 1)
	}

	s.Y0 = n.bufs.Currents.GetValue(0)
}

// drawSpike samples the escape-noise hazard for the current step. The
// intensity rho·exp((V-theta)/delta_V) turns into a spike probability
// 1-exp(-lambda·h) over one step.
func (n *Neuron) drawSpike() bool {
	theta := n.params.Theta + n.state.ThetaAdd
	lambda := n.params.Rho *
		math.Exp((n.state.V-theta)/n.params.DeltaV)

	p := -math.Expm1(-lambda * n.vars.HSec)

	return n.rng.Float64() < p
}

// CheckSpikePort validates a receptor port for spike delivery.
func (n *Neuron) CheckSpikePort(port int) (int, error) {
	if port != 0 {
		return 0, &sim.UnknownReceptorTypeError{Node: n.name, Port: port}
	}

	return 0, nil
}

// CheckCurrentPort validates a receptor port for current injection.
func (n *Neuron) CheckCurrentPort(port int) (int, error) {
	if port != 0 {
		return 0, &sim.UnknownReceptorTypeError{Node: n.name, Port: port}
	}

	return 0, nil
}

// SendTestEvent negotiates an outgoing spike connection with a prospective
// target.
func (n *Neuron) SendTestEvent(target sim.Receiver, port int) (int, error) {
	return target.CheckSpikePort(port)
}

// HandleSpike deposits an arriving spike. Delta kernel: the weight lands on
// the membrane potential directly at the delivery step.
func (n *Neuron) HandleSpike(ev sim.SpikeEvent) {
	n.bufs.Spikes.AddValue(ev.DelaySteps, ev.Weight*float64(ev.Multiplicity))
}

// HandleCurrent deposits an arriving current into the currents buffer.
func (n *Neuron) HandleCurrent(ev sim.CurrentEvent) {
	n.bufs.Currents.AddValue(ev.DelaySteps, ev.Current)
}

// GetStatus returns the neuron's property dictionary.
func (n *Neuron) GetStatus() model.Status {
	return model.Status{
		"tau_m":     n.params.TauM,
		"C_m":       n.params.CM,
		"dead_time": n.params.DeadTime,
		"E_L":       n.params.EL,
		"I_e":       n.params.IE,
		"theta":     n.params.Theta,
		"rho":       n.params.Rho,
		"delta_V":   n.params.DeltaV,
		"d_theta":   n.params.DTheta,
		"tau_theta": n.params.TauTheta,
		"V_m":       n.state.V + n.params.EL,
	}
}

// ApplyStatus updates the configuration from a property dictionary, staging
// and validating before the atomic commit.
func (n *Neuron) ApplyStatus(s model.Status) error {
	params := n.params
	s.Read("tau_m", &params.TauM)
	s.Read("C_m", &params.CM)
	s.Read("dead_time", &params.DeadTime)
	s.Read("E_L", &params.EL)
	s.Read("I_e", &params.IE)
	s.Read("theta", &params.Theta)
	s.Read("rho", &params.Rho)
	s.Read("delta_V", &params.DeltaV)
	s.Read("d_theta", &params.DTheta)
	s.Read("tau_theta", &params.TauTheta)

	if err := params.Validate(); err != nil {
		if bad, ok := err.(*sim.BadPropertyError); ok {
			bad.Node = n.name
		}

		return err
	}

	state := n.state
	var vm float64
	if s.Read("V_m", &vm) {
		state.V = vm - params.EL
	}

	n.params = params
	n.state = state

	if n.schedule != nil {
		n.Calibrate(n.schedule)
	}

	return nil
}
