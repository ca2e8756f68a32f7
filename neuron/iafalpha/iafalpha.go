// Package iafalpha implements a leaky integrate-and-fire neuron with
// alpha-shaped postsynaptic currents. The linear subthreshold system is
// advanced by exact exponential propagators precomputed at calibration time;
// the only per-step work is a handful of multiply-adds, the ring-buffer
// drains, and the refractory/threshold state machine.
package iafalpha

import (
	"github.com/spikelab/dendrite/model"
	"github.com/spikelab/dendrite/sim"
)

// Parameters are the user-settable physical constants of the neuron.
// Voltages are in mV, times in ms, capacitance in pF, currents in pA.
type Parameters struct {
	TauM     float64 // membrane time constant
	CM       float64 // membrane capacitance
	TRef     float64 // refractory period
	EL       float64 // resting potential
	IE       float64 // constant external input current
	Theta    float64 // spike threshold (absolute)
	VReset   float64 // post-spike reset potential (absolute)
	TauSynEx float64 // rise time of the excitatory current kernel
	TauSynIn float64 // rise time of the inhibitory current kernel
}

// DefaultParameters returns the standard parameterization.
func DefaultParameters() Parameters {
	return Parameters{
		TauM:     10.0,
		CM:       250.0,
		TRef:     2.0,
		EL:       -70.0,
		IE:       0.0,
		Theta:    -55.0,
		VReset:   -70.0,
		TauSynEx: 2.0,
		TauSynIn: 2.0,
	}
}

// Validate checks the full parameter set. Called on a staged copy before any
// value reaches the live configuration.
func (p Parameters) Validate() error {
	if p.CM <= 0 {
		return &sim.BadPropertyError{
			Property: "C_m", Reason: "capacitance must be positive"}
	}

	if p.TauM <= 0 || p.TauSynEx <= 0 || p.TauSynIn <= 0 {
		return &sim.BadPropertyError{
			Property: "tau", Reason: "all time constants must be positive"}
	}

	if p.TRef < 0 {
		return &sim.BadPropertyError{
			Property: "t_ref", Reason: "refractory time must not be negative"}
	}

	if p.VReset >= p.Theta {
		return &sim.BadPropertyError{
			Property: "V_reset", Reason: "reset potential must lie below threshold"}
	}

	return nil
}

// State is the mutable per-step state. The membrane potential V is kept
// relative to EL; the recordable V_m is V+EL.
type State struct {
	Y0   float64 // piecewise-constant input current applied this step
	Y1Ex float64 // excitatory synaptic current derivative
	Y2Ex float64 // excitatory synaptic current
	Y1In float64 // inhibitory synaptic current derivative
	Y2In float64 // inhibitory synaptic current
	V    float64 // membrane potential relative to EL

	RefractorySteps int64 // remaining steps of the running refractory period
}

// Variables are the derived coefficients, recomputed only in Calibrate.
type Variables struct {
	PropEx model.AlphaPropagators
	PropIn model.AlphaPropagators

	PSCInitEx float64
	PSCInitIn float64

	ThetaRel  float64 // Theta - EL
	VResetRel float64 // VReset - EL

	RefractoryTotal int64
}

// Buffers are the per-instance ring buffers.
type Buffers struct {
	SpikesEx *sim.RingBuffer
	SpikesIn *sim.RingBuffer
	Currents *sim.RingBuffer
}

// A Neuron is one iafalpha instance.
type Neuron struct {
	name string

	params Parameters
	state  State
	vars   Variables
	bufs   Buffers

	schedule    *sim.DelaySchedule
	recordables model.Recordables
}

// New creates a neuron with default parameters. Buffers are created at
// calibration time, once the network's delay horizon is known.
func New(name string) *Neuron {
	n := &Neuron{
		name:   name,
		params: DefaultParameters(),
	}
	n.state.V = 0.0

	n.recordables = model.Recordables{
		"V_m":      func() float64 { return n.state.V + n.params.EL },
		"I_syn_ex": func() float64 { return n.state.Y2Ex },
		"I_syn_in": func() float64 { return n.state.Y2In },
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
// Runs at network freeze and again after every committed status update.
func (n *Neuron) Calibrate(schedule *sim.DelaySchedule) {
	n.schedule = schedule
	h := float64(schedule.Resolution())

	n.vars.PropEx = model.AlphaPropagatorsFor(
		n.params.TauM, n.params.TauSynEx, n.params.CM, h)
	n.vars.PropIn = model.AlphaPropagatorsFor(
		n.params.TauM, n.params.TauSynIn, n.params.CM, h)

	n.vars.PSCInitEx = model.PSCInitialValue(n.params.TauSynEx)
	n.vars.PSCInitIn = model.PSCInitialValue(n.params.TauSynIn)

	n.vars.ThetaRel = n.params.Theta - n.params.EL
	n.vars.VResetRel = n.params.VReset - n.params.EL

	n.vars.RefractoryTotal = model.RefractoryCounts(n.params.TRef, h)

	if n.bufs.SpikesEx == nil {
		n.bufs.SpikesEx = sim.NewRingBuffer(n.name+".SpikesEx", schedule)
		n.bufs.SpikesIn = sim.NewRingBuffer(n.name+".SpikesIn", schedule)
		n.bufs.Currents = sim.NewRingBuffer(n.name+".Currents", schedule)
		return
	}

	n.bufs.SpikesEx.Resize()
	n.bufs.SpikesIn.Resize()
	n.bufs.Currents.Resize()
}

// Update advances the neuron by one step.
func (n *Neuron) Update(step sim.Steps, out *sim.SpikeRegister) {
	s := &n.state
	v := &n.vars

	if s.RefractorySteps > 0 {
		// Membrane held at reset; synaptic currents keep evolving below.
		s.RefractorySteps--
	} else {
		s.V = v.PropEx.PInput*(s.Y0+n.params.IE) +
			v.PropEx.P31*s.Y1Ex + v.PropEx.P32*s.Y2Ex +
			v.PropIn.P31*s.Y1In + v.PropIn.P32*s.Y2In +
			v.PropEx.P33*s.V
	}

	s.Y2Ex = v.PropEx.P21*s.Y1Ex + v.PropEx.P22*s.Y2Ex
	s.Y1Ex *= v.PropEx.P11
	s.Y2In = v.PropIn.P21*s.Y1In + v.PropIn.P22*s.Y2In
	s.Y1In *= v.PropIn.P11

	s.Y1Ex += v.PSCInitEx * n.bufs.SpikesEx.GetValue(0)
	s.Y1In += v.PSCInitIn * n.bufs.SpikesIn.GetValue(0)

	if s.RefractorySteps == 0 && s.V >= v.ThetaRel {
		s.RefractorySteps = v.RefractoryTotal
		s.V = v.VResetRel

		out.EmitSpike(n, step, 0.0, 1)
	}

	// The drained current applies over the next step.
	s.Y0 = n.bufs.Currents.GetValue(0)
}

// CheckSpikePort validates a receptor port for spike delivery. The neuron
// has a single port; excitatory and inhibitory inputs are told apart by the
// sign of the connection weight.
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

// HandleSpike deposits an arriving spike into the buffer slot due at the
// event's delay. Positive weights drive the excitatory kernel, negative the
// inhibitory one.
func (n *Neuron) HandleSpike(ev sim.SpikeEvent) {
	w := ev.Weight * float64(ev.Multiplicity)

	if w >= 0 {
		n.bufs.SpikesEx.AddValue(ev.DelaySteps, w)
		return
	}

	n.bufs.SpikesIn.AddValue(ev.DelaySteps, w)
}

// HandleCurrent deposits an arriving current into the currents buffer.
func (n *Neuron) HandleCurrent(ev sim.CurrentEvent) {
	n.bufs.Currents.AddValue(ev.DelaySteps, ev.Current)
}

// GetStatus returns the neuron's property dictionary.
func (n *Neuron) GetStatus() model.Status {
	return model.Status{
		"tau_m":      n.params.TauM,
		"C_m":        n.params.CM,
		"t_ref":      n.params.TRef,
		"E_L":        n.params.EL,
		"I_e":        n.params.IE,
		"V_th":       n.params.Theta,
		"V_reset":    n.params.VReset,
		"tau_syn_ex": n.params.TauSynEx,
		"tau_syn_in": n.params.TauSynIn,
		"V_m":        n.state.V + n.params.EL,
	}
}

// ApplyStatus updates the configuration from a property dictionary. The
// update is staged on copies and validated in full before anything is
// committed; on error the neuron is left exactly as it was.
func (n *Neuron) ApplyStatus(s model.Status) error {
	params := n.params
	s.Read("tau_m", &params.TauM)
	s.Read("C_m", &params.CM)
	s.Read("t_ref", &params.TRef)
	s.Read("E_L", &params.EL)
	s.Read("I_e", &params.IE)
	s.Read("V_th", &params.Theta)
	s.Read("V_reset", &params.VReset)
	s.Read("tau_syn_ex", &params.TauSynEx)
	s.Read("tau_syn_in", &params.TauSynIn)

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
