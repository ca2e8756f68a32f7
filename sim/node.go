package sim

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// A Receiver is the target-side surface of the event dispatch protocol.
//
// The Check methods validate at wiring time that a receptor port exists and
// accepts the given event class; they return the validated (possibly
// canonicalized) port number. Validation happens exactly once, when the
// connection is built, never on the per-step delivery path.
//
// The Handle methods are called at spike-exchange time and convert the event
// payload into exactly one ring-buffer write at the event's delay offset.
type Receiver interface {
	CheckSpikePort(port int) (int, error)
	CheckCurrentPort(port int) (int, error)
	HandleSpike(ev SpikeEvent)
	HandleCurrent(ev CurrentEvent)
}

// A Node is an element updated on the simulation grid: a neuron or a device.
//
// Update advances the node by one resolution step. It drains the node's ring
// buffers at offset 0, advances continuous state, and reports any emission
// into the register. Update must not block and must touch no state owned by
// another node; all inter-node influence flows through the exchange stage.
//
// SendTestEvent is the source side of connection negotiation: the node asks
// the prospective target whether it accepts the node's event class on the
// given port, and returns the validated port.
type Node interface {
	Named
	Receiver

	Calibrate(schedule *DelaySchedule)
	Update(step Steps, out *SpikeRegister)
	SendTestEvent(target Receiver, port int) (int, error)
}

// A SpikeEmission is one spike reported by a node during its update,
// awaiting routing through the node's outgoing connections.
type SpikeEmission struct {
	Source       Node
	Step         Steps
	Offset       float64
	Multiplicity int
}

// A CurrentEmission is one per-step current output of a stimulus device,
// awaiting routing to the device's targets.
type CurrentEmission struct {
	Source  Node
	Step    Steps
	Current float64
}

// A SpikeRegister collects the emissions of one worker's nodes during a step.
// Each worker owns one register, so nodes append without coordination; the
// engine drains all registers single-threaded at the exchange stage.
type SpikeRegister struct {
	spikes   []SpikeEmission
	currents []CurrentEmission
}

// EmitSpike records a spike emitted by src at the given step. Offset is the
// sub-step emission time in [0, 1) of a step; grid-aligned models pass 0.
func (r *SpikeRegister) EmitSpike(
	src Node,
	step Steps,
	offset float64,
	multiplicity int,
) {
	r.spikes = append(r.spikes, SpikeEmission{
		Source:       src,
		Step:         step,
		Offset:       offset,
		Multiplicity: multiplicity,
	})
}

// EmitCurrent records the current output of src for the given step.
func (r *SpikeRegister) EmitCurrent(src Node, step Steps, current float64) {
	r.currents = append(r.currents, CurrentEmission{
		Source:  src,
		Step:    step,
		Current: current,
	})
}

// Spikes returns the collected spike emissions.
func (r *SpikeRegister) Spikes() []SpikeEmission {
	return r.spikes
}

// Currents returns the collected current emissions.
func (r *SpikeRegister) Currents() []CurrentEmission {
	return r.currents
}

// Reset empties the register, keeping capacity for the next step.
func (r *SpikeRegister) Reset() {
	r.spikes = r.spikes[:0]
	r.currents = r.currents[:0]
}
