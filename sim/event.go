package sim

// A SpikeEvent carries one (possibly coincident-multiple) spike from a source
// to a target receptor port. The shape is the in-process protocol between
// models: Weight and Multiplicity fold linearly into the additive ring
// buffers, DelaySteps selects the delivery slot, and Offset is the sub-step
// emission time in [0, 1) of a step for models that resolve spikes below the
// grid. Grid-aligned models leave Offset at zero and targets that do not care
// ignore it.
type SpikeEvent struct {
	ID           string
	SenderID     string
	Weight       float64
	Multiplicity int
	ReceptorPort int
	DelaySteps   Steps
	Offset       float64
}

// A CurrentEvent injects a continuous-valued current into a target receptor
// port, to be applied over the step DelaySteps from now.
type CurrentEvent struct {
	ID           string
	SenderID     string
	Current      float64
	ReceptorPort int
	DelaySteps   Steps
}

// SpikeEventBuilder can build spike events.
type SpikeEventBuilder struct {
	senderID     string
	weight       float64
	multiplicity int
	receptorPort int
	delaySteps   Steps
	offset       float64
}

// WithSender sets the ID of the emitting node.
func (b SpikeEventBuilder) WithSender(id string) SpikeEventBuilder {
	b.senderID = id
	return b
}

// WithWeight sets the synaptic weight stamped by the connection.
func (b SpikeEventBuilder) WithWeight(w float64) SpikeEventBuilder {
	b.weight = w
	return b
}

// WithMultiplicity sets the count of coincident spikes the event stands for.
func (b SpikeEventBuilder) WithMultiplicity(m int) SpikeEventBuilder {
	b.multiplicity = m
	return b
}

// WithReceptorPort sets the target input channel.
func (b SpikeEventBuilder) WithReceptorPort(port int) SpikeEventBuilder {
	b.receptorPort = port
	return b
}

// WithDelay sets the transmission delay in steps.
func (b SpikeEventBuilder) WithDelay(d Steps) SpikeEventBuilder {
	b.delaySteps = d
	return b
}

// WithOffset sets the sub-step emission offset in [0, 1) of a step.
func (b SpikeEventBuilder) WithOffset(offset float64) SpikeEventBuilder {
	b.offset = offset
	return b
}

// Build creates the spike event.
func (b SpikeEventBuilder) Build() SpikeEvent {
	if b.multiplicity == 0 {
		b.multiplicity = 1
	}

	return SpikeEvent{
		ID:           GetIDGenerator().Generate(),
		SenderID:     b.senderID,
		Weight:       b.weight,
		Multiplicity: b.multiplicity,
		ReceptorPort: b.receptorPort,
		DelaySteps:   b.delaySteps,
		Offset:       b.offset,
	}
}

// CurrentEventBuilder can build current events.
type CurrentEventBuilder struct {
	senderID     string
	current      float64
	receptorPort int
	delaySteps   Steps
}

// WithSender sets the ID of the emitting node.
func (b CurrentEventBuilder) WithSender(id string) CurrentEventBuilder {
	b.senderID = id
	return b
}

// WithCurrent sets the injected current in pA.
func (b CurrentEventBuilder) WithCurrent(i float64) CurrentEventBuilder {
	b.current = i
	return b
}

// WithReceptorPort sets the target input channel.
func (b CurrentEventBuilder) WithReceptorPort(port int) CurrentEventBuilder {
	b.receptorPort = port
	return b
}

// WithDelay sets the transmission delay in steps.
func (b CurrentEventBuilder) WithDelay(d Steps) CurrentEventBuilder {
	b.delaySteps = d
	return b
}

// Build creates the current event.
func (b CurrentEventBuilder) Build() CurrentEvent {
	return CurrentEvent{
		ID:           GetIDGenerator().Generate(),
		SenderID:     b.senderID,
		Current:      b.current,
		ReceptorPort: b.receptorPort,
		DelaySteps:   b.delaySteps,
	}
}
