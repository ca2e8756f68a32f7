package sim

// A Connection routes the emissions of one source node to one target port
// with a fixed weight and transmission delay. The delay is what the ring
// buffer on the target side absorbs: delivery happens immediately at
// exchange time, into the slot due DelaySteps from the emission step.
type Connection struct {
	id     string
	source Node
	target Node
	weight float64
	delay  Steps
	port   int
}

// ID returns the unique ID of the connection.
func (c *Connection) ID() string {
	return c.id
}

// Source returns the emitting node.
func (c *Connection) Source() Node {
	return c.source
}

// Target returns the receiving node.
func (c *Connection) Target() Node {
	return c.target
}

// Weight returns the synaptic weight.
func (c *Connection) Weight() float64 {
	return c.weight
}

// Delay returns the transmission delay in steps.
func (c *Connection) Delay() Steps {
	return c.delay
}

// Port returns the validated target receptor port.
func (c *Connection) Port() int {
	return c.port
}

// DeliverSpike stamps the connection's weight, delay, and port onto an
// emission and hands it to the target. Returns the delivered event for
// instrumentation.
func (c *Connection) DeliverSpike(em SpikeEmission) SpikeEvent {
	ev := SpikeEventBuilder{}.
		WithSender(em.Source.Name()).
		WithWeight(c.weight).
		WithMultiplicity(em.Multiplicity).
		WithReceptorPort(c.port).
		WithDelay(c.delay).
		WithOffset(em.Offset).
		Build()

	c.target.HandleSpike(ev)

	return ev
}

// DeliverCurrent routes a device's current output to the target, scaled by
// the connection weight.
func (c *Connection) DeliverCurrent(em CurrentEmission) CurrentEvent {
	ev := CurrentEventBuilder{}.
		WithSender(em.Source.Name()).
		WithCurrent(c.weight * em.Current).
		WithReceptorPort(c.port).
		WithDelay(c.delay).
		Build()

	c.target.HandleCurrent(ev)

	return ev
}

// ConnectionBuilder can build connections. Build runs the reciprocal
// test-event negotiation: the source validates the target's port for its
// event class, and the resulting connection carries the validated port. A
// negotiation failure aborts only this connection attempt.
type ConnectionBuilder struct {
	schedule *DelaySchedule
	source   Node
	target   Node
	weight   float64
	delayMs  float64
	port     int
}

// WithSchedule sets the delay schedule the connection registers with.
func (b ConnectionBuilder) WithSchedule(s *DelaySchedule) ConnectionBuilder {
	b.schedule = s
	return b
}

// WithSource sets the emitting node.
func (b ConnectionBuilder) WithSource(n Node) ConnectionBuilder {
	b.source = n
	return b
}

// WithTarget sets the receiving node.
func (b ConnectionBuilder) WithTarget(n Node) ConnectionBuilder {
	b.target = n
	return b
}

// WithWeight sets the synaptic weight.
func (b ConnectionBuilder) WithWeight(w float64) ConnectionBuilder {
	b.weight = w
	return b
}

// WithDelayMs sets the transmission delay in milliseconds.
func (b ConnectionBuilder) WithDelayMs(ms float64) ConnectionBuilder {
	b.delayMs = ms
	return b
}

// WithPort sets the requested target receptor port.
func (b ConnectionBuilder) WithPort(port int) ConnectionBuilder {
	b.port = port
	return b
}

// Build validates and creates the connection.
func (b ConnectionBuilder) Build() (*Connection, error) {
	if b.source == nil || b.target == nil {
		faultf("connection requires both a source and a target")
	}

	delay, err := b.schedule.Resolution().DelaySteps(b.delayMs)
	if err != nil {
		return nil, err
	}

	port, err := b.source.SendTestEvent(b.target, b.port)
	if err != nil {
		return nil, err
	}

	b.schedule.EnsureDelay(delay)

	return &Connection{
		id:     GetIDGenerator().Generate(),
		source: b.source,
		target: b.target,
		weight: b.weight,
		delay:  delay,
		port:   port,
	}, nil
}
