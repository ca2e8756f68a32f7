package sim

// A Network registers the nodes of a simulation, owns the delay schedule,
// and keeps the connection lists the exchange stage routes through.
type Network struct {
	schedule    *DelaySchedule
	nodes       []Node
	nodeIndex   map[string]int
	outgoing    map[string][]*Connection
	connections []*Connection
}

// NewNetwork creates an empty network on a grid of the given resolution.
func NewNetwork(resolution Timestep) *Network {
	return &Network{
		schedule:  NewDelaySchedule(resolution),
		nodeIndex: make(map[string]int),
		outgoing:  make(map[string][]*Connection),
	}
}

// Schedule returns the delay schedule owned by the network.
func (n *Network) Schedule() *DelaySchedule {
	return n.schedule
}

// AddNode registers a node with the network. Node names must be unique.
func (n *Network) AddNode(node Node) {
	name := node.Name()
	if _, exists := n.nodeIndex[name]; exists {
		panic("node " + name + " already registered")
	}

	n.nodes = append(n.nodes, node)
	n.nodeIndex[name] = len(n.nodes) - 1
}

// NodeByName returns the node with the given name.
func (n *Network) NodeByName(name string) Node {
	i, exists := n.nodeIndex[name]
	if !exists {
		panic("node " + name + " is not registered")
	}

	return n.nodes[i]
}

// Nodes returns all registered nodes in registration order.
func (n *Network) Nodes() []Node {
	return n.nodes
}

// Connections returns all connections in wiring order.
func (n *Network) Connections() []*Connection {
	return n.connections
}

// Outgoing returns the connections whose source is the given node.
func (n *Network) Outgoing(node Node) []*Connection {
	return n.outgoing[node.Name()]
}

// Connect wires source to target. The connection negotiation may reject the
// port or the delay; a rejection leaves the network unchanged.
func (n *Network) Connect(
	source, target Node,
	weight, delayMs float64,
	port int,
) (*Connection, error) {
	if n.schedule.Frozen() {
		return nil, &BadPropertyError{
			Node:     source.Name(),
			Property: "connection",
			Reason:   "network is already frozen",
		}
	}

	conn, err := ConnectionBuilder{}.
		WithSchedule(n.schedule).
		WithSource(source).
		WithTarget(target).
		WithWeight(weight).
		WithDelayMs(delayMs).
		WithPort(port).
		Build()
	if err != nil {
		return nil, err
	}

	n.connections = append(n.connections, conn)
	n.outgoing[source.Name()] = append(n.outgoing[source.Name()], conn)

	return conn, nil
}

// Freeze fixes the delay horizon and calibrates every node. Calibration
// sizes the ring buffers to the final horizon and recomputes the derived
// per-model coefficients. Called once, before the first update; idempotent.
func (n *Network) Freeze() {
	if n.schedule.Frozen() {
		return
	}

	n.schedule.Freeze()

	for _, node := range n.nodes {
		node.Calibrate(n.schedule)
	}
}

// Partitions splits the nodes into k disjoint subsets, one per worker. The
// assignment is by registration order, round-robin, and stays fixed for the
// whole run so that every node is only ever updated by one worker.
func (n *Network) Partitions(k int) [][]Node {
	if k < 1 {
		faultf("cannot partition into %d subsets", k)
	}

	parts := make([][]Node, k)
	for i, node := range n.nodes {
		parts[i%k] = append(parts[i%k], node)
	}

	return parts
}
