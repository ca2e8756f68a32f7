package sim

import (
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type arrival struct {
	Step  Steps
	Value float64
}

// stubNode drains one additive buffer per step and records every non-zero
// delivery. It emits a spike at each step listed in emitAt.
type stubNode struct {
	name     string
	in       *RingBuffer
	emitAt   map[Steps]bool
	received []arrival
}

func newStubNode(name string) *stubNode {
	return &stubNode{
		name:   name,
		emitAt: make(map[Steps]bool),
	}
}

func (n *stubNode) Name() string {
	return n.name
}

func (n *stubNode) Calibrate(schedule *DelaySchedule) {
	if n.in == nil {
		n.in = NewRingBuffer(n.name+".In", schedule)
		return
	}

	n.in.Resize()
}

func (n *stubNode) Update(step Steps, out *SpikeRegister) {
	if v := n.in.GetValue(0); v != 0 {
		n.received = append(n.received, arrival{Step: step, Value: v})
	}

	if n.emitAt[step] {
		out.EmitSpike(n, step, 0, 1)
	}
}

func (n *stubNode) CheckSpikePort(port int) (int, error) {
	return port, nil
}

func (n *stubNode) CheckCurrentPort(port int) (int, error) {
	return port, nil
}

func (n *stubNode) HandleSpike(ev SpikeEvent) {
	n.in.AddValue(ev.DelaySteps, ev.Weight*float64(ev.Multiplicity))
}

func (n *stubNode) HandleCurrent(ev CurrentEvent) {
	n.in.AddValue(ev.DelaySteps, ev.Current)
}

func (n *stubNode) SendTestEvent(target Receiver, port int) (int, error) {
	return target.CheckSpikePort(port)
}

type recordingHook struct {
	positions []*HookPos
	spikes    []SpikeEvent
}

func (h *recordingHook) Func(ctx HookCtx) {
	h.positions = append(h.positions, ctx.Pos)

	if ctx.Pos == HookPosSpikeEmitted {
		h.spikes = append(h.spikes, ctx.Item.(SpikeEvent))
	}
}

var _ = ginkgo.Describe("SerialEngine", func() {
	var network *Network

	ginkgo.BeforeEach(func() {
		network = NewNetwork(0.1)
	})

	ginkgo.It("should deliver a spike exactly delay steps later", func() {
		source := newStubNode("Source")
		source.emitAt[0] = true
		sink := newStubNode("Sink")

		network.AddNode(source)
		network.AddNode(sink)
		_, err := network.Connect(source, sink, 2.5, 1.0, 0)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		engine := NewSerialEngine(network)
		gomega.Expect(engine.Run(2.0)).To(gomega.Succeed())

		gomega.Expect(sink.received).To(gomega.Equal([]arrival{
			{Step: 10, Value: 2.5},
		}))
	})

	ginkgo.It("should sum coincident deliveries into one slot", func() {
		a := newStubNode("A")
		a.emitAt[0] = true
		b := newStubNode("B")
		b.emitAt[0] = true
		sink := newStubNode("Sink")

		network.AddNode(a)
		network.AddNode(b)
		network.AddNode(sink)

		_, err := network.Connect(a, sink, 1.0, 0.5, 0)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		_, err = network.Connect(b, sink, 2.0, 0.5, 0)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		engine := NewSerialEngine(network)
		gomega.Expect(engine.Run(1.0)).To(gomega.Succeed())

		gomega.Expect(sink.received).To(gomega.Equal([]arrival{
			{Step: 5, Value: 3.0},
		}))
	})

	ginkgo.It("should keep deliveries with different delays apart", func() {
		source := newStubNode("Source")
		source.emitAt[0] = true
		near := newStubNode("Near")
		far := newStubNode("Far")

		network.AddNode(source)
		network.AddNode(near)
		network.AddNode(far)

		_, err := network.Connect(source, near, 1.0, 0.2, 0)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		_, err = network.Connect(source, far, 1.0, 1.5, 0)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		engine := NewSerialEngine(network)
		gomega.Expect(engine.Run(2.0)).To(gomega.Succeed())

		gomega.Expect(near.received).To(gomega.Equal([]arrival{
			{Step: 2, Value: 1.0},
		}))
		gomega.Expect(far.received).To(gomega.Equal([]arrival{
			{Step: 15, Value: 1.0},
		}))
	})

	ginkgo.It("should relay spikes across a chain", func() {
		source := newStubNode("Source")
		source.emitAt[0] = true
		relay := newStubNode("Relay")
		relay.emitAt[10] = true
		sink := newStubNode("Sink")

		network.AddNode(source)
		network.AddNode(relay)
		network.AddNode(sink)

		_, err := network.Connect(source, relay, 1.0, 1.0, 0)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		_, err = network.Connect(relay, sink, 1.0, 1.0, 0)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		engine := NewSerialEngine(network)
		gomega.Expect(engine.Run(3.0)).To(gomega.Succeed())

		gomega.Expect(relay.received).To(gomega.Equal([]arrival{
			{Step: 10, Value: 1.0},
		}))
		gomega.Expect(sink.received).To(gomega.Equal([]arrival{
			{Step: 20, Value: 1.0},
		}))
	})

	ginkgo.It("should invoke hooks around each step and on spikes", func() {
		source := newStubNode("Source")
		source.emitAt[0] = true
		sink := newStubNode("Sink")

		network.AddNode(source)
		network.AddNode(sink)
		_, err := network.Connect(source, sink, 1.0, 0.1, 0)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		hook := &recordingHook{}
		engine := NewSerialEngine(network)
		engine.AcceptHook(hook)

		gomega.Expect(engine.Run(0.2)).To(gomega.Succeed())

		gomega.Expect(hook.positions).To(gomega.Equal([]*HookPos{
			HookPosStepStart,
			HookPosSpikeEmitted,
			HookPosStepEnd,
			HookPosStepStart,
			HookPosStepEnd,
		}))
		gomega.Expect(hook.spikes).To(gomega.HaveLen(1))
		gomega.Expect(hook.spikes[0].SenderID).To(gomega.Equal("Source"))
	})

	ginkgo.It("should resume after a pause", func() {
		node := newStubNode("Node")
		network.AddNode(node)

		engine := NewSerialEngine(network)
		engine.Pause()

		done := make(chan struct{})
		go func() {
			defer ginkgo.GinkgoRecover()
			gomega.Expect(engine.Run(1.0)).To(gomega.Succeed())
			close(done)
		}()

		gomega.Consistently(done, 50*time.Millisecond).
			ShouldNot(gomega.BeClosed())

		engine.Continue()
		gomega.Eventually(done).Should(gomega.BeClosed())
		gomega.Expect(engine.CurrentStep()).To(gomega.Equal(Steps(10)))
	})
})

var _ = ginkgo.Describe("ParallelEngine", func() {
	ginkgo.It("should match the serial engine on a fan-in network", func() {
		run := func(makeEngine func(*Network) Engine) []arrival {
			network := NewNetwork(0.1)
			sink := newStubNode("Sink")
			network.AddNode(sink)

			for i := 0; i < 8; i++ {
				source := newStubNode("Source" + string(rune('A'+i)))
				source.emitAt[0] = true
				source.emitAt[7] = true
				network.AddNode(source)

				_, err := network.Connect(source, sink, 1.5, 0.3, 0)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
			}

			engine := makeEngine(network)
			gomega.Expect(engine.Run(2.0)).To(gomega.Succeed())

			return sink.received
		}

		serial := run(func(n *Network) Engine {
			return NewSerialEngine(n)
		})
		parallel := run(func(n *Network) Engine {
			return NewParallelEngine(n).WithNumWorkers(4)
		})

		gomega.Expect(serial).To(gomega.Equal([]arrival{
			{Step: 3, Value: 12.0},
			{Step: 10, Value: 12.0},
		}))
		gomega.Expect(parallel).To(gomega.Equal(serial))
	})

	ginkgo.It("should run with a single worker", func() {
		network := NewNetwork(0.1)
		source := newStubNode("Source")
		source.emitAt[0] = true
		sink := newStubNode("Sink")

		network.AddNode(source)
		network.AddNode(sink)
		_, err := network.Connect(source, sink, 1.0, 1.0, 0)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		engine := NewParallelEngine(network).WithNumWorkers(1)
		gomega.Expect(engine.Run(2.0)).To(gomega.Succeed())

		gomega.Expect(sink.received).To(gomega.Equal([]arrival{
			{Step: 10, Value: 1.0},
		}))
	})
})
