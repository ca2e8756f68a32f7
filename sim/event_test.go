package sim

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("SpikeEventBuilder", func() {
	ginkgo.It("should build", func() {
		ev := SpikeEventBuilder{}.
			WithSender("Neuron1").
			WithWeight(-12.5).
			WithMultiplicity(3).
			WithReceptorPort(0).
			WithDelay(10).
			WithOffset(0.4).
			Build()

		gomega.Expect(ev.ID).ToNot(gomega.BeEmpty())
		gomega.Expect(ev.SenderID).To(gomega.Equal("Neuron1"))
		gomega.Expect(ev.Weight).To(gomega.Equal(-12.5))
		gomega.Expect(ev.Multiplicity).To(gomega.Equal(3))
		gomega.Expect(ev.ReceptorPort).To(gomega.Equal(0))
		gomega.Expect(ev.DelaySteps).To(gomega.Equal(Steps(10)))
		gomega.Expect(ev.Offset).To(gomega.Equal(0.4))
	})

	ginkgo.It("should default to a single spike", func() {
		ev := SpikeEventBuilder{}.WithSender("Neuron1").Build()

		gomega.Expect(ev.Multiplicity).To(gomega.Equal(1))
	})
})

var _ = ginkgo.Describe("CurrentEventBuilder", func() {
	ginkgo.It("should build", func() {
		ev := CurrentEventBuilder{}.
			WithSender("DC1").
			WithCurrent(375.0).
			WithReceptorPort(0).
			WithDelay(1).
			Build()

		gomega.Expect(ev.ID).ToNot(gomega.BeEmpty())
		gomega.Expect(ev.SenderID).To(gomega.Equal("DC1"))
		gomega.Expect(ev.Current).To(gomega.Equal(375.0))
		gomega.Expect(ev.DelaySteps).To(gomega.Equal(Steps(1)))
	})
})
