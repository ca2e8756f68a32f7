package sim

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ListRingBuffer", func() {
	var (
		schedule *DelaySchedule
		buf      *ListRingBuffer
	)

	ginkgo.BeforeEach(func() {
		schedule = NewDelaySchedule(0.1)
		schedule.EnsureDelay(3)
		schedule.Freeze()
		buf = NewListRingBuffer("Offsets", schedule)
	})

	ginkgo.It("should span the delay horizon", func() {
		gomega.Expect(buf.Size()).To(gomega.Equal(Steps(4)))
	})

	ginkgo.It("should preserve same-step entries in arrival order", func() {
		buf.AppendValue(0, 0.25)
		buf.AppendValue(0, 0.75)
		buf.AppendValue(0, 0.5)

		gomega.Expect(buf.GetList(0)).
			To(gomega.Equal([]float64{0.25, 0.75, 0.5}))
	})

	ginkgo.It("should not consume on read", func() {
		buf.AppendValue(0, 1.0)

		gomega.Expect(buf.GetList(0)).To(gomega.HaveLen(1))
		gomega.Expect(buf.GetList(0)).To(gomega.HaveLen(1))
	})

	ginkgo.It("should empty a slot on ClearSlot", func() {
		buf.AppendValue(0, 1.0)
		buf.AppendValue(0, 2.0)
		buf.ClearSlot(0)

		gomega.Expect(buf.GetList(0)).To(gomega.BeEmpty())
	})

	ginkgo.It("should keep generations apart after ClearSlot", func() {
		buf.AppendValue(0, 1.0)
		buf.ClearSlot(0)

		for i := Steps(0); i < buf.Size(); i++ {
			schedule.AdvanceStep()
		}

		gomega.Expect(buf.GetList(0)).To(gomega.BeEmpty())
	})

	ginkgo.It("should reject appends outside the horizon", func() {
		gomega.Expect(func() {
			buf.AppendValue(buf.Size(), 1.0)
		}).To(gomega.Panic())
	})

	ginkgo.It("should reject reads beyond the safe window", func() {
		gomega.Expect(func() {
			buf.GetList(schedule.MinDelay())
		}).To(gomega.Panic())
	})

	ginkgo.It("should empty every slot on clear", func() {
		buf.AppendValue(0, 1.0)
		buf.AppendValue(2, 2.0)
		buf.Clear()

		gomega.Expect(buf.GetList(0)).To(gomega.BeEmpty())
	})
})
