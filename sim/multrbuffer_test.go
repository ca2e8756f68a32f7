package sim

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("MultRBuffer", func() {
	var (
		schedule *DelaySchedule
		buf      *MultRBuffer
	)

	ginkgo.BeforeEach(func() {
		schedule = NewDelaySchedule(0.1)
		schedule.EnsureDelay(3)
		schedule.Freeze()
		buf = NewMultRBuffer("Gain", schedule)
	})

	ginkgo.It("should span the delay horizon", func() {
		gomega.Expect(buf.Size()).To(gomega.Equal(Steps(4)))
	})

	ginkgo.It("should multiply contributions into a seeded slot", func() {
		buf.SetValue(0, 4.0)
		buf.AddValue(0, 0.5)

		gomega.Expect(buf.GetValue(0)).To(gomega.Equal(2.0))
	})

	ginkgo.It("should read an unwritten slot as zero", func() {
		gomega.Expect(buf.GetValue(0)).To(gomega.Equal(0.0))
	})

	ginkgo.It("should absorb gates multiplied into an unseeded slot", func() {
		buf.AddValue(0, 3.0)

		gomega.Expect(buf.GetValue(0)).To(gomega.Equal(0.0))
	})

	ginkgo.It("should zero a slot after the consuming read", func() {
		buf.AddValue(0, 2.0)
		buf.GetValue(0)
		buf.AddValue(0, 5.0)

		gomega.Expect(buf.GetValue(0)).To(gomega.Equal(0.0))
	})

	ginkgo.It("should reject writes outside the horizon", func() {
		gomega.Expect(func() {
			buf.AddValue(buf.Size(), 1.0)
		}).To(gomega.Panic())
	})

	ginkgo.It("should reject consuming reads beyond the safe window", func() {
		gomega.Expect(func() {
			buf.GetValue(schedule.MinDelay())
		}).To(gomega.Panic())
	})
})
