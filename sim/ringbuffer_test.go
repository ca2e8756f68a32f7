package sim

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("RingBuffer", func() {
	var (
		schedule *DelaySchedule
		buf      *RingBuffer
	)

	ginkgo.BeforeEach(func() {
		schedule = NewDelaySchedule(0.1)
		schedule.EnsureDelay(4)
		schedule.Freeze()
		buf = NewRingBuffer("Buf", schedule)
	})

	ginkgo.It("should span the delay horizon", func() {
		gomega.Expect(buf.Size()).To(gomega.Equal(Steps(5)))
	})

	ginkgo.It("should accumulate contributions into one slot", func() {
		buf.AddValue(2, 1.5)
		buf.AddValue(2, 2.5)

		gomega.Expect(buf.GetValuePrelim(2)).To(gomega.Equal(4.0))
	})

	ginkgo.It("should hand each slot out exactly once", func() {
		buf.AddValue(0, 3.0)

		gomega.Expect(buf.GetValue(0)).To(gomega.Equal(3.0))
		gomega.Expect(buf.GetValue(0)).To(gomega.Equal(0.0))
	})

	ginkgo.It("should overwrite with SetValue", func() {
		buf.AddValue(1, 2.0)
		buf.SetValue(1, 7.0)

		gomega.Expect(buf.GetValuePrelim(1)).To(gomega.Equal(7.0))
	})

	ginkgo.It("should not consume on a preliminary read", func() {
		buf.AddValue(0, 1.0)

		gomega.Expect(buf.GetValuePrelim(0)).To(gomega.Equal(1.0))
		gomega.Expect(buf.GetValue(0)).To(gomega.Equal(1.0))
	})

	ginkgo.It("should deliver a write after its offset elapses", func() {
		buf.AddValue(3, 9.0)

		for i := 0; i < 3; i++ {
			gomega.Expect(buf.GetValue(0)).To(gomega.Equal(0.0))
			schedule.AdvanceStep()
		}

		gomega.Expect(buf.GetValue(0)).To(gomega.Equal(9.0))
	})

	ginkgo.It("should reuse slots across generations without bleed", func() {
		delay := Steps(4)
		for step := 0; step < 3*int(buf.Size()); step++ {
			buf.AddValue(delay, float64(step))

			var want float64
			if step >= int(delay) {
				want = float64(step - int(delay))
			}
			gomega.Expect(buf.GetValue(0)).To(gomega.Equal(want))

			schedule.AdvanceStep()
		}
	})

	ginkgo.It("should reject writes outside the horizon", func() {
		gomega.Expect(func() {
			buf.AddValue(buf.Size(), 1.0)
		}).To(gomega.Panic())
		gomega.Expect(func() {
			buf.AddValue(-1, 1.0)
		}).To(gomega.Panic())
	})

	ginkgo.It("should reject consuming reads beyond the safe window", func() {
		gomega.Expect(func() {
			buf.GetValue(schedule.MinDelay())
		}).To(gomega.Panic())
	})

	ginkgo.It("should keep its size on a redundant resize", func() {
		buf.AddValue(2, 1.0)
		buf.Resize()

		gomega.Expect(buf.Size()).To(gomega.Equal(Steps(5)))
		gomega.Expect(buf.GetValuePrelim(2)).To(gomega.Equal(1.0))
	})

	ginkgo.It("should refuse to grow over unread content", func() {
		s := NewDelaySchedule(0.1)
		b := NewRingBuffer("Pending", s)
		b.AddValue(0, 1.0)
		s.EnsureDelay(3)

		gomega.Expect(func() {
			b.Resize()
		}).To(gomega.Panic())
	})

	ginkgo.It("should grow with zeroed slots once drained", func() {
		s := NewDelaySchedule(0.1)
		b := NewRingBuffer("Growing", s)
		s.EnsureDelay(3)
		b.Resize()

		gomega.Expect(b.Size()).To(gomega.Equal(Steps(4)))
		for i := Steps(0); i < b.Size(); i++ {
			gomega.Expect(b.GetValuePrelim(i)).To(gomega.Equal(0.0))
		}
	})

	ginkgo.It("should zero every slot on clear", func() {
		buf.AddValue(1, 2.0)
		buf.AddValue(4, 3.0)
		buf.Clear()

		for i := Steps(0); i < buf.Size(); i++ {
			gomega.Expect(buf.GetValuePrelim(i)).To(gomega.Equal(0.0))
		}
	})
})
