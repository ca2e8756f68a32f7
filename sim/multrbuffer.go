package sim

import "log"

// A MultRBuffer has the same storage and indexing as a RingBuffer, but
// incoming contributions multiply into a slot instead of summing. It carries
// modulatory gain signals that must gate, not add to, what is already there.
//
// Clear and consuming reads reset slots to 0.0, not to the multiplicative
// identity. An unwritten slot therefore reads as "no gate present" rather
// than "gain of one"; use sites are expected to test for zero before
// applying the gate.
type MultRBuffer struct {
	name     string
	schedule *DelaySchedule
	data     []float64
}

// NewMultRBuffer creates a multiplicative buffer sized to the schedule's
// delay horizon.
func NewMultRBuffer(name string, schedule *DelaySchedule) *MultRBuffer {
	b := &MultRBuffer{
		name:     name,
		schedule: schedule,
	}
	b.Resize()

	return b
}

// Name returns the name of the buffer.
func (b *MultRBuffer) Name() string {
	return b.name
}

// Size returns the number of slots.
func (b *MultRBuffer) Size() Steps {
	return Steps(len(b.data))
}

// AddValue multiplies v into the slot due offset steps from now.
func (b *MultRBuffer) AddValue(offset Steps, v float64) {
	if offset < 0 || offset >= b.Size() {
		faultf("%s: offset %d outside [0, %d) at step %d",
			b.name, offset, b.Size(), b.schedule.CurrentStep())
	}

	b.data[b.schedule.Modulo(offset)] *= v
}

// SetValue overwrites the slot due offset steps from now. This is the only
// way to seed a cleared slot, since multiplying into 0.0 absorbs the write.
func (b *MultRBuffer) SetValue(offset Steps, v float64) {
	if offset < 0 || offset >= b.Size() {
		faultf("%s: offset %d outside [0, %d) at step %d",
			b.name, offset, b.Size(), b.schedule.CurrentStep())
	}

	b.data[b.schedule.Modulo(offset)] = v
}

// GetValue returns the gated value due at the given offset and zeroes the
// slot. The same consuming-read window applies as for RingBuffer.
func (b *MultRBuffer) GetValue(offset Steps) float64 {
	if offset < 0 || offset >= b.schedule.MinDelay() {
		faultf("%s: consuming read at offset %d outside [0, %d) at step %d",
			b.name, offset, b.schedule.MinDelay(), b.schedule.CurrentStep())
	}

	i := b.schedule.Modulo(offset)
	v := b.data[i]
	b.data[i] = 0.0

	return v
}

// Resize grows the buffer to the schedule's delay horizon. New slots are
// zero.
func (b *MultRBuffer) Resize() {
	horizon := b.schedule.Horizon()
	if Steps(len(b.data)) == horizon {
		return
	}

	for i, v := range b.data {
		if v != 0.0 {
			faultf("%s: resize with unread content at slot %d", b.name, i)
		}
	}

	b.data = make([]float64, horizon)
}

// Clear resizes and zeroes every slot, logging any residual it discards.
func (b *MultRBuffer) Clear() {
	for i, v := range b.data {
		if v != 0.0 {
			log.Printf("%s: discarding non-zero residual %g at slot %d",
				b.name, v, i)
			break
		}
	}

	for i := range b.data {
		b.data[i] = 0.0
	}

	b.Resize()
}
