package sim

import "log"

// A RingBuffer accumulates scalar contributions destined for future steps and
// hands each slot's total to its owner exactly once. The buffer spans the
// schedule's full delay horizon and rotates with simulation time: slot
// Modulo(0) is due now, slot Modulo(d) is due d steps from now.
//
// A buffer is exclusively owned by the node that drains it. Any number of
// connections may write into it, but all writes for one buffer happen on the
// spike-exchange stage, never concurrently with the owner's update.
type RingBuffer struct {
	name     string
	schedule *DelaySchedule
	data     []float64
}

// NewRingBuffer creates a buffer sized to the schedule's delay horizon.
func NewRingBuffer(name string, schedule *DelaySchedule) *RingBuffer {
	b := &RingBuffer{
		name:     name,
		schedule: schedule,
	}
	b.Resize()

	return b
}

// Name returns the name of the buffer.
func (b *RingBuffer) Name() string {
	return b.name
}

// Size returns the number of slots, equal to the delay horizon.
func (b *RingBuffer) Size() Steps {
	return Steps(len(b.data))
}

// AddValue accumulates v into the slot due offset steps from now.
func (b *RingBuffer) AddValue(offset Steps, v float64) {
	b.data[b.writeIndex(offset)] += v
}

// SetValue overwrites the slot due offset steps from now. Used for
// deterministic current injection where contributions must not sum.
func (b *RingBuffer) SetValue(offset Steps, v float64) {
	b.data[b.writeIndex(offset)] = v
}

// GetValue returns the accumulated value due at the given offset and zeroes
// the slot. Each slot may be consumed exactly once per rotation; a consuming
// read is legal only within the next minDelay steps, because slots beyond
// that window can still receive deliveries from the pending spike exchange.
func (b *RingBuffer) GetValue(offset Steps) float64 {
	if offset < 0 || offset >= b.schedule.MinDelay() {
		faultf("%s: consuming read at offset %d outside [0, %d) at step %d",
			b.name, offset, b.schedule.MinDelay(), b.schedule.CurrentStep())
	}

	i := b.schedule.Modulo(offset)
	v := b.data[i]
	b.data[i] = 0.0

	return v
}

// GetValuePrelim returns the value due at the given offset without consuming
// it. The slot remains pending and will be returned again by GetValue.
func (b *RingBuffer) GetValuePrelim(offset Steps) float64 {
	return b.data[b.writeIndex(offset)]
}

// Resize grows the buffer to the schedule's current delay horizon. Idempotent
// and a no-op when the horizon is unchanged; new slots are zero. The buffer
// never shrinks below the horizon. Growing is only meaningful before the
// network is frozen: the modulo mapping of live slots changes with the
// length, so resizing with unread content is a fault.
func (b *RingBuffer) Resize() {
	horizon := b.schedule.Horizon()
	if Steps(len(b.data)) == horizon {
		return
	}

	if b.residualSlot() >= 0 {
		faultf("%s: resize with unread content at step %d",
			b.name, b.schedule.CurrentStep())
	}

	b.data = make([]float64, horizon)
}

// Clear resizes the buffer to the current horizon and zeroes every slot.
// Unread input must never vanish silently, so any non-zero residual is
// logged before it is discarded.
func (b *RingBuffer) Clear() {
	if slot := b.residualSlot(); slot >= 0 {
		log.Printf("%s: discarding non-zero residual %g at slot %d",
			b.name, b.data[slot], slot)
	}

	for i := range b.data {
		b.data[i] = 0.0
	}

	b.Resize()
}

func (b *RingBuffer) residualSlot() int {
	for i, v := range b.data {
		if v != 0.0 {
			return i
		}
	}

	return -1
}

func (b *RingBuffer) writeIndex(offset Steps) Steps {
	if offset < 0 || offset >= b.Size() {
		faultf("%s: offset %d outside [0, %d) at step %d",
			b.name, offset, b.Size(), b.schedule.CurrentStep())
	}

	return b.schedule.Modulo(offset)
}
