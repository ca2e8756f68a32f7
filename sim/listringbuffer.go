package sim

// A ListRingBuffer keeps every same-step entry individually instead of
// folding them into one scalar. Models that need the exact sub-step offset of
// each arriving spike drain the per-slot list and process the entries one by
// one.
//
// Unlike RingBuffer, reading does not consume: GetList hands out the slot by
// reference and the consumer clears it with ClearSlot after processing. A
// slot that is never drained grows without bound, so the owner must clear
// every slot it passes, even when it ignores the contents.
type ListRingBuffer struct {
	name     string
	schedule *DelaySchedule
	slots    [][]float64
}

// NewListRingBuffer creates a list buffer sized to the schedule's delay
// horizon.
func NewListRingBuffer(name string, schedule *DelaySchedule) *ListRingBuffer {
	b := &ListRingBuffer{
		name:     name,
		schedule: schedule,
	}
	b.Resize()

	return b
}

// Name returns the name of the buffer.
func (b *ListRingBuffer) Name() string {
	return b.name
}

// Size returns the number of slots.
func (b *ListRingBuffer) Size() Steps {
	return Steps(len(b.slots))
}

// AppendValue appends v to the slot due offset steps from now, preserving
// arrival order.
func (b *ListRingBuffer) AppendValue(offset Steps, v float64) {
	if offset < 0 || offset >= b.Size() {
		faultf("%s: offset %d outside [0, %d) at step %d",
			b.name, offset, b.Size(), b.schedule.CurrentStep())
	}

	i := b.schedule.Modulo(offset)
	b.slots[i] = append(b.slots[i], v)
}

// GetList returns the entries due at the given offset, by reference. The
// caller iterates the slice and then must call ClearSlot with the same
// offset.
func (b *ListRingBuffer) GetList(offset Steps) []float64 {
	if offset < 0 || offset >= b.schedule.MinDelay() {
		faultf("%s: read at offset %d outside [0, %d) at step %d",
			b.name, offset, b.schedule.MinDelay(), b.schedule.CurrentStep())
	}

	return b.slots[b.schedule.Modulo(offset)]
}

// ClearSlot empties the slot due at the given offset. The slot's capacity is
// kept so steady-state operation does not reallocate.
func (b *ListRingBuffer) ClearSlot(offset Steps) {
	if offset < 0 || offset >= b.schedule.MinDelay() {
		faultf("%s: clear at offset %d outside [0, %d) at step %d",
			b.name, offset, b.schedule.MinDelay(), b.schedule.CurrentStep())
	}

	i := b.schedule.Modulo(offset)
	b.slots[i] = b.slots[i][:0]
}

// Resize grows the buffer to the schedule's delay horizon with empty slots.
func (b *ListRingBuffer) Resize() {
	horizon := b.schedule.Horizon()
	if Steps(len(b.slots)) == horizon {
		return
	}

	for i, s := range b.slots {
		if len(s) > 0 {
			faultf("%s: resize with unread content at slot %d", b.name, i)
		}
	}

	b.slots = make([][]float64, horizon)
}

// Clear resizes and empties every slot.
func (b *ListRingBuffer) Clear() {
	for i := range b.slots {
		b.slots[i] = nil
	}

	b.Resize()
}
