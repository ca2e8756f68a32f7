package device

import (
	"github.com/spikelab/dendrite/recording"
	"github.com/spikelab/dendrite/sim"
)

// SpikeRow is one recorded spike arrival.
type SpikeRow struct {
	Sender       string
	Step         int64
	TimeMs       float64
	Offset       float64
	Multiplicity int64
}

// A SpikeRecorder is a sink node that stores every spike routed to it. Wire
// neurons to a recorder with weight 0 and the minimal delay; the recorded
// step is the emission step, not the delivery step.
type SpikeRecorder struct {
	name string

	recorder  recording.Recorder
	tableName string
	schedule  *sim.DelaySchedule
}

// NewSpikeRecorder creates a recorder that writes into the given table.
func NewSpikeRecorder(
	name string,
	recorder recording.Recorder,
	tableName string,
) *SpikeRecorder {
	recorder.CreateTable(tableName, SpikeRow{})

	return &SpikeRecorder{
		name:      name,
		recorder:  recorder,
		tableName: tableName,
	}
}

// Name returns the name of the recorder.
func (r *SpikeRecorder) Name() string {
	return r.name
}

// Calibrate keeps the schedule for time stamping.
func (r *SpikeRecorder) Calibrate(schedule *sim.DelaySchedule) {
	r.schedule = schedule
}

// Update does nothing; the recorder reacts to deliveries only.
func (r *SpikeRecorder) Update(step sim.Steps, out *sim.SpikeRegister) {
}

// SendTestEvent fails: a recorder has no outputs.
func (r *SpikeRecorder) SendTestEvent(target sim.Receiver, port int) (int, error) {
	return 0, &sim.IncompatibleReceptorTypeError{
		Node: r.name, Port: port, EventType: "any"}
}

// CheckSpikePort accepts spikes on port 0.
func (r *SpikeRecorder) CheckSpikePort(port int) (int, error) {
	if port != 0 {
		return 0, &sim.UnknownReceptorTypeError{Node: r.name, Port: port}
	}

	return 0, nil
}

// CheckCurrentPort rejects currents; the recorder stores spikes only.
func (r *SpikeRecorder) CheckCurrentPort(port int) (int, error) {
	return 0, &sim.IncompatibleReceptorTypeError{
		Node: r.name, Port: port, EventType: "current"}
}

// HandleSpike stores the arriving spike. Deliveries happen on the exchange
// stage of the emission step, so the current step is the emission step.
func (r *SpikeRecorder) HandleSpike(ev sim.SpikeEvent) {
	step := r.schedule.CurrentStep()

	r.recorder.InsertData(r.tableName, SpikeRow{
		Sender:       ev.SenderID,
		Step:         int64(step),
		TimeMs:       r.schedule.Resolution().Ms(step) + ev.Offset*float64(r.schedule.Resolution()),
		Offset:       ev.Offset,
		Multiplicity: int64(ev.Multiplicity),
	})
}

// HandleCurrent must never be called; wiring validation rejects it.
func (r *SpikeRecorder) HandleCurrent(ev sim.CurrentEvent) {
	panic(r.name + " does not accept current events")
}

var _ sim.Node = (*SpikeRecorder)(nil)
