package device

import (
	"github.com/spikelab/dendrite/model"
	"github.com/spikelab/dendrite/recording"
	"github.com/spikelab/dendrite/sim"
)

// SampleRow is one recorded value of one recordable quantity.
type SampleRow struct {
	Node     string
	Step     int64
	Quantity string
	Value    float64
}

// A Multimeter samples the recordables of its targets at a fixed interval.
// It attaches to the engine as a step-end hook: at that point every node
// finished its update for the step, so the samples are consistent across
// targets regardless of worker partitioning.
type Multimeter struct {
	recorder  recording.Recorder
	tableName string
	interval  sim.Steps

	targets []model.Neuron
}

// NewMultimeter creates a multimeter writing into the given table. Attach it
// with engine.AcceptHook.
func NewMultimeter(
	recorder recording.Recorder,
	tableName string,
	interval sim.Steps,
) *Multimeter {
	if interval < 1 {
		interval = 1
	}

	recorder.CreateTable(tableName, SampleRow{})

	return &Multimeter{
		recorder:  recorder,
		tableName: tableName,
		interval:  interval,
	}
}

// Observe adds a neuron to the sampled set.
func (m *Multimeter) Observe(n model.Neuron) {
	m.targets = append(m.targets, n)
}

// Func samples at step-end boundaries that fall on the interval.
func (m *Multimeter) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosStepEnd || ctx.Step%m.interval != 0 {
		return
	}

	for _, target := range m.targets {
		for name, value := range target.Recordables().Snapshot() {
			m.recorder.InsertData(m.tableName, SampleRow{
				Node:     target.Name(),
				Step:     int64(ctx.Step),
				Quantity: name,
				Value:    value,
			})
		}
	}
}

var _ sim.Hook = (*Multimeter)(nil)
