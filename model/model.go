// Package model defines the contract every neuron model in dendrite follows:
// a four-part decomposition of the instance data and a fixed per-step update
// protocol on top of the sim kernel.
//
// Each concrete model holds four value-typed structs by composition:
//
//   - Parameters: user-set, time-invariant physical constants. Mutated only
//     through ApplyStatus, which stages a copy, validates it in full, and
//     commits atomically.
//   - State: the mutable simulation state, updated every step.
//   - Variables: derived coefficients (propagator entries, decay factors,
//     cached refractory counts) recomputed only in Calibrate, never in the
//     per-step hot loop. The hot loop touches plain struct fields only: no
//     map lookups, no transcendental functions of Parameters.
//   - Buffers: the model's ring buffers and recording hookup.
//
// The per-step algorithm shared by all models: drain the ring buffers at
// offset 0, advance continuous state by one step with the precomputed
// propagators (exact for the linear subsystem), run the refractory/threshold
// state machine, and report any spike to the register.
package model

import "github.com/spikelab/dendrite/sim"

// A Neuron is a node whose observable state can be recorded and whose
// configuration can be read and updated as a property dictionary.
type Neuron interface {
	sim.Node

	Recordables() Recordables
	GetStatus() Status
	ApplyStatus(s Status) error
}

// Recordables maps a recordable quantity's name to a pure read accessor over
// the model's state. Models hand out accessors instead of privileged access
// to their internals; the multimeter and the monitor only ever read through
// this map. Built once in the model constructor.
type Recordables map[string]func() float64

// Names returns the recordable names. Order is unspecified.
func (r Recordables) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	return names
}

// Snapshot evaluates every accessor and returns the values by name.
func (r Recordables) Snapshot() map[string]float64 {
	values := make(map[string]float64, len(r))
	for name, read := range r {
		values[name] = read()
	}

	return values
}
