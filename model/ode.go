package model

import "fmt"

// An Evolver advances a contiguous state vector by dt milliseconds. Nonlinear
// models delegate their subthreshold dynamics to an external adaptive-step
// solver through this interface; the state vector stays owned by the model's
// State struct and is only lent out for the duration of the call.
type Evolver interface {
	Evolve(y []float64, dt float64) error
}

// DefaultEvolveAttempts bounds the step-halving retries in EvolveWithRetry.
const DefaultEvolveAttempts = 12

// A NumericalError reports that the solver could not advance the state within
// its error tolerance even after the bounded retries. It is simulation-fatal:
// the trajectory past this point would be unreliable.
type NumericalError struct {
	Attempts int
	Cause    error
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("state evolution failed after %d attempts: %v",
		e.Attempts, e.Cause)
}

func (e *NumericalError) Unwrap() error {
	return e.Cause
}

// EvolveWithRetry advances y by dt, retrying with halved internal steps when
// the solver rejects a step. Each retry doubles the number of sub-steps; once
// maxAttempts halvings are exhausted the error is surfaced as fatal.
func EvolveWithRetry(e Evolver, y []float64, dt float64, maxAttempts int) error {
	if maxAttempts < 1 {
		maxAttempts = DefaultEvolveAttempts
	}

	initial := make([]float64, len(y))
	copy(initial, y)

	substeps := 1
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		copy(y, initial)

		if lastErr = evolvePieces(e, y, dt, substeps); lastErr == nil {
			return nil
		}

		substeps *= 2
	}

	copy(y, initial)

	return &NumericalError{Attempts: maxAttempts, Cause: lastErr}
}

func evolvePieces(e Evolver, y []float64, dt float64, substeps int) error {
	piece := dt / float64(substeps)
	for i := 0; i < substeps; i++ {
		if err := e.Evolve(y, piece); err != nil {
			return err
		}
	}

	return nil
}
