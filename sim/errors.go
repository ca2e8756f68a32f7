package sim

import (
	"fmt"
	"log"
)

// A BadPropertyError reports an invalid parameter or parameter combination.
// It is raised during the validation phase of a status update and leaves the
// target's configuration unchanged.
type BadPropertyError struct {
	Node     string
	Property string
	Reason   string
}

func (e *BadPropertyError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("bad property %s: %s", e.Property, e.Reason)
	}

	return fmt.Sprintf("%s: bad property %s: %s", e.Node, e.Property, e.Reason)
}

// An UnknownReceptorTypeError reports a connection attempt to a receptor port
// number that the target does not define.
type UnknownReceptorTypeError struct {
	Node string
	Port int
}

func (e *UnknownReceptorTypeError) Error() string {
	return fmt.Sprintf("%s: unknown receptor type %d", e.Node, e.Port)
}

// An IncompatibleReceptorTypeError reports a connection attempt where the
// port exists but does not accept the event type the source emits.
type IncompatibleReceptorTypeError struct {
	Node      string
	Port      int
	EventType string
}

func (e *IncompatibleReceptorTypeError) Error() string {
	return fmt.Sprintf("%s: receptor %d does not accept %s events",
		e.Node, e.Port, e.EventType)
}

// faultf halts the run on an internal-consistency violation. Faults indicate
// a kernel bug (for example a buffer/schedule desynchronization), never bad
// user input, so they are fatal with full diagnostic context rather than
// returned as errors.
func faultf(format string, args ...any) {
	log.Panicf("internal fault: "+format, args...)
}
