package sim

// HookPos defines the enum of possible hooking positions
type HookPos struct {
	Name string
}

// HookPosStepStart triggers before the nodes update for a step.
var HookPosStepStart = &HookPos{Name: "Step Start"}

// HookPosStepEnd triggers after the spike exchange for a step completed.
var HookPosStepEnd = &HookPos{Name: "Step End"}

// HookPosSpikeEmitted triggers once per spike routed through a connection
// during the exchange stage. Item is the SpikeEvent being delivered.
var HookPosSpikeEmitted = &HookPos{Name: "Spike Emitted"}

// HookCtx is the context that holds all the information about the site that a
// hook is triggered
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Step   Steps
	Item   any
}

// Hookable defines an object that accept Hooks
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)
}

// Hook is a short piece of program that can be invoked by a hookable object.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides some utility function for other type that implement
// the Hookable interface.
type HookableBase struct {
	hooks []Hook
}

// AcceptHook registers a hook
func (h *HookableBase) AcceptHook(hook Hook) {
	h.hooks = append(h.hooks, hook)
}

// NumHooks returns the number of hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.hooks)
}

// InvokeHook triggers the registered Hooks
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hooks {
		hook.Func(ctx)
	}
}
