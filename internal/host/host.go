// Package host implements the host-function call protocol: a flat
// name-to-callback table populated before execution starts, each callback
// taking the evaluated argument Values and returning a Value. Arcane has
// no user-defined functions, so name lookup at call sites against this
// registry is the whole resolution story.
package host

import "github.com/blakepell/ArcaneScript/internal/value"

// Func is the signature every host-registered callback implements. If a
// callback needs to raise a script error it returns a value.NewError(...)
// result; the evaluator treats that exactly like any other runtime error
// and sets its return-pending flag.
type Func func(args []value.Value) value.Value

// Registry is the static, process-wide host-function table. Registration
// happens once, before a script runs; lookups during evaluation never
// mutate it, so one Registry can be shared across concurrent Interpreters.
type Registry struct {
	fns map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]Func)}
}

// Register installs fn under name, overwriting any previous registration
// for that name. An embedder calls this before running any script.
func (r *Registry) Register(name string, fn Func) {
	r.fns[name] = fn
}

// Call invokes the function registered under name. ok is false when name
// has no registration; the evaluator turns that into a runtime error.
func (r *Registry) Call(name string, args []value.Value) (value.Value, bool) {
	fn, ok := r.fns[name]
	if !ok {
		return value.Value{}, false
	}
	return fn(args), true
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.fns[name]
	return ok
}
