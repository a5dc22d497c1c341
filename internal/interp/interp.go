// Package interp is the tree-walking evaluator: it drives statement
// execution and expression evaluation over the ast package's nodes.
// Control flow (return, break, continue) propagates through three flags on
// the Interpreter rather than through Go panics or error returns.
package interp

import (
	"time"

	"github.com/blakepell/ArcaneScript/internal/ast"
	"github.com/blakepell/ArcaneScript/internal/host"
	"github.com/blakepell/ArcaneScript/internal/value"
)

// Interpreter holds the per-execution state: a variable store, a captured
// return value, and the three control flags (return-pending, break-pending,
// continue-pending). One Interpreter per execution; nothing is process-wide.
type Interpreter struct {
	Env  *value.Environment
	Host *host.Registry

	// Budget is the optional wall-clock execution ceiling. Zero disables
	// the check.
	Budget time.Duration

	startedAt time.Time

	returning   bool
	breaking    bool
	continuing  bool
	returnValue value.Value
}

// NewInterpreter creates an Interpreter with a fresh, empty variable store
// bound to the given host-function registry.
func NewInterpreter(h *host.Registry) *Interpreter {
	return &Interpreter{Env: value.NewEnvironment(), Host: h}
}

// Run executes prog top-to-bottom: statements run in source order with an
// empty store and cleared flags until end-of-input or return-pending, then
// the store is released exactly once and the captured return Value (Null
// if none was ever set) is handed back.
func (it *Interpreter) Run(prog *ast.Program) value.Value {
	it.returning, it.breaking, it.continuing = false, false, false
	it.returnValue = value.NewNull()
	it.startedAt = time.Now()

	for _, stmt := range prog.Statements {
		it.execStmt(stmt)
		if it.returning {
			break
		}
	}

	result := it.returnValue
	it.Env.Release()
	return result
}

// budgetExceeded reports whether the configured wall-clock budget has
// elapsed since Run started. Checked at statement and loop-iteration
// boundaries, never inside an expression.
func (it *Interpreter) budgetExceeded() bool {
	return it.Budget > 0 && time.Since(it.startedAt) > it.Budget
}
