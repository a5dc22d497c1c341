package interp

import (
	"fmt"

	"github.com/blakepell/ArcaneScript/internal/value"
)

// Category names the taxonomic kind of a runtime error: type mismatch,
// unknown name, malformed template, wall-clock budget, and an internal
// catch-all for states that should be unreachable.
type Category string

const (
	CategoryType      Category = "Type error"
	CategoryRuntime   Category = "Runtime error"
	CategoryUndefined Category = "Undefined error"
	CategoryTemplate  Category = "Template error"
	CategoryTimeout   Category = "Timeout error"
	CategoryInternal  Category = "Internal error"
)

// fail constructs a categorized Error Value, latches the interpreter's
// return-pending flag so no further statements run, and returns the Value
// so call sites can both set the flag and hand back a result in one
// expression.
func (it *Interpreter) fail(cat Category, format string, args ...any) value.Value {
	msg := fmt.Sprintf(format, args...)
	v := value.NewError("%s: %s", cat, msg)
	it.returning = true
	it.returnValue = v
	return v
}
