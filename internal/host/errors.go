package host

import (
	"fmt"

	"github.com/blakepell/ArcaneScript/internal/value"
)

// argError builds the Error Value a builtin returns when it was called
// with the wrong arity or argument kinds. Returning an Error Value makes
// the evaluator short-circuit the rest of the program.
func argError(name, format string, args ...any) value.Value {
	return value.NewError("%s(): %s", name, fmt.Sprintf(format, args...))
}

func wantArgs(name string, got, want int) (value.Value, bool) {
	if got != want {
		return argError(name, "expects %d argument(s), got %d", want, got), false
	}
	return value.Value{}, true
}

func wantArgsRange(name string, got, min, max int) (value.Value, bool) {
	if got < min || got > max {
		return argError(name, "expects between %d and %d arguments, got %d", min, max, got), false
	}
	return value.Value{}, true
}

func wantKind(name string, v value.Value, k value.Kind, pos string) (value.Value, bool) {
	if v.Kind != k {
		return argError(name, "expects the %s argument to be %s", pos, k), false
	}
	return value.Value{}, true
}
