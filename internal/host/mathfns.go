package host

import (
	"math"
	"math/rand"

	"github.com/blakepell/ArcaneScript/internal/value"
)

// registerMath installs the numeric builtins. rnd and chance draw from
// math/rand's global source, which is auto-seeded.
func registerMath(r *Registry) {
	r.Register("abs", func(args []value.Value) value.Value {
		if e, ok := wantArgs("abs", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("abs", args[0], value.Int, "first"); !ok {
			return e
		}
		n := args[0].IntVal
		if n < 0 {
			n = -n
		}
		return value.NewInt(n)
	})

	r.Register("round", func(args []value.Value) value.Value {
		if e, ok := wantArgs("round", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("round", args[0], value.Double, "first"); !ok {
			return e
		}
		return value.NewInt(int64(math.Round(args[0].DoubleVal)))
	})

	r.Register("round_up", func(args []value.Value) value.Value {
		if e, ok := wantArgs("round_up", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("round_up", args[0], value.Double, "first"); !ok {
			return e
		}
		return value.NewInt(int64(math.Ceil(args[0].DoubleVal)))
	})

	r.Register("round_down", func(args []value.Value) value.Value {
		if e, ok := wantArgs("round_down", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("round_down", args[0], value.Double, "first"); !ok {
			return e
		}
		return value.NewInt(int64(math.Floor(args[0].DoubleVal)))
	})

	r.Register("sqrt", func(args []value.Value) value.Value {
		if e, ok := wantArgs("sqrt", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("sqrt", args[0], value.Double, "first"); !ok {
			return e
		}
		return value.NewDouble(math.Sqrt(args[0].DoubleVal))
	})

	r.Register("umin", func(args []value.Value) value.Value {
		if e, ok := wantArgs("umin", len(args), 2); !ok {
			return e
		}
		if e, ok := wantKind("umin", args[0], value.Int, "first"); !ok {
			return e
		}
		if e, ok := wantKind("umin", args[1], value.Int, "second"); !ok {
			return e
		}
		if args[0].IntVal < args[1].IntVal {
			return args[0]
		}
		return args[1]
	})

	r.Register("umax", func(args []value.Value) value.Value {
		if e, ok := wantArgs("umax", len(args), 2); !ok {
			return e
		}
		if e, ok := wantKind("umax", args[0], value.Int, "first"); !ok {
			return e
		}
		if e, ok := wantKind("umax", args[1], value.Int, "second"); !ok {
			return e
		}
		if args[0].IntVal > args[1].IntVal {
			return args[0]
		}
		return args[1]
	})

	r.Register("chance", func(args []value.Value) value.Value {
		if e, ok := wantArgs("chance", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("chance", args[0], value.Int, "first"); !ok {
			return e
		}
		pct := args[0].IntVal
		return value.NewBool(rand.Intn(100) < int(pct))
	})

	numberRangeFn := func(args []value.Value) value.Value {
		if e, ok := wantArgs("rnd", len(args), 2); !ok {
			return e
		}
		if e, ok := wantKind("rnd", args[0], value.Int, "first"); !ok {
			return e
		}
		if e, ok := wantKind("rnd", args[1], value.Int, "second"); !ok {
			return e
		}
		from, to := args[0].IntVal, args[1].IntVal
		if from == 0 && to == 0 {
			return value.NewInt(0)
		}
		span := to - from + 1
		if span <= 1 {
			return value.NewInt(from)
		}
		return value.NewInt(from + int64(rand.Intn(int(span))))
	}
	// Scripts call this as "rnd"; "number_range" stays registered as a
	// descriptive alias.
	r.Register("rnd", numberRangeFn)
	r.Register("number_range", numberRangeFn)

	r.Register("is_interval", func(args []value.Value) value.Value {
		if e, ok := wantArgs("is_interval", len(args), 2); !ok {
			return e
		}
		if args[0].Kind != value.Int || args[1].Kind != value.Int {
			return value.NewBool(false)
		}
		if args[1].IntVal == 0 {
			return value.NewBool(false)
		}
		return value.NewBool(args[0].IntVal%args[1].IntVal == 0)
	})
}
