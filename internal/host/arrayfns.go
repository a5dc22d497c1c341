package host

import "github.com/blakepell/ArcaneScript/internal/value"

// registerArray installs the Array builtins. array_set mutates the shared
// ArrayValue in place, relying on value.Value.ArrayVal being a pointer so
// the mutation is visible through every alias of the array.
func registerArray(r *Registry) {
	r.Register("new_array", func(args []value.Value) value.Value {
		if e, ok := wantArgs("new_array", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("new_array", args[0], value.Int, "first"); !ok {
			return e
		}
		size := args[0].IntVal
		if size < 0 {
			return argError("new_array", "expects a non-negative integer")
		}
		items := make([]value.Value, size)
		for i := range items {
			items[i] = value.NewNull()
		}
		return value.NewArray(items)
	})

	r.Register("array_set", func(args []value.Value) value.Value {
		if e, ok := wantArgs("array_set", len(args), 3); !ok {
			return e
		}
		if e, ok := wantKind("array_set", args[0], value.Array, "first"); !ok {
			return e
		}
		if e, ok := wantKind("array_set", args[1], value.Int, "second"); !ok {
			return e
		}
		arr := args[0].ArrayVal
		idx := int(args[1].IntVal)
		if idx < 0 || idx >= len(arr.Items) {
			return argError("array_set", "array index out of bounds")
		}
		newVal := args[2]
		newVal.Temporary = false
		arr.Items[idx] = newVal
		return value.NewNull()
	})

	r.Register("ubound", func(args []value.Value) value.Value {
		if e, ok := wantArgs("ubound", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("ubound", args[0], value.Array, "first"); !ok {
			return e
		}
		return value.NewInt(int64(len(args[0].ArrayVal.Items) - 1))
	})
}
