package host

import (
	"fmt"
	"io"
	"strings"

	"github.com/blakepell/ArcaneScript/internal/value"
)

// registerStrings installs the string-manipulation builtins. print and
// println are both line-terminated.
func registerStrings(r *Registry, out io.Writer) {
	lineFn := func(name string) Func {
		return func(args []value.Value) value.Value {
			if e, ok := wantArgs(name, len(args), 1); !ok {
				return e
			}
			fmt.Fprintln(out, printFormat(args[0]))
			return value.NewNull()
		}
	}
	r.Register("print", lineFn("print"))
	r.Register("println", lineFn("println"))

	strlenFn := func(args []value.Value) value.Value {
		if _, ok := wantArgs("len", len(args), 1); !ok {
			return argError("len", "expects exactly one argument")
		}
		if args[0].Kind != value.String {
			return value.NewInt(-1)
		}
		return value.NewInt(int64(len(args[0].StrVal)))
	}
	// Scripts call this as "len"; "strlen" stays registered as a
	// descriptive alias for embedders coming from the Go side.
	r.Register("len", strlenFn)
	r.Register("strlen", strlenFn)

	r.Register("left", func(args []value.Value) value.Value {
		if e, ok := wantArgs("left", len(args), 2); !ok {
			return e
		}
		if e, ok := wantKind("left", args[0], value.String, "first"); !ok {
			return e
		}
		if e, ok := wantKind("left", args[1], value.Int, "second"); !ok {
			return e
		}
		s := args[0].StrVal
		n := clampLen(int(args[1].IntVal), len(s))
		return value.NewString(s[:n])
	})

	r.Register("right", func(args []value.Value) value.Value {
		if e, ok := wantArgs("right", len(args), 2); !ok {
			return e
		}
		if e, ok := wantKind("right", args[0], value.String, "first"); !ok {
			return e
		}
		if e, ok := wantKind("right", args[1], value.Int, "second"); !ok {
			return e
		}
		s := args[0].StrVal
		n := clampLen(int(args[1].IntVal), len(s))
		return value.NewString(s[len(s)-n:])
	})

	r.Register("substring", func(args []value.Value) value.Value {
		if e, ok := wantArgs("substring", len(args), 3); !ok {
			return e
		}
		if e, ok := wantKind("substring", args[0], value.String, "first"); !ok {
			return e
		}
		if e, ok := wantKind("substring", args[1], value.Int, "second"); !ok {
			return e
		}
		if e, ok := wantKind("substring", args[2], value.Int, "third"); !ok {
			return e
		}
		s := args[0].StrVal
		start := int(args[1].IntVal)
		length := int(args[2].IntVal)
		if start < 0 {
			start = 0
		}
		if length < 0 {
			length = 0
		}
		if start >= len(s) {
			return value.NewString("")
		}
		end := start + length
		if end > len(s) {
			end = len(s)
		}
		return value.NewString(s[start:end])
	})

	r.Register("trim", func(args []value.Value) value.Value {
		if e, ok := wantArgs("trim", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("trim", args[0], value.String, "first"); !ok {
			return e
		}
		return value.NewString(strings.TrimSpace(args[0].StrVal))
	})

	r.Register("trim_start", func(args []value.Value) value.Value {
		if e, ok := wantArgs("trim_start", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("trim_start", args[0], value.String, "first"); !ok {
			return e
		}
		return value.NewString(strings.TrimLeft(args[0].StrVal, " \t\r\n\v\f"))
	})

	r.Register("trim_end", func(args []value.Value) value.Value {
		if e, ok := wantArgs("trim_end", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("trim_end", args[0], value.String, "first"); !ok {
			return e
		}
		return value.NewString(strings.TrimRight(args[0].StrVal, " \t\r\n\v\f"))
	})

	r.Register("lcase", func(args []value.Value) value.Value {
		if e, ok := wantArgs("lcase", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("lcase", args[0], value.String, "first"); !ok {
			return e
		}
		return value.NewString(strings.ToLower(args[0].StrVal))
	})

	r.Register("ucase", func(args []value.Value) value.Value {
		if e, ok := wantArgs("ucase", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("ucase", args[0], value.String, "first"); !ok {
			return e
		}
		return value.NewString(strings.ToUpper(args[0].StrVal))
	})

	r.Register("replace", func(args []value.Value) value.Value {
		if e, ok := wantArgs("replace", len(args), 3); !ok {
			return e
		}
		for i, pos := range []string{"first", "second", "third"} {
			if e, ok := wantKind("replace", args[i], value.String, pos); !ok {
				return e
			}
		}
		return value.NewString(strings.ReplaceAll(args[0].StrVal, args[1].StrVal, args[2].StrVal))
	})

	r.Register("contains", func(args []value.Value) value.Value {
		if e, ok := wantArgs("contains", len(args), 2); !ok {
			return e
		}
		if e, ok := wantKind("contains", args[0], value.String, "first"); !ok {
			return e
		}
		if e, ok := wantKind("contains", args[1], value.String, "second"); !ok {
			return e
		}
		return value.NewBool(strings.Contains(args[0].StrVal, args[1].StrVal))
	})

	r.Register("starts_with", func(args []value.Value) value.Value {
		if e, ok := wantArgs("starts_with", len(args), 2); !ok {
			return e
		}
		if e, ok := wantKind("starts_with", args[0], value.String, "first"); !ok {
			return e
		}
		if e, ok := wantKind("starts_with", args[1], value.String, "second"); !ok {
			return e
		}
		return value.NewBool(strings.HasPrefix(args[0].StrVal, args[1].StrVal))
	})

	r.Register("ends_with", func(args []value.Value) value.Value {
		if e, ok := wantArgs("ends_with", len(args), 2); !ok {
			return e
		}
		if e, ok := wantKind("ends_with", args[0], value.String, "first"); !ok {
			return e
		}
		if e, ok := wantKind("ends_with", args[1], value.String, "second"); !ok {
			return e
		}
		return value.NewBool(strings.HasSuffix(args[0].StrVal, args[1].StrVal))
	})

	r.Register("index_of", func(args []value.Value) value.Value {
		if e, ok := wantArgs("index_of", len(args), 3); !ok {
			return e
		}
		if e, ok := wantKind("index_of", args[0], value.String, "first"); !ok {
			return e
		}
		if e, ok := wantKind("index_of", args[1], value.String, "second"); !ok {
			return e
		}
		if e, ok := wantKind("index_of", args[2], value.Int, "third"); !ok {
			return e
		}
		s := args[0].StrVal
		start := int(args[2].IntVal)
		if start < 0 || start >= len(s) {
			return value.NewInt(-1)
		}
		idx := strings.Index(s[start:], args[1].StrVal)
		if idx < 0 {
			return value.NewInt(-1)
		}
		return value.NewInt(int64(idx + start))
	})

	r.Register("last_index_of", func(args []value.Value) value.Value {
		if e, ok := wantArgsRange("last_index_of", len(args), 2, 3); !ok {
			return e
		}
		if e, ok := wantKind("last_index_of", args[0], value.String, "first"); !ok {
			return e
		}
		if e, ok := wantKind("last_index_of", args[1], value.String, "second"); !ok {
			return e
		}
		s := args[0].StrVal
		sub := args[1].StrVal
		start := len(s) - 1
		if len(args) == 3 {
			if e, ok := wantKind("last_index_of", args[2], value.Int, "third"); !ok {
				return e
			}
			start = int(args[2].IntVal)
		}
		if start < 0 {
			return value.NewInt(-1)
		}
		if start >= len(s) {
			start = len(s) - 1
		}
		for i := start; i >= 0; i-- {
			if i+len(sub) > len(s) {
				continue
			}
			if s[i:i+len(sub)] == sub {
				return value.NewInt(int64(i))
			}
		}
		return value.NewInt(-1)
	})

	r.Register("split", func(args []value.Value) value.Value {
		if e, ok := wantArgs("split", len(args), 2); !ok {
			return e
		}
		if e, ok := wantKind("split", args[0], value.String, "first"); !ok {
			return e
		}
		if e, ok := wantKind("split", args[1], value.String, "second"); !ok {
			return e
		}
		parts := strings.FieldsFunc(args[0].StrVal, func(r rune) bool {
			return strings.ContainsRune(args[1].StrVal, r)
		})
		items := make([]value.Value, len(parts))
		for i, p := range parts {
			items[i] = value.NewString(p)
		}
		return value.NewArray(items)
	})

	r.Register("chr", func(args []value.Value) value.Value {
		if e, ok := wantArgs("chr", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("chr", args[0], value.Int, "first"); !ok {
			return e
		}
		return value.NewString(string(rune(byte(args[0].IntVal))))
	})

	r.Register("asc", func(args []value.Value) value.Value {
		if e, ok := wantArgs("asc", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("asc", args[0], value.String, "first"); !ok {
			return e
		}
		if args[0].StrVal == "" {
			return value.NewInt(0)
		}
		return value.NewInt(int64(args[0].StrVal[0]))
	})

	r.Register("list_contains", func(args []value.Value) value.Value {
		if e, ok := wantArgs("list_contains", len(args), 2); !ok {
			return e
		}
		return value.NewBool(listContains(args[0].StrVal, args[1].StrVal))
	})

	r.Register("list_add", func(args []value.Value) value.Value {
		if e, ok := wantArgs("list_add", len(args), 2); !ok {
			return e
		}
		list, item := args[0].StrVal, args[1].StrVal
		if listContains(list, item) {
			return value.NewString(list)
		}
		if list == "" {
			return value.NewString(item)
		}
		return value.NewString(list + " " + item)
	})

	r.Register("list_remove", func(args []value.Value) value.Value {
		if e, ok := wantArgs("list_remove", len(args), 2); !ok {
			return e
		}
		fields := strings.Fields(args[0].StrVal)
		kept := fields[:0]
		for _, f := range fields {
			if !strings.EqualFold(f, args[1].StrVal) {
				kept = append(kept, f)
			}
		}
		return value.NewString(strings.Join(kept, " "))
	})
}

// printFormat renders a Value for print/println: Null prints an empty
// line, everything else uses the shared stringification rules (doubles in
// fixed six-decimal notation, dates as MM/DD/YYYY, bools as true/false).
func printFormat(v value.Value) string {
	if v.Kind == value.Null {
		return ""
	}
	return v.AsString()
}

func clampLen(n, strLen int) int {
	if n < 0 {
		n = 0
	}
	if n > strLen {
		n = strLen
	}
	return n
}

// listContains searches a whitespace-separated "list" string for an
// exact, case-insensitive token match.
func listContains(list, item string) bool {
	for _, f := range strings.Fields(list) {
		if strings.EqualFold(f, item) {
			return true
		}
	}
	return false
}
