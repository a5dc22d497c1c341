package host

import (
	"strconv"
	"strings"

	"github.com/blakepell/ArcaneScript/internal/value"
)

// registerConvert installs the type-conversion and introspection builtins:
// cint/cdbl/cstr/cbool, typeof, and is_number.
func registerConvert(r *Registry) {
	r.Register("cint", func(args []value.Value) value.Value {
		if e, ok := wantArgs("cint", len(args), 1); !ok {
			return e
		}
		switch args[0].Kind {
		case value.String:
			n, _ := strconv.ParseInt(strings.TrimSpace(leadingInt(args[0].StrVal)), 10, 64)
			return value.NewInt(n)
		case value.Bool:
			if args[0].BoolVal {
				return value.NewInt(1)
			}
			return value.NewInt(0)
		default:
			return argError("cint", "expects a string or bool argument")
		}
	})

	r.Register("cdbl", func(args []value.Value) value.Value {
		if e, ok := wantArgs("cdbl", len(args), 1); !ok {
			return e
		}
		switch args[0].Kind {
		case value.Double:
			return args[0]
		case value.Int:
			return value.NewDouble(float64(args[0].IntVal))
		case value.Bool:
			if args[0].BoolVal {
				return value.NewDouble(1)
			}
			return value.NewDouble(0)
		case value.String:
			f, _ := strconv.ParseFloat(strings.TrimSpace(args[0].StrVal), 64)
			return value.NewDouble(f)
		default:
			return argError("cdbl", "expects a string, int, bool, or double argument")
		}
	})

	r.Register("cstr", func(args []value.Value) value.Value {
		if e, ok := wantArgs("cstr", len(args), 1); !ok {
			return e
		}
		switch args[0].Kind {
		case value.Int:
			return value.NewString(strconv.FormatInt(args[0].IntVal, 10))
		case value.Double:
			return value.NewString(strconv.FormatFloat(args[0].DoubleVal, 'f', 6, 64))
		case value.Bool:
			if args[0].BoolVal {
				return value.NewString("true")
			}
			return value.NewString("false")
		case value.Date:
			return value.NewString(args[0].AsString())
		default:
			return argError("cstr", "expects an int, double, bool or date argument")
		}
	})

	r.Register("cbool", func(args []value.Value) value.Value {
		if e, ok := wantArgs("cbool", len(args), 1); !ok {
			return e
		}
		switch args[0].Kind {
		case value.Int:
			return value.NewBool(args[0].IntVal != 0)
		case value.String:
			switch strings.ToLower(args[0].StrVal) {
			case "true":
				return value.NewBool(true)
			case "false":
				return value.NewBool(false)
			default:
				return argError("cbool", "unsupported string value %q", args[0].StrVal)
			}
		default:
			return argError("cbool", "unsupported type")
		}
	})

	r.Register("typeof", func(args []value.Value) value.Value {
		if e, ok := wantArgs("typeof", len(args), 1); !ok {
			return e
		}
		return value.NewString(args[0].Kind.String())
	})

	r.Register("is_number", func(args []value.Value) value.Value {
		if e, ok := wantArgs("is_number", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("is_number", args[0], value.String, "first"); !ok {
			return e
		}
		s := strings.TrimSpace(args[0].StrVal)
		if s == "" {
			return value.NewBool(false)
		}
		if s[0] == '+' || s[0] == '-' {
			s = s[1:]
		}
		if s == "" {
			return value.NewBool(false)
		}
		for _, c := range s {
			if c < '0' || c > '9' {
				return value.NewBool(false)
			}
		}
		return value.NewBool(true)
	})
}

// leadingInt mimics atoi's behavior of parsing the leading numeric prefix
// of a string and ignoring trailing garbage; strconv.ParseInt requires a
// fully numeric string, so this trims to just that leading run first.
func leadingInt(s string) string {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return "0"
	}
	if s[:i] == "" {
		return "0"
	}
	prefix := s[:i]
	if prefix == "+" || prefix == "-" {
		return "0"
	}
	return prefix
}
