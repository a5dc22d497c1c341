package host

import (
	"bytes"
	"strings"
	"testing"

	"github.com/blakepell/ArcaneScript/internal/value"
)

func call(t *testing.T, r *Registry, name string, args ...value.Value) value.Value {
	t.Helper()
	v, ok := r.Call(name, args)
	if !ok {
		t.Fatalf("no builtin registered under %q", name)
	}
	return v
}

func TestPrintPrintlnFormatting(t *testing.T) {
	var out bytes.Buffer
	r := NewRegistry()
	RegisterDefaults(r, &out, strings.NewReader(""))

	call(t, r, "print", value.NewDouble(3.5))
	call(t, r, "println", value.NewDouble(1))
	call(t, r, "print", value.NewNull())
	call(t, r, "println", value.NewString("done"))

	want := "3.500000\n" + "1.000000\n" + "\n" + "done\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestLeftRightClamping(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	if got := call(t, r, "left", value.NewString("hello"), value.NewInt(3)).StrVal; got != "hel" {
		t.Errorf("left = %q, want hel", got)
	}
	if got := call(t, r, "left", value.NewString("hi"), value.NewInt(50)).StrVal; got != "hi" {
		t.Errorf("left with oversized n = %q, want hi (clamped)", got)
	}
	if got := call(t, r, "right", value.NewString("hello"), value.NewInt(3)).StrVal; got != "llo" {
		t.Errorf("right = %q, want llo", got)
	}
	if got := call(t, r, "right", value.NewString("hi"), value.NewInt(-1)).StrVal; got != "" {
		t.Errorf("right with negative n = %q, want empty (clamped to 0)", got)
	}
}

func TestIndexOfAndLastIndexOf(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	if got := call(t, r, "index_of", value.NewString("abcabc"), value.NewString("bc"), value.NewInt(0)).IntVal; got != 1 {
		t.Errorf("index_of = %d, want 1", got)
	}
	if got := call(t, r, "index_of", value.NewString("abcabc"), value.NewString("bc"), value.NewInt(2)).IntVal; got != 4 {
		t.Errorf("index_of from offset 2 = %d, want 4", got)
	}
	if got := call(t, r, "last_index_of", value.NewString("abcabc"), value.NewString("bc")).IntVal; got != 4 {
		t.Errorf("last_index_of = %d, want 4", got)
	}
}

func TestSplitOnDelimiterSet(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	result := call(t, r, "split", value.NewString("a,b;c"), value.NewString(",;"))
	if result.Kind != value.Array || len(result.ArrayVal.Items) != 3 {
		t.Fatalf("got %+v, want a 3-element array", result)
	}
	if result.ArrayVal.Items[1].StrVal != "b" {
		t.Errorf("got %q, want b", result.ArrayVal.Items[1].StrVal)
	}
}

func TestListContainsAddRemove(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	if !call(t, r, "list_contains", value.NewString("foo bar"), value.NewString("BAR")).BoolVal {
		t.Error("expected list_contains to be case-insensitive")
	}
	added := call(t, r, "list_add", value.NewString("foo"), value.NewString("bar")).StrVal
	if added != "foo bar" {
		t.Errorf("list_add = %q, want %q", added, "foo bar")
	}
	removed := call(t, r, "list_remove", value.NewString("foo bar baz"), value.NewString("bar")).StrVal
	if removed != "foo baz" {
		t.Errorf("list_remove = %q, want %q", removed, "foo baz")
	}
}

func TestCintLeadingNumericPrefix(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	if got := call(t, r, "cint", value.NewString("42abc")).IntVal; got != 42 {
		t.Errorf("cint = %d, want 42", got)
	}
	if got := call(t, r, "cint", value.NewString("not a number")).IntVal; got != 0 {
		t.Errorf("cint of garbage = %d, want 0", got)
	}
}

func TestCstrDoubleUsesFixedSixDecimals(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	if got := call(t, r, "cstr", value.NewDouble(2.5)).StrVal; got != "2.500000" {
		t.Errorf("cstr = %q, want 2.500000", got)
	}
}

func TestIsNumber(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	if !call(t, r, "is_number", value.NewString("-42")).BoolVal {
		t.Error("expected -42 to be a number")
	}
	if call(t, r, "is_number", value.NewString("4.2")).BoolVal {
		t.Error("expected 4.2 to NOT be a number (no fractional support)")
	}
	if call(t, r, "is_number", value.NewString("")).BoolVal {
		t.Error("expected empty string to not be a number")
	}
}

func TestNewArrayArraySetUbound(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	arr := call(t, r, "new_array", value.NewInt(3))
	if arr.Kind != value.Array || len(arr.ArrayVal.Items) != 3 {
		t.Fatalf("got %+v, want a 3-element array", arr)
	}
	for _, item := range arr.ArrayVal.Items {
		if item.Kind != value.Null {
			t.Errorf("expected new_array to Null-initialize, got %+v", item)
		}
	}

	call(t, r, "array_set", arr, value.NewInt(1), value.NewString("x"))
	if arr.ArrayVal.Items[1].StrVal != "x" {
		t.Errorf("array_set did not mutate through the shared pointer: %+v", arr.ArrayVal.Items[1])
	}

	if got := call(t, r, "ubound", arr).IntVal; got != 2 {
		t.Errorf("ubound = %d, want 2", got)
	}

	oob := call(t, r, "array_set", arr, value.NewInt(99), value.NewString("y"))
	if oob.Kind != value.Error {
		t.Errorf("expected an out-of-bounds array_set to error, got %+v", oob)
	}
}

func TestLenAndStrlenAreTheSameBuiltin(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	if got := call(t, r, "len", value.NewString("hello")).IntVal; got != 5 {
		t.Errorf("len = %d, want 5", got)
	}
	if got := call(t, r, "strlen", value.NewString("hello")).IntVal; got != 5 {
		t.Errorf("strlen = %d, want 5", got)
	}
}

func TestRndWithinRange(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	for i := 0; i < 20; i++ {
		got := call(t, r, "rnd", value.NewInt(1), value.NewInt(3)).IntVal
		if got < 1 || got > 3 {
			t.Fatalf("rnd(1, 3) = %d, want in [1, 3]", got)
		}
	}
	if got := call(t, r, "number_range", value.NewInt(5), value.NewInt(5)).IntVal; got != 5 {
		t.Errorf("number_range(5, 5) = %d, want 5", got)
	}
}

func TestIsInterval(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	if !call(t, r, "is_interval", value.NewInt(10), value.NewInt(5)).BoolVal {
		t.Error("expected 10 to be an interval of 5")
	}
	if call(t, r, "is_interval", value.NewInt(10), value.NewInt(3)).BoolVal {
		t.Error("expected 10 to NOT be an interval of 3")
	}
	if call(t, r, "is_interval", value.NewInt(10), value.NewInt(0)).BoolVal {
		t.Error("expected a zero divisor to yield false, not an error")
	}
	if call(t, r, "is_interval", value.NewString("x"), value.NewInt(5)).BoolVal {
		t.Error("expected a non-Int operand to yield false")
	}
}

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	jan31 := value.NewDate(value.DateValue{Month: 1, Day: 31, Year: 2025})
	result := call(t, r, "add_months", jan31, value.NewInt(1))
	if result.DateVal.Month != 2 || result.DateVal.Day != 28 {
		t.Errorf("got %+v, want Feb 28 2025 (clamped, non-leap year)", result.DateVal)
	}
}

func TestAddYearsAdjustsLeapDay(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	leapDay := value.NewDate(value.DateValue{Month: 2, Day: 29, Year: 2024})
	result := call(t, r, "add_years", leapDay, value.NewInt(1))
	if result.DateVal.Month != 2 || result.DateVal.Day != 28 || result.DateVal.Year != 2025 {
		t.Errorf("got %+v, want Feb 28 2025", result.DateVal)
	}
}

func TestCdateParsesBothFieldOrders(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	cases := []struct {
		in   string
		want value.DateValue
	}{
		{"02/14/2025", value.DateValue{Month: 2, Day: 14, Year: 2025}},
		{"2025/02/14", value.DateValue{Month: 2, Day: 14, Year: 2025}},
	}
	for _, c := range cases {
		result := call(t, r, "cdate", value.NewString(c.in))
		if result.Kind != value.Date {
			t.Fatalf("cdate(%q) = %+v, want a Date value", c.in, result)
		}
		if result.DateVal != c.want {
			t.Errorf("cdate(%q) = %+v, want %+v", c.in, result.DateVal, c.want)
		}
	}
}

func TestArityAndKindValidationErrors(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, &bytes.Buffer{}, strings.NewReader(""))

	if got := call(t, r, "strlen"); got.Kind != value.Error {
		t.Errorf("expected strlen() with no args to error, got %+v", got)
	}
	if got := call(t, r, "left", value.NewInt(5), value.NewInt(1)); got.Kind != value.Error {
		t.Errorf("expected left(int, int) to error on the first argument's kind, got %+v", got)
	}
}
