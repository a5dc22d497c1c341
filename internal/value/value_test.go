package value

import "testing"

func TestAsStringConcatRules(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NewInt(42), "42"},
		{NewDouble(3.5), "3.500000"},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{NewString("hi"), "hi"},
		{NewNull(), "null"},
		{NewDate(DateValue{Month: 2, Day: 14, Year: 2025}), "02/14/2025"},
	}
	for _, c := range cases {
		if got := c.v.AsString(); got != c.want {
			t.Errorf("AsString(%+v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestArrayAsString(t *testing.T) {
	arr := NewArray([]Value{NewInt(1), NewString("x")})
	if got, want := arr.AsString(), "[1, x]"; got != want {
		t.Errorf("AsString() = %q, want %q", got, want)
	}
	if got, want := NewArray(nil).AsString(), "[]"; got != want {
		t.Errorf("AsString() of empty array = %q, want %q", got, want)
	}
}

func TestEqual(t *testing.T) {
	if !Equal(NewInt(5), NewInt(5)) {
		t.Error("expected equal ints to compare equal")
	}
	if Equal(NewInt(5), NewDouble(5)) {
		t.Error("expected different kinds to compare unequal")
	}
	if !Equal(NewDouble(1.0000000001), NewDouble(1.0000000002)) {
		t.Error("expected doubles within epsilon to compare equal")
	}
	d1 := NewDate(DateValue{Month: 1, Day: 1, Year: 2020})
	d2 := NewDate(DateValue{Month: 1, Day: 1, Year: 2020})
	if !Equal(d1, d2) {
		t.Error("expected matching dates to compare equal")
	}
}

func TestIsTruthy(t *testing.T) {
	if truth, ok := NewBool(true).IsTruthy(); !ok || !truth {
		t.Error("expected Bool(true) to be a valid truthy condition")
	}
	if truth, ok := NewInt(0).IsTruthy(); !ok || truth {
		t.Error("expected Int(0) to be falsy but a valid condition")
	}
	if _, ok := NewString("x").IsTruthy(); ok {
		t.Error("expected String to be an invalid condition type")
	}
}

func TestCompareDate(t *testing.T) {
	early := DateValue{Month: 1, Day: 1, Year: 2020}
	later := DateValue{Month: 6, Day: 1, Year: 2020}
	if CompareDate(early, later) >= 0 {
		t.Error("expected early date to compare less than later date")
	}
}
