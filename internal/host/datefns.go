package host

import (
	"fmt"
	"time"

	"github.com/blakepell/ArcaneScript/internal/value"
)

// registerDate installs the Date builtins. Month/year arithmetic clamps
// an overflowing day-of-month rather than delegating to time.Time.AddDate,
// which rolls the overflow into the following month (Jan 31 + 1 month
// would become Mar 3, not Feb 28/29).
func registerDate(r *Registry) {
	r.Register("month", func(args []value.Value) value.Value {
		if e, ok := dateArg("month", args); !ok {
			return e
		}
		return value.NewInt(int64(args[0].DateVal.Month))
	})

	r.Register("day", func(args []value.Value) value.Value {
		if e, ok := dateArg("day", args); !ok {
			return e
		}
		return value.NewInt(int64(args[0].DateVal.Day))
	})

	r.Register("year", func(args []value.Value) value.Value {
		if e, ok := dateArg("year", args); !ok {
			return e
		}
		return value.NewInt(int64(args[0].DateVal.Year))
	})

	r.Register("cdate", func(args []value.Value) value.Value {
		if e, ok := wantArgs("cdate", len(args), 1); !ok {
			return e
		}
		switch args[0].Kind {
		case value.String:
			var m, d, y int
			if _, err := fmt.Sscanf(args[0].StrVal, "%d/%d/%d", &m, &d, &y); err != nil {
				return argError("cdate", "could not parse date from string: %s", args[0].StrVal)
			}
			// A first field over 12 means YYYY/MM/DD order rather than
			// MM/DD/YYYY: rotate all three fields.
			if m > 12 {
				m, d, y = d, y, m
			}
			return value.NewDate(value.DateValue{Month: m, Day: d, Year: y})
		case value.Int:
			t := time.Unix(args[0].IntVal, 0).Local()
			return value.NewDate(dateFromTime(t))
		default:
			return argError("cdate", "expects a string or integer argument")
		}
	})

	r.Register("today", func(args []value.Value) value.Value {
		if e, ok := wantArgs("today", len(args), 0); !ok {
			return e
		}
		return value.NewDate(dateFromTime(time.Now().Local()))
	})

	r.Register("add_days", func(args []value.Value) value.Value {
		if e, ok := wantArgs("add_days", len(args), 2); !ok {
			return e
		}
		if e, ok := wantKind("add_days", args[0], value.Date, "first"); !ok {
			return e
		}
		if e, ok := wantKind("add_days", args[1], value.Int, "second"); !ok {
			return e
		}
		d := args[0].DateVal
		t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
		t = t.Add(time.Duration(args[1].IntVal) * 24 * time.Hour)
		return value.NewDate(dateFromTime(t))
	})

	r.Register("add_months", func(args []value.Value) value.Value {
		if e, ok := wantArgs("add_months", len(args), 2); !ok {
			return e
		}
		if e, ok := wantKind("add_months", args[0], value.Date, "first"); !ok {
			return e
		}
		if e, ok := wantKind("add_months", args[1], value.Int, "second"); !ok {
			return e
		}
		d := args[0].DateVal
		newMonth := d.Month + int(args[1].IntVal)
		newYear := d.Year
		for newMonth > 12 {
			newMonth -= 12
			newYear++
		}
		for newMonth < 1 {
			newMonth += 12
			newYear--
		}
		newDay := d.Day
		if max := daysInMonth(newYear, newMonth); newDay > max {
			newDay = max
		}
		return value.NewDate(value.DateValue{Month: newMonth, Day: newDay, Year: newYear})
	})

	r.Register("add_years", func(args []value.Value) value.Value {
		if e, ok := wantArgs("add_years", len(args), 2); !ok {
			return e
		}
		if e, ok := wantKind("add_years", args[0], value.Date, "first"); !ok {
			return e
		}
		if e, ok := wantKind("add_years", args[1], value.Int, "second"); !ok {
			return e
		}
		d := args[0].DateVal
		newYear := d.Year + int(args[1].IntVal)
		newDay := d.Day
		if d.Month == 2 && d.Day == 29 && !isLeapYear(newYear) {
			newDay = 28
		}
		return value.NewDate(value.DateValue{Month: d.Month, Day: newDay, Year: newYear})
	})

	r.Register("cepoch", func(args []value.Value) value.Value {
		if e, ok := dateArg("cepoch", args); !ok {
			return e
		}
		d := args[0].DateVal
		t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
		return value.NewInt(t.Unix())
	})

	r.Register("timestr", func(args []value.Value) value.Value {
		return value.NewString(time.Now().Format("Mon Jan  2 15:04:05 2006"))
	})
}

func dateArg(name string, args []value.Value) (value.Value, bool) {
	if e, ok := wantArgs(name, len(args), 1); !ok {
		return e, false
	}
	return wantKind(name, args[0], value.Date, "first")
}

func dateFromTime(t time.Time) value.DateValue {
	return value.DateValue{Month: int(t.Month()), Day: t.Day(), Year: t.Year()}
}

func isLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
