package interp

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/blakepell/ArcaneScript/internal/host"
	"github.com/blakepell/ArcaneScript/internal/parser"
)

// scenarios runs small representative programs through the full
// lexer -> parser -> interpreter pipeline and snapshots the printed
// output.
var scenarios = map[string]string{
	"compound_assign":   `a = 5; a += 2; print(a);`,
	"string_concat":     `buf = "Hello"; buf += ", "; buf = buf + "World"; println(buf);`,
	"for_loop":          `for (i = 0; i < 3; i++) { print(i); }`,
	"while_continue":    `i = 0; while (i < 3) { if (i == 1) { i++; continue; } print(i); i++; }`,
	"array_roundtrip":   `a = new_array(3); array_set(a, 0, "x"); array_set(a, 2, 9); println(a[0]); println(ubound(a));`,
	"date_arithmetic":   `d = cdate("02/14/2025"); println(add_days(d, 5)); println(add_months(d, 1));`,
	"eager_logical_and": `if (true && false) { println("y"); } else { println("n"); }`,
	"division_by_zero":  `x = 10 / 0; println(x);`,
}

func TestScenarioSnapshots(t *testing.T) {
	for name, src := range scenarios {
		t.Run(name, func(t *testing.T) {
			prog, err := parser.Parse(src)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			var out bytes.Buffer
			reg := host.NewRegistry()
			host.RegisterDefaults(reg, &out, strings.NewReader(""))
			it := NewInterpreter(reg)
			result := it.Run(prog)

			rendered := out.String()
			if result.Kind.String() == "error" {
				rendered += fmt.Sprintf("final-error: %s\n", result.ErrMsg)
			}
			snaps.MatchSnapshot(t, name+"_output", rendered)
		})
	}
}
