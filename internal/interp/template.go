package interp

import (
	"strings"

	"github.com/blakepell/ArcaneScript/internal/value"
)

// renderTemplate: a string literal is only template-processed if its
// payload contains "${"; each "${NAME}" is replaced by NAME's current
// value, stringified with the same rules as "+"-concatenation, and literal
// bytes outside "${...}" are copied verbatim. Rendering happens here, at
// the moment the literal is evaluated, not at tokenisation.
func (it *Interpreter) renderTemplate(lit string) value.Value {
	if !strings.Contains(lit, "${") {
		return value.NewString(lit)
	}

	var sb strings.Builder
	i := 0
	for i < len(lit) {
		if i+1 < len(lit) && lit[i] == '$' && lit[i+1] == '{' {
			rest := lit[i+2:]
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				return it.fail(CategoryTemplate, "unterminated ${...} substitution")
			}
			name := rest[:end]
			v, err := it.Env.Get(name)
			if err != nil {
				return it.fail(CategoryUndefined, "%s", err.Error())
			}
			sb.WriteString(v.AsString())
			i += 2 + end + 1
			continue
		}
		sb.WriteByte(lit[i])
		i++
	}
	return value.NewString(sb.String())
}
