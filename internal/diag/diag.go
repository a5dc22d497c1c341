// Package diag renders lexer and parser errors against the source text
// they point into: a compiler-style "file:line:col: message" header
// followed by a gutter excerpt with a caret under the offending column.
package diag

import (
	"fmt"
	"strings"

	"github.com/blakepell/ArcaneScript/internal/lexer"
)

// Report is one positioned error plus the source line it points at. The
// line is captured at construction so the full source text does not have
// to be carried around just to format the error later.
type Report struct {
	File    string
	Pos     lexer.Position
	Message string

	line string
}

// New builds a Report for an error at pos in source. file may be empty
// for source that did not come from a file (e.g. run -e).
func New(pos lexer.Position, message, source, file string) *Report {
	return &Report{
		File:    file,
		Pos:     pos,
		Message: message,
		line:    extractLine(source, pos.Line),
	}
}

// Error implements the error interface with an uncolored Format.
func (r *Report) Error() string {
	return r.Format(false)
}

// Format renders the report. With color, the header is bold and the
// caret is red.
func (r *Report) Format(color bool) string {
	origin := r.File
	if origin == "" {
		origin = "<script>"
	}
	header := fmt.Sprintf("%s:%d:%d: %s", origin, r.Pos.Line, r.Pos.Column, r.Message)

	var sb strings.Builder
	sb.WriteString(paint(color, "\033[1m", header))

	if r.line != "" {
		gutter := fmt.Sprintf("%3d | ", r.Pos.Line)
		blank := strings.Repeat(" ", len(gutter)-2) + "| "

		sb.WriteString("\n")
		sb.WriteString(gutter)
		sb.WriteString(r.line)
		sb.WriteString("\n")
		sb.WriteString(blank)
		sb.WriteString(caretPad(r.line, r.Pos.Column))
		sb.WriteString(paint(color, "\033[1;31m", "^"))
	}

	return sb.String()
}

// caretPad builds the whitespace run that positions the caret under
// column col. Tabs in the source prefix are mirrored so the caret stays
// aligned however the terminal expands them.
func caretPad(line string, col int) string {
	var sb strings.Builder
	for i := 0; i < col-1; i++ {
		if i < len(line) && line[i] == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func paint(color bool, code, s string) string {
	if !color {
		return s
	}
	return code + s + "\033[0m"
}

func extractLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
