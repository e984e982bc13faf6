// File: diag.go
// Title: Source Diagnostics
// Description: Renders stage errors with the offending source line and a
//              caret marker under the offending lexeme.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-20
// Modified: 2025-03-14
//
// Change History:
// - 2025-02-20 v0.1.0: Initial implementation
// - 2025-03-14 v0.1.1: Align carets by display width

// Package diag renders front-end errors for terminals.
//
// Every stage error of the hasty front end exposes its stage name,
// message, line, column and lexeme through the Diagnostic interface.
// Render turns those facts into a short report:
//
//	[PARSER] Error 1.7: expected ')' after expression, found end of input
//	   1 | (1 + 2
//	     |       ^ Here
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/msto63/hasty/foundation/utils/stringx"
)

// Diagnostic is implemented by lexer, parser and resolver errors
type Diagnostic interface {
	error
	Stage() string
	Message() string
	Line() int
	Column() int
	Lexeme() string
}

// From extracts the first Diagnostic in err's chain
func From(err error) (Diagnostic, bool) {
	var d Diagnostic
	if err == nil || !errors.As(err, &d) {
		return nil, false
	}
	return d, true
}

// Options controls rendering
type Options struct {
	// Color enables lipgloss styling
	Color bool
	// Filename is prefixed to the header when set
	Filename string
}

var (
	stageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	caretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
)

// Render formats d against the source it was produced from. The preview
// lines are omitted when the line does not exist in source.
func Render(d Diagnostic, source string, opts Options) string {
	style := func(s lipgloss.Style, text string) string {
		if !opts.Color {
			return text
		}
		return s.Render(text)
	}

	var sb strings.Builder
	if opts.Filename != "" {
		sb.WriteString(opts.Filename + ": ")
	}
	sb.WriteString(style(stageStyle, "["+d.Stage()+"] Error"))
	fmt.Fprintf(&sb, " %d.%d: %s", d.Line(), d.Column(), d.Message())

	text, ok := stringx.LineAt(source, d.Line())
	if !ok {
		return sb.String()
	}
	text = stringx.ExpandTabs(text)

	number := fmt.Sprintf("%4d | ", d.Line())
	blank := strings.Repeat(" ", len(number)-2) + "| "

	sb.WriteByte('\n')
	sb.WriteString(style(gutterStyle, number) + text)
	sb.WriteByte('\n')

	// Columns count runes; the caret line is padded by display width so
	// wide runes before or inside the lexeme keep it aligned.
	runes := []rune(text)
	col := d.Column() - 1
	if col < 0 {
		col = 0
	}
	var pad int
	if col <= len(runes) {
		pad = runewidth.StringWidth(string(runes[:col]))
	} else {
		pad = runewidth.StringWidth(text) + col - len(runes)
	}

	mark := []rune(d.Lexeme())
	// Multi-line lexemes such as strings are marked to the end of the line.
	if rest := len(runes) - col; rest > 0 && len(mark) > rest {
		mark = runes[col:]
	}
	width := runewidth.StringWidth(string(mark))
	if width < 1 {
		width = 1
	}
	sb.WriteString(style(gutterStyle, blank))
	sb.WriteString(strings.Repeat(" ", pad))
	sb.WriteString(style(caretStyle, strings.Repeat("^", width)+" Here"))

	return sb.String()
}

// Describe renders err as a diagnostic when it carries one, and falls
// back to err.Error() otherwise
func Describe(err error, source string, opts Options) string {
	if d, ok := From(err); ok {
		return Render(d, source, opts)
	}
	if opts.Filename != "" {
		return opts.Filename + ": " + err.Error()
	}
	return err.Error()
}
