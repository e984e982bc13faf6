// File: diag_test.go
// Title: Source Diagnostics Tests
// Description: Tests for diagnostic extraction and plain rendering.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-20
// Modified: 2025-03-14
//
// Change History:
// - 2025-02-20 v0.1.0: Initial tests
// - 2025-03-14 v0.1.1: Wide rune alignment

package diag

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/hasty/foundation/hasty/lexer"
	"github.com/msto63/hasty/foundation/hasty/parser"
	"github.com/msto63/hasty/foundation/hasty/passes"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		run      func(string) error
		expected string
	}{
		{
			name:   "Parser error at end of input",
			source: "(1 + 2",
			run: func(src string) error {
				tokens, err := lexer.Scan(src)
				if err != nil {
					return err
				}
				_, err = parser.Parse(tokens)
				return err
			},
			expected: "[PARSER] Error 1.7: expected ')' after expression, found end of input\n" +
				"   1 | (1 + 2\n" +
				"     |       ^ Here",
		},
		{
			name:   "Resolver error on second line",
			source: "let a = 1;\nlet b = abc;",
			run: func(src string) error {
				tokens, err := lexer.Scan(src)
				if err != nil {
					return err
				}
				tree, err := parser.Parse(tokens)
				if err != nil {
					return err
				}
				return passes.Run(tree, passes.NewResolver(passes.Options{}))
			},
			expected: "[RESOLVER] Error 2.9: undeclared variable 'abc'\n" +
				"   2 | let b = abc;\n" +
				"     |         ^^^ Here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(tt.source)
			require.Error(t, err)

			d, ok := From(err)
			require.True(t, ok)
			assert.Equal(t, tt.expected, Render(d, tt.source, Options{}))
		})
	}
}

func TestFrom_Wrapped(t *testing.T) {
	_, err := lexer.Scan("1 + \"open")
	require.Error(t, err)

	wrapped := fmt.Errorf("compiling: %w", err)
	d, ok := From(wrapped)
	require.True(t, ok)
	assert.Equal(t, lexer.Stage, d.Stage())

	_, ok = From(errors.New("plain"))
	assert.False(t, ok)
	_, ok = From(nil)
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "a.hy: boom", Describe(errors.New("boom"), "", Options{Filename: "a.hy"}))

	_, err := lexer.Scan("let x = 1 # 2;")
	require.Error(t, err)
	out := Describe(err, "let x = 1 # 2;", Options{Filename: "a.hy"})
	assert.Contains(t, out, "a.hy: [SCANNER] Error 1.11")
	assert.Contains(t, out, "          ^ Here")
}

func TestRender_MissingLine(t *testing.T) {
	_, err := lexer.Scan("\n\n'ab'")
	require.Error(t, err)
	d, ok := From(err)
	require.True(t, ok)
	require.Equal(t, 3, d.Line())

	out := Render(d, "only one line", Options{})
	assert.Contains(t, out, "[SCANNER] Error 3.1")
	assert.NotContains(t, out, "Here")
}

type stubDiagnostic struct {
	line, column int
	lexeme       string
}

func (s stubDiagnostic) Error() string   { return s.Message() }
func (s stubDiagnostic) Stage() string   { return "RESOLVER" }
func (s stubDiagnostic) Message() string { return "undeclared variable '" + s.lexeme + "'" }
func (s stubDiagnostic) Line() int       { return s.line }
func (s stubDiagnostic) Column() int     { return s.column }
func (s stubDiagnostic) Lexeme() string  { return s.lexeme }

func TestRender_WideRunes(t *testing.T) {
	tests := []struct {
		name   string
		source string
		diag   stubDiagnostic
		caret  string
	}{
		{
			name:   "Wide runes before the lexeme",
			source: `let s = "日本"; u;`,
			diag:   stubDiagnostic{line: 1, column: 15, lexeme: "u"},
			caret:  "     | " + strings.Repeat(" ", 16) + "^ Here",
		},
		{
			name:   "Wide lexeme",
			source: "let x = 名前;",
			diag:   stubDiagnostic{line: 1, column: 9, lexeme: "名前"},
			caret:  "     | " + strings.Repeat(" ", 8) + "^^^^ Here",
		},
		{
			name:   "Past the end of the line",
			source: "日本",
			diag:   stubDiagnostic{line: 1, column: 3, lexeme: ""},
			caret:  "     | " + strings.Repeat(" ", 4) + "^ Here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(Render(tt.diag, tt.source, Options{}), "\n")
			require.Len(t, lines, 3)
			assert.Equal(t, tt.caret, lines[2])
		})
	}
}
