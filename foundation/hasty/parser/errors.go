// File: errors.go
// Title: Parser Errors
// Description: Error kinds reported by the parser. Every error carries the
//              token at which parsing stopped.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-15
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation

package parser

import (
	"fmt"

	"github.com/msto63/hasty/foundation/hasty/token"
)

// Stage is the stage identifier reported by parser errors
const Stage = "PARSER"

// ErrorKind classifies a parse failure
type ErrorKind int

const (
	// ExpectedToken: a required token such as ')' or ';' is missing
	ExpectedToken ErrorKind = iota
	// UnexpectedToken: no expression can start with the found token
	UnexpectedToken
	// NestingTooDeep: the expression nests deeper than Options.MaxDepth
	NestingTooDeep
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case ExpectedToken:
		return "ExpectedToken"
	case UnexpectedToken:
		return "UnexpectedToken"
	case NestingTooDeep:
		return "NestingTooDeep"
	default:
		return "Unknown"
	}
}

// Error is returned by the parser. Expected is only meaningful for
// ExpectedToken; Context says where the token was required.
type Error struct {
	Kind     ErrorKind
	Expected token.Kind
	Found    token.Token
	Context  string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Found.Line, e.Found.Column, e.Message())
}

// Stage returns "PARSER"
func (e *Error) Stage() string { return Stage }

// Message returns the human-readable description without position
func (e *Error) Message() string {
	found := describe(e.Found)
	switch e.Kind {
	case ExpectedToken:
		want := e.Expected.String()
		if sym := e.Expected.Symbol(); sym != "" {
			want = "'" + sym + "'"
		}
		if e.Context != "" {
			return fmt.Sprintf("expected %s %s, found %s", want, e.Context, found)
		}
		return fmt.Sprintf("expected %s, found %s", want, found)
	case UnexpectedToken:
		return fmt.Sprintf("expected expression, found %s", found)
	case NestingTooDeep:
		return fmt.Sprintf("expression nested too deeply at %s", found)
	default:
		return "parse error"
	}
}

// Line returns the line of the offending token
func (e *Error) Line() int { return e.Found.Line }

// Column returns the column of the offending token
func (e *Error) Column() int { return e.Found.Column }

// Lexeme returns the lexeme of the offending token, empty at EOF
func (e *Error) Lexeme() string { return e.Found.Lexeme }

func describe(t token.Token) string {
	if t.Kind == token.EOF {
		return "end of input"
	}
	return "'" + t.Lexeme + "'"
}
