// File: errors.go
// Title: Lexer Errors
// Description: Error kinds reported by the scanner together with the
//              source facts needed for diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package lexer

import (
	"fmt"

	"github.com/msto63/hasty/foundation/hasty/token"
)

// Stage is the stage identifier reported by scanner errors
const Stage = "SCANNER"

// ErrorKind classifies a scanner failure
type ErrorKind int

const (
	// UnexpectedCharacter: the character matches no token rule
	UnexpectedCharacter ErrorKind = iota
	// UnterminatedString: input ended inside a string literal
	UnterminatedString
	// InvalidCharacterLiteral: a '...' literal does not hold exactly one character
	InvalidCharacterLiteral
	// InvalidNumber: an integer literal does not fit into 64 bits
	InvalidNumber
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidCharacterLiteral:
		return "InvalidCharacterLiteral"
	case InvalidNumber:
		return "InvalidNumber"
	default:
		return "Unknown"
	}
}

// Error is returned by the scanner. Text is the offending source text,
// Pos the position where it starts.
type Error struct {
	Kind ErrorKind
	Text string
	Pos  token.Position
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("scan error at line %d, column %d: %s (near '%s')",
		e.Pos.Line, e.Pos.Column, e.Message(), e.Text)
}

// Stage returns "SCANNER"
func (e *Error) Stage() string { return Stage }

// Message returns the human-readable description without position
func (e *Error) Message() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character %q", e.Text)
	case UnterminatedString:
		return "unterminated string"
	case InvalidCharacterLiteral:
		return "character literal must contain exactly one character"
	case InvalidNumber:
		return fmt.Sprintf("number literal %s is out of range", e.Text)
	default:
		return "scan error"
	}
}

// Line returns the 1-based source line
func (e *Error) Line() int { return e.Pos.Line }

// Column returns the 1-based source column
func (e *Error) Column() int { return e.Pos.Column }

// Lexeme returns the offending source text
func (e *Error) Lexeme() string { return e.Text }
