// File: errors.go
// Title: Resolver Errors
// Description: Error kinds reported by semantic passes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-17
// Modified: 2025-02-17
//
// Change History:
// - 2025-02-17 v0.1.0: Initial implementation

package passes

import (
	"fmt"

	"github.com/msto63/hasty/foundation/hasty/token"
)

// Stage is the stage identifier reported by resolver errors
const Stage = "RESOLVER"

// ErrorKind classifies a resolution failure
type ErrorKind int

const (
	// UndeclaredVariable: a variable is used before any declaration
	UndeclaredVariable ErrorKind = iota
	// MalformedDeclaration: a let has neither a type nor an initializer
	MalformedDeclaration
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case UndeclaredVariable:
		return "UndeclaredVariable"
	case MalformedDeclaration:
		return "MalformedDeclaration"
	default:
		return "Unknown"
	}
}

// Error is returned by the resolver. Token is the variable or declared
// name at fault.
type Error struct {
	Kind  ErrorKind
	Token token.Token
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("resolve error at line %d, column %d: %s", e.Token.Line, e.Token.Column, e.Message())
}

// Stage returns "RESOLVER"
func (e *Error) Stage() string { return Stage }

// Message returns the human-readable description without position
func (e *Error) Message() string {
	switch e.Kind {
	case UndeclaredVariable:
		return fmt.Sprintf("undeclared variable '%s'", e.Token.Lexeme)
	case MalformedDeclaration:
		return fmt.Sprintf("declaration of '%s' needs a type or an initializer", e.Token.Lexeme)
	default:
		return "resolve error"
	}
}

// Line returns the line of the offending token
func (e *Error) Line() int { return e.Token.Line }

// Column returns the column of the offending token
func (e *Error) Column() int { return e.Token.Column }

// Lexeme returns the offending name
func (e *Error) Lexeme() string { return e.Token.Lexeme }
