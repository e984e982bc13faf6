// File: token.go
// Title: hasty Token Definitions
// Description: Defines the token kinds produced by the lexer, the Token
//              record with its source position and literal payload, and the
//              keyword table used to reclassify identifiers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial token set

package token

import "fmt"

// Kind identifies the lexical class of a token
type Kind int

const (
	// Single-character tokens
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	Underscore
	Bang
	Equal
	Less
	Greater
	Ampersand
	Pipe
	Colon

	// Two-character tokens
	BangEqual
	EqualEqual
	GreaterEqual
	LessEqual
	And
	Or
	Increment
	Decrement

	// Literals
	Identifier
	String
	Character
	Integer
	Floating

	// Keywords
	Fn
	If
	Else
	True
	False
	While
	For
	Return
	Self
	Var
	Nil
	Guard
	Pub
	Import
	From
	As
	Const
	Let

	EOF
)

var kindNames = [...]string{
	LeftParen:    "LEFT_PAREN",
	RightParen:   "RIGHT_PAREN",
	LeftBrace:    "LEFT_BRACE",
	RightBrace:   "RIGHT_BRACE",
	Comma:        "COMMA",
	Dot:          "DOT",
	Minus:        "MINUS",
	Plus:         "PLUS",
	Semicolon:    "SEMICOLON",
	Slash:        "SLASH",
	Star:         "STAR",
	Underscore:   "UNDERSCORE",
	Bang:         "BANG",
	Equal:        "EQUAL",
	Less:         "LESS",
	Greater:      "GREATER",
	Ampersand:    "AMPERSAND",
	Pipe:         "PIPE",
	Colon:        "COLON",
	BangEqual:    "BANG_EQUAL",
	EqualEqual:   "EQUAL_EQUAL",
	GreaterEqual: "GREATER_EQUAL",
	LessEqual:    "LESS_EQUAL",
	And:          "AND",
	Or:           "OR",
	Increment:    "INCREMENT",
	Decrement:    "DECREMENT",
	Identifier:   "IDENTIFIER",
	String:       "STRING",
	Character:    "CHARACTER",
	Integer:      "INTEGER",
	Floating:     "FLOATING",
	Fn:           "FN",
	If:           "IF",
	Else:         "ELSE",
	True:         "TRUE",
	False:        "FALSE",
	While:        "WHILE",
	For:          "FOR",
	Return:       "RETURN",
	Self:         "SELF",
	Var:          "VAR",
	Nil:          "NIL",
	Guard:        "GUARD",
	Pub:          "PUB",
	Import:       "IMPORT",
	From:         "FROM",
	As:           "AS",
	Const:        "CONST",
	Let:          "LET",
	EOF:          "EOF",
}

// String returns the upper-case name of the kind, e.g. RIGHT_PAREN
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var symbols = map[Kind]string{
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Dot:          ".",
	Minus:        "-",
	Plus:         "+",
	Semicolon:    ";",
	Slash:        "/",
	Star:         "*",
	Underscore:   "_",
	Bang:         "!",
	Equal:        "=",
	Less:         "<",
	Greater:      ">",
	Ampersand:    "&",
	Pipe:         "|",
	Colon:        ":",
	BangEqual:    "!=",
	EqualEqual:   "==",
	GreaterEqual: ">=",
	LessEqual:    "<=",
	And:          "&&",
	Or:           "||",
	Increment:    "++",
	Decrement:    "--",
}

// Symbol returns the fixed source text of punctuation and operator kinds.
// Keywords return their spelling; literal classes and EOF return "".
func (k Kind) Symbol() string {
	if s, ok := symbols[k]; ok {
		return s
	}
	if k.IsKeyword() {
		return keywordSpelling[k]
	}
	return ""
}

// IsKeyword reports whether k is a reserved word
func (k Kind) IsKeyword() bool {
	return k >= Fn && k <= Let
}

// IsLiteral reports whether k denotes a literal value
func (k Kind) IsLiteral() bool {
	switch k {
	case String, Character, Integer, Floating, True, False, Nil:
		return true
	}
	return false
}

var keywords = map[string]Kind{
	"fn":     Fn,
	"if":     If,
	"else":   Else,
	"true":   True,
	"false":  False,
	"while":  While,
	"for":    For,
	"return": Return,
	"self":   Self,
	"var":    Var,
	"nil":    Nil,
	"guard":  Guard,
	"pub":    Pub,
	"import": Import,
	"from":   From,
	"as":     As,
	"const":  Const,
	"let":    Let,
}

var keywordSpelling = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords))
	for s, k := range keywords {
		m[k] = s
	}
	return m
}()

// LookupIdent returns the keyword kind for ident, or Identifier
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Identifier
}

// Position locates a character in the source. Line and Column are
// 1-based; Offset is a 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one lexical unit. Line and Column are 1-based; Offset is the
// byte offset of the first character in the source.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
	Offset int

	// Literal holds the decoded value: string for STRING, rune for
	// CHARACTER, int64 for INTEGER, float64 for FLOATING and bool for
	// TRUE/FALSE. It is nil for every other kind.
	Literal interface{}
}

// String returns a compact representation such as INTEGER(42)
func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Lexeme)
}

// Pos returns the position of the token's first character
func (t Token) Pos() Position {
	return Position{Line: t.Line, Column: t.Column, Offset: t.Offset}
}

// Is reports whether the token has kind k
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}
