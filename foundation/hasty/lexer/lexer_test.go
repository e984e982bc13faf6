// File: lexer_test.go
// Title: hasty Lexer Tests
// Description: Tests for token positions, operators, literals, keywords,
//              comments and scanner errors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial lexer tests

package lexer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/hasty/foundation/hasty/token"
)

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:  "Typed declaration",
			input: "let x: int = 1;",
			expected: []token.Token{
				{Kind: token.Let, Lexeme: "let", Line: 1, Column: 1, Offset: 0},
				{Kind: token.Identifier, Lexeme: "x", Line: 1, Column: 5, Offset: 4},
				{Kind: token.Colon, Lexeme: ":", Line: 1, Column: 6, Offset: 5},
				{Kind: token.Identifier, Lexeme: "int", Line: 1, Column: 8, Offset: 7},
				{Kind: token.Equal, Lexeme: "=", Line: 1, Column: 12, Offset: 11},
				{Kind: token.Integer, Lexeme: "1", Line: 1, Column: 14, Offset: 13, Literal: int64(1)},
				{Kind: token.Semicolon, Lexeme: ";", Line: 1, Column: 15, Offset: 14},
				{Kind: token.EOF, Lexeme: "", Line: 1, Column: 16, Offset: 15},
			},
		},
		{
			name:  "String and float on several lines",
			input: "\"hi\\n\"\n  3.25",
			expected: []token.Token{
				{Kind: token.String, Lexeme: `"hi\n"`, Line: 1, Column: 1, Offset: 0, Literal: `hi\n`},
				{Kind: token.Floating, Lexeme: "3.25", Line: 2, Column: 3, Offset: 9, Literal: 3.25},
				{Kind: token.EOF, Lexeme: "", Line: 2, Column: 7, Offset: 13},
			},
		},
		{
			name:  "Booleans, nil and character",
			input: "true false nil 'a'",
			expected: []token.Token{
				{Kind: token.True, Lexeme: "true", Line: 1, Column: 1, Offset: 0, Literal: true},
				{Kind: token.False, Lexeme: "false", Line: 1, Column: 6, Offset: 5, Literal: false},
				{Kind: token.Nil, Lexeme: "nil", Line: 1, Column: 12, Offset: 11},
				{Kind: token.Character, Lexeme: "'a'", Line: 1, Column: 16, Offset: 15, Literal: 'a'},
				{Kind: token.EOF, Lexeme: "", Line: 1, Column: 19, Offset: 18},
			},
		},
		{
			name:  "Comment is dropped and newline counted",
			input: "x // trailing comment\ny",
			expected: []token.Token{
				{Kind: token.Identifier, Lexeme: "x", Line: 1, Column: 1, Offset: 0},
				{Kind: token.Identifier, Lexeme: "y", Line: 2, Column: 1, Offset: 22},
				{Kind: token.EOF, Lexeme: "", Line: 2, Column: 2, Offset: 23},
			},
		},
		{
			name:  "Empty input yields only EOF",
			input: "",
			expected: []token.Token{
				{Kind: token.EOF, Lexeme: "", Line: 1, Column: 1, Offset: 0},
			},
		},
		{
			name:  "Unicode identifier columns count runes",
			input: "größe",
			expected: []token.Token{
				{Kind: token.Identifier, Lexeme: "größe", Line: 1, Column: 1, Offset: 0},
				{Kind: token.EOF, Lexeme: "", Line: 1, Column: 6, Offset: 7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Scan(tt.input)
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if diff := cmp.Diff(tt.expected, tokens); diff != "" {
				t.Errorf("Scan() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func kinds(tokens []token.Token) []token.Kind {
	result := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		result[i] = tok.Kind
	}
	return result
}

func TestLexer_Operators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Kind
	}{
		{
			name:     "two-character operators win",
			input:    "!= == <= >= && || ++ --",
			expected: []token.Kind{token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual, token.And, token.Or, token.Increment, token.Decrement, token.EOF},
		},
		{
			name:     "one-character fallbacks",
			input:    "! = < > & | + - * / ; : , . ( ) { }",
			expected: []token.Kind{token.Bang, token.Equal, token.Less, token.Greater, token.Ampersand, token.Pipe, token.Plus, token.Minus, token.Star, token.Slash, token.Semicolon, token.Colon, token.Comma, token.Dot, token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace, token.EOF},
		},
		{
			name:     "no whitespace needed",
			input:    "a<=b==!c",
			expected: []token.Kind{token.Identifier, token.LessEqual, token.Identifier, token.EqualEqual, token.Bang, token.Identifier, token.EOF},
		},
		{
			name:     "dot without digit stays a dot",
			input:    "1.foo 2.",
			expected: []token.Kind{token.Integer, token.Dot, token.Identifier, token.Integer, token.Dot, token.EOF},
		},
		{
			name:     "underscore alone and in identifiers",
			input:    "_ _x my_var",
			expected: []token.Kind{token.Underscore, token.Identifier, token.Identifier, token.EOF},
		},
		{
			name:     "all keywords",
			input:    "fn if else true false while for return self var nil guard pub import from as const let",
			expected: []token.Kind{token.Fn, token.If, token.Else, token.True, token.False, token.While, token.For, token.Return, token.Self, token.Var, token.Nil, token.Guard, token.Pub, token.Import, token.From, token.As, token.Const, token.Let, token.EOF},
		},
		{
			name:     "division is not a comment",
			input:    "a / b",
			expected: []token.Kind{token.Identifier, token.Slash, token.Identifier, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Scan(tt.input)
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if diff := cmp.Diff(tt.expected, kinds(tokens)); diff != "" {
				t.Errorf("kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   ErrorKind
		line   int
		column int
		lexeme string
	}{
		{"unterminated string", "1 + \"unterminated", UnterminatedString, 1, 5, "\"unterminated"},
		{"unexpected character", "let x = 1 # 2;", UnexpectedCharacter, 1, 11, "#"},
		{"unexpected character on second line", "x\n  @", UnexpectedCharacter, 2, 3, "@"},
		{"empty character literal", "''", InvalidCharacterLiteral, 1, 1, "''"},
		{"multi-character literal", "'ab'", InvalidCharacterLiteral, 1, 1, "'ab'"},
		{"unterminated character literal", "'a", InvalidCharacterLiteral, 1, 1, "'a"},
		{"integer overflow", "99999999999999999999", InvalidNumber, 1, 1, "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Scan(tt.input)
			if err == nil {
				t.Fatalf("Scan() expected error, got tokens %v", tokens)
			}
			if tokens != nil {
				t.Errorf("Scan() returned partial tokens %v", tokens)
			}

			var scanErr *Error
			if !errors.As(err, &scanErr) {
				t.Fatalf("error %T is not *lexer.Error", err)
			}
			if scanErr.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", scanErr.Kind, tt.kind)
			}
			if scanErr.Stage() != "SCANNER" {
				t.Errorf("Stage() = %q, want SCANNER", scanErr.Stage())
			}
			if scanErr.Line() != tt.line || scanErr.Column() != tt.column {
				t.Errorf("position = %d:%d, want %d:%d", scanErr.Line(), scanErr.Column(), tt.line, tt.column)
			}
			if scanErr.Lexeme() != tt.lexeme {
				t.Errorf("Lexeme() = %q, want %q", scanErr.Lexeme(), tt.lexeme)
			}
			if scanErr.Message() == "" {
				t.Error("Message() should not be empty")
			}
		})
	}
}

func TestLexer_NextTokenAfterEOF(t *testing.T) {
	l := New("x")

	for i, want := range []token.Kind{token.Identifier, token.EOF, token.EOF} {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken() #%d error = %v", i, err)
		}
		if tok.Kind != want {
			t.Errorf("NextToken() #%d = %s, want %s", i, tok.Kind, want)
		}
	}
}

func TestLexer_ScanIsDeterministic(t *testing.T) {
	source := "let x: int = 1; let y = (x + 2) * 3 || !false;"

	first, err := Scan(source)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	second, err := Scan(source)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two scans differ (-first +second):\n%s", diff)
	}
}
