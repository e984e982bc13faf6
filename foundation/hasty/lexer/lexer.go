// File: lexer.go
// Title: hasty Lexical Analyzer (Tokenizer)
// Description: Converts hasty source text into a stream of tokens with
//              position information. Handles operators with maximal munch,
//              line comments, string and character literals, integer and
//              floating literals, identifiers and keywords.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial lexer implementation

package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/hasty/foundation/hasty/token"
)

// Lexer performs lexical analysis of hasty source text
type Lexer struct {
	input    string
	position int  // byte offset of ch
	readPos  int  // byte offset after ch
	ch       rune // current rune, 0 at end of input
	line     int  // line of ch (1-based)
	column   int  // column of ch (1-based, in runes)
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// Scan tokenizes source. On error no tokens are returned.
func Scan(source string) ([]token.Token, error) {
	return New(source).Tokenize()
}

// Tokenize returns all tokens including the trailing EOF token
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token

	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)

		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token. After EOF it keeps returning EOF.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespaceAndComments()

	pos := l.pos()

	if l.atEnd() {
		return token.Token{Kind: token.EOF, Line: pos.Line, Column: pos.Column, Offset: pos.Offset}, nil
	}

	switch l.ch {
	case '(':
		return l.single(token.LeftParen, pos), nil
	case ')':
		return l.single(token.RightParen, pos), nil
	case '{':
		return l.single(token.LeftBrace, pos), nil
	case '}':
		return l.single(token.RightBrace, pos), nil
	case ',':
		return l.single(token.Comma, pos), nil
	case '.':
		return l.single(token.Dot, pos), nil
	case ';':
		return l.single(token.Semicolon, pos), nil
	case ':':
		return l.single(token.Colon, pos), nil
	case '*':
		return l.single(token.Star, pos), nil
	case '/':
		return l.single(token.Slash, pos), nil
	case '+':
		return l.pair('+', token.Increment, token.Plus, pos), nil
	case '-':
		return l.pair('-', token.Decrement, token.Minus, pos), nil
	case '!':
		return l.pair('=', token.BangEqual, token.Bang, pos), nil
	case '=':
		return l.pair('=', token.EqualEqual, token.Equal, pos), nil
	case '<':
		return l.pair('=', token.LessEqual, token.Less, pos), nil
	case '>':
		return l.pair('=', token.GreaterEqual, token.Greater, pos), nil
	case '&':
		return l.pair('&', token.And, token.Ampersand, pos), nil
	case '|':
		return l.pair('|', token.Or, token.Pipe, pos), nil
	case '"':
		return l.readString(pos)
	case '\'':
		return l.readCharacter(pos)
	}

	switch {
	case isDigit(l.ch):
		return l.readNumber(pos)
	case l.ch == '_' && !isIdentPart(l.peekChar()):
		return l.single(token.Underscore, pos), nil
	case isIdentStart(l.ch):
		return l.readIdentifier(pos), nil
	}

	text := string(l.ch)
	return token.Token{}, &Error{Kind: UnexpectedCharacter, Text: text, Pos: pos}
}

// readChar advances to the next rune and keeps line/column in sync
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	l.position = l.readPos
	l.column++

	if l.readPos >= len(l.input) {
		l.ch = 0
		return
	}

	r, width := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.readPos += width
}

// peekChar returns the rune after ch without advancing
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) pos() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.position}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch {
		case l.ch == ' ', l.ch == '\t', l.ch == '\r', l.ch == '\n':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for !l.atEnd() && l.ch != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

// single consumes the current rune as a token of kind
func (l *Lexer) single(kind token.Kind, pos token.Position) token.Token {
	l.readChar()
	return l.makeToken(kind, pos, nil)
}

// pair implements maximal munch: if the next rune is second, both runes
// form a token of kind long, otherwise the current rune is a token of kind short
func (l *Lexer) pair(second rune, long, short token.Kind, pos token.Position) token.Token {
	if l.peekChar() == second {
		l.readChar()
		l.readChar()
		return l.makeToken(long, pos, nil)
	}
	return l.single(short, pos)
}

func (l *Lexer) makeToken(kind token.Kind, pos token.Position, literal interface{}) token.Token {
	return token.Token{
		Kind:    kind,
		Lexeme:  l.input[pos.Offset:l.position],
		Line:    pos.Line,
		Column:  pos.Column,
		Offset:  pos.Offset,
		Literal: literal,
	}
}

// readString reads a double-quoted string. Escape sequences are not
// interpreted; the literal is the raw text between the quotes.
func (l *Lexer) readString(pos token.Position) (token.Token, error) {
	l.readChar() // opening quote
	start := l.position

	for !l.atEnd() && l.ch != '"' {
		l.readChar()
	}

	if l.atEnd() {
		return token.Token{}, &Error{Kind: UnterminatedString, Text: l.input[pos.Offset:], Pos: pos}
	}

	value := l.input[start:l.position]
	l.readChar() // closing quote
	return l.makeToken(token.String, pos, value), nil
}

// readCharacter reads a single-quoted literal holding exactly one rune
func (l *Lexer) readCharacter(pos token.Position) (token.Token, error) {
	l.readChar() // opening quote

	if l.atEnd() || l.ch == '\'' || l.ch == '\n' {
		if !l.atEnd() && l.ch == '\'' {
			l.readChar()
		}
		return token.Token{}, &Error{Kind: InvalidCharacterLiteral, Text: l.input[pos.Offset:l.position], Pos: pos}
	}

	value := l.ch
	l.readChar()

	if l.atEnd() || l.ch != '\'' {
		for !l.atEnd() && l.ch != '\'' && l.ch != '\n' {
			l.readChar()
		}
		if !l.atEnd() && l.ch == '\'' {
			l.readChar()
		}
		return token.Token{}, &Error{Kind: InvalidCharacterLiteral, Text: l.input[pos.Offset:l.position], Pos: pos}
	}

	l.readChar() // closing quote
	return l.makeToken(token.Character, pos, value), nil
}

// readNumber reads an integer or, if a '.' is followed by a digit, a
// floating literal. A '.' without a following digit is left in place.
func (l *Lexer) readNumber(pos token.Position) (token.Token, error) {
	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // '.'
		for isDigit(l.ch) {
			l.readChar()
		}

		text := l.input[pos.Offset:l.position]
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token.Token{}, &Error{Kind: InvalidNumber, Text: text, Pos: pos}
		}
		return l.makeToken(token.Floating, pos, value), nil
	}

	text := l.input[pos.Offset:l.position]
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return token.Token{}, &Error{Kind: InvalidNumber, Text: text, Pos: pos}
	}
	return l.makeToken(token.Integer, pos, value), nil
}

// readIdentifier reads an identifier and reclassifies keywords
func (l *Lexer) readIdentifier(pos token.Position) token.Token {
	for isIdentPart(l.ch) {
		l.readChar()
	}

	text := l.input[pos.Offset:l.position]
	kind := token.LookupIdent(text)

	var literal interface{}
	switch kind {
	case token.True:
		literal = true
	case token.False:
		literal = false
	}
	return l.makeToken(kind, pos, literal)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
