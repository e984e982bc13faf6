// File: parser.go
// Title: hasty Recursive Descent Parser
// Description: Implements the parser that turns a token sequence into an
//              arena syntax tree. One method per precedence level; binary
//              levels fold left so that a-b-c parses as (a-b)-c.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-15
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation

package parser

import (
	mdwlog "github.com/msto63/hasty/foundation/core/log"
	"github.com/msto63/hasty/foundation/hasty/ast"
	"github.com/msto63/hasty/foundation/hasty/token"
)

// DefaultMaxDepth bounds unary and parenthesis nesting
const DefaultMaxDepth = 256

// Parser implements recursive descent parsing for hasty
type Parser struct {
	tokens  []token.Token
	current int
	depth   int
	tree    *ast.Tree
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger   *mdwlog.Logger
	MaxDepth int
}

// New creates a new parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "hasty-parser"),
		options: opts,
	}
}

// Parse parses tokens with default options
func Parse(tokens []token.Token) (*ast.Tree, error) {
	return New(Options{}).Parse(tokens)
}

// Parse builds a tree from tokens, which must end with an EOF token.
// On error no tree is returned.
func (p *Parser) Parse(tokens []token.Token) (*ast.Tree, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		var last token.Token
		if len(tokens) > 0 {
			last = tokens[len(tokens)-1]
		}
		return nil, &Error{Kind: ExpectedToken, Expected: token.EOF, Found: last, Context: "at end of token stream"}
	}

	p.tokens = tokens
	p.current = 0
	p.depth = 0
	p.tree = ast.NewTree()

	p.logger.Debug("Starting parsing", mdwlog.Fields{
		"tokens": len(tokens),
	})

	for !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			p.logger.Debug("Parsing failed", mdwlog.Fields{
				"error":  err.Error(),
				"line":   p.peek().Line,
				"column": p.peek().Column,
			})
			return nil, err
		}
		p.tree.AppendRoot(stmt)

		p.logger.Trace("Parsed statement", mdwlog.Fields{
			"kind": p.tree.Node(stmt).Kind().String(),
		})
	}

	tree := p.tree
	p.tree = nil

	p.logger.Debug("Parsing completed successfully", mdwlog.Fields{
		"statements": len(tree.Roots()),
		"nodes":      tree.Len(),
	})

	return tree, nil
}

// statement parses one declaration or expression statement and its
// terminator. The last statement before EOF may omit the ';'.
func (p *Parser) statement() (ast.Handle, error) {
	var (
		stmt ast.Handle
		err  error
	)
	if p.match(token.Let) {
		stmt, err = p.declaration()
	} else {
		stmt, err = p.expression()
	}
	if err != nil {
		return ast.NoHandle, err
	}

	if p.match(token.Semicolon) || p.isAtEnd() {
		return stmt, nil
	}
	return ast.NoHandle, p.expected(token.Semicolon, "after statement")
}

// declaration parses the rest of a let declaration after the keyword
func (p *Parser) declaration() (ast.Handle, error) {
	name, err := p.consume(token.Identifier, "after 'let'")
	if err != nil {
		return ast.NoHandle, err
	}

	decl := ast.VarDecl{Name: name, Initializer: ast.NoHandle}

	if p.match(token.Colon) {
		typeName, err := p.consume(token.Identifier, "after ':'")
		if err != nil {
			return ast.NoHandle, err
		}
		decl.Type = &typeName
	}

	if p.match(token.Equal) {
		init, err := p.expression()
		if err != nil {
			return ast.NoHandle, err
		}
		decl.Initializer = init
	}

	return p.tree.Add(decl), nil
}

func (p *Parser) expression() (ast.Handle, error) {
	return p.logicOr()
}

func (p *Parser) logicOr() (ast.Handle, error) {
	return p.infix(p.logicAnd, true, token.Or)
}

func (p *Parser) logicAnd() (ast.Handle, error) {
	return p.infix(p.equality, true, token.And)
}

func (p *Parser) equality() (ast.Handle, error) {
	return p.infix(p.comparison, false, token.BangEqual, token.EqualEqual)
}

func (p *Parser) comparison() (ast.Handle, error) {
	return p.infix(p.term, false, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) term() (ast.Handle, error) {
	return p.infix(p.factor, false, token.Plus, token.Minus)
}

func (p *Parser) factor() (ast.Handle, error) {
	return p.infix(p.unary, false, token.Star, token.Slash)
}

// infix parses one left-associative precedence level: operand parsed by
// next, followed by any number of (operator operand) pairs folded left
func (p *Parser) infix(next func() (ast.Handle, error), logical bool, operators ...token.Kind) (ast.Handle, error) {
	left, err := next()
	if err != nil {
		return ast.NoHandle, err
	}

	for p.match(operators...) {
		op := p.previous()

		right, err := next()
		if err != nil {
			return ast.NoHandle, err
		}

		if logical {
			left = p.tree.Add(ast.Logical{Left: left, Operator: op, Right: right})
		} else {
			left = p.tree.Add(ast.Binary{Left: left, Operator: op, Right: right})
		}
	}

	return left, nil
}

func (p *Parser) unary() (ast.Handle, error) {
	if !p.match(token.Bang, token.Minus) {
		return p.primary()
	}

	op := p.previous()
	if err := p.enter(); err != nil {
		return ast.NoHandle, err
	}
	defer p.leave()

	right, err := p.unary()
	if err != nil {
		return ast.NoHandle, err
	}
	return p.tree.Add(ast.Unary{Operator: op, Right: right}), nil
}

func (p *Parser) primary() (ast.Handle, error) {
	tok := p.peek()

	switch tok.Kind {
	case token.True, token.False, token.Nil,
		token.Integer, token.Floating, token.String, token.Character:
		p.advance()
		return p.tree.Add(ast.Literal{Value: tok}), nil

	case token.Identifier:
		p.advance()
		return p.tree.Add(ast.Variable{Name: tok}), nil

	case token.LeftParen:
		p.advance()
		if err := p.enter(); err != nil {
			return ast.NoHandle, err
		}
		defer p.leave()

		inner, err := p.expression()
		if err != nil {
			return ast.NoHandle, err
		}
		if _, err := p.consume(token.RightParen, "after expression"); err != nil {
			return ast.NoHandle, err
		}
		return p.tree.Add(ast.Grouping{Paren: tok, Inner: inner}), nil
	}

	return ast.NoHandle, &Error{Kind: UnexpectedToken, Found: tok}
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.options.MaxDepth {
		return &Error{Kind: NestingTooDeep, Found: p.peek()}
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// match consumes the current token if it has one of kinds
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// consume returns the current token if it has kind, otherwise an
// ExpectedToken error located at the current token
func (p *Parser) consume(kind token.Kind, context string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, p.expected(kind, context)
}

func (p *Parser) expected(kind token.Kind, context string) error {
	return &Error{Kind: ExpectedToken, Expected: kind, Found: p.peek(), Context: context}
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}
