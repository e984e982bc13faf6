// File: printer.go
// Title: AST Printer
// Description: Renders subtrees in prefix (polish) notation, optionally
//              followed by the metadata attached to each node.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package ast

import (
	"fmt"
	"strings"
)

// Printer renders nodes as (op left right), (op right), (group inner),
// (let name: type init) and bare lexemes for literals and variables.
type Printer struct {
	// Annotate appends {name=value ...} with the node's metadata
	Annotate bool

	tree *Tree
	sb   strings.Builder
}

// Print renders the subtree at h without metadata
func Print(t *Tree, h Handle) string {
	p := &Printer{}
	return p.Print(t, h)
}

// PrintRoots renders every top-level node, one per line
func PrintRoots(t *Tree) string {
	p := &Printer{}
	lines := make([]string, 0, len(t.roots))
	for _, root := range t.roots {
		lines = append(lines, p.Print(t, root))
	}
	return strings.Join(lines, "\n")
}

// Print renders the subtree at h
func (p *Printer) Print(t *Tree, h Handle) string {
	p.tree = t
	p.sb.Reset()
	p.write(h)
	return p.sb.String()
}

func (p *Printer) write(h Handle) {
	// The printer's Visit methods never fail.
	_ = p.tree.Accept(h, p)

	if !p.Annotate {
		return
	}
	m := p.tree.Meta(h)
	if m.Len() == 0 {
		return
	}
	var attrs []string
	m.Each(func(name string, value interface{}) {
		attrs = append(attrs, fmt.Sprintf("%s=%v", name, value))
	})
	p.sb.WriteString("{" + strings.Join(attrs, " ") + "}")
}

func (p *Printer) parenthesize(name string, children ...Handle) {
	p.sb.WriteString("(" + name)
	for _, child := range children {
		p.sb.WriteByte(' ')
		p.write(child)
	}
	p.sb.WriteByte(')')
}

func (p *Printer) VisitBinary(h Handle, n Binary) error {
	p.parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	return nil
}

func (p *Printer) VisitLogical(h Handle, n Logical) error {
	p.parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	return nil
}

func (p *Printer) VisitUnary(h Handle, n Unary) error {
	p.parenthesize(n.Operator.Lexeme, n.Right)
	return nil
}

func (p *Printer) VisitLiteral(h Handle, n Literal) error {
	p.sb.WriteString(n.Value.Lexeme)
	return nil
}

func (p *Printer) VisitGrouping(h Handle, n Grouping) error {
	p.parenthesize("group", n.Inner)
	return nil
}

func (p *Printer) VisitVarDecl(h Handle, n VarDecl) error {
	name := "let " + n.Name.Lexeme
	if n.Type != nil {
		name += ": " + n.Type.Lexeme
	}
	p.parenthesize(name, n.Children()...)
	return nil
}

func (p *Printer) VisitVariable(h Handle, n Variable) error {
	p.sb.WriteString(n.Name.Lexeme)
	return nil
}
