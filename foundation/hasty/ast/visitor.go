// File: visitor.go
// Title: AST Visitor
// Description: Visitor dispatch over the closed node set and a pre-order
//              walk helper.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package ast

// Visitor has one method per node variant. Implementations decide
// themselves whether and in which order to descend into children.
type Visitor interface {
	VisitBinary(h Handle, n Binary) error
	VisitLogical(h Handle, n Logical) error
	VisitUnary(h Handle, n Unary) error
	VisitLiteral(h Handle, n Literal) error
	VisitGrouping(h Handle, n Grouping) error
	VisitVarDecl(h Handle, n VarDecl) error
	VisitVariable(h Handle, n Variable) error
}

func (n Binary) accept(h Handle, v Visitor) error   { return v.VisitBinary(h, n) }
func (n Logical) accept(h Handle, v Visitor) error  { return v.VisitLogical(h, n) }
func (n Unary) accept(h Handle, v Visitor) error    { return v.VisitUnary(h, n) }
func (n Literal) accept(h Handle, v Visitor) error  { return v.VisitLiteral(h, n) }
func (n Grouping) accept(h Handle, v Visitor) error { return v.VisitGrouping(h, n) }
func (n VarDecl) accept(h Handle, v Visitor) error  { return v.VisitVarDecl(h, n) }
func (n Variable) accept(h Handle, v Visitor) error { return v.VisitVariable(h, n) }

// Accept dispatches the node at h to the matching Visit method
func (t *Tree) Accept(h Handle, v Visitor) error {
	return t.Node(h).accept(h, v)
}

// Inspect walks the subtree at h in pre-order. If fn returns false the
// children of that node are skipped.
func Inspect(t *Tree, h Handle, fn func(Handle, Node) bool) {
	n := t.Node(h)
	if !fn(h, n) {
		return
	}
	for _, child := range n.Children() {
		Inspect(t, child, fn)
	}
}
