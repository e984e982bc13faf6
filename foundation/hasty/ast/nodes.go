// File: nodes.go
// Title: hasty AST Node Definitions
// Description: Defines the closed set of node variants and the Handle type
//              used for child references.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial node set

package ast

import (
	"fmt"

	"github.com/msto63/hasty/foundation/hasty/token"
)

// Handle references a node in a Tree. Handles stay valid for the lifetime
// of the tree.
type Handle int32

// NoHandle marks an absent optional child
const NoHandle Handle = -1

// Valid reports whether h refers to a node
func (h Handle) Valid() bool {
	return h >= 0
}

// Kind identifies a node variant
type Kind int

const (
	KindBinary Kind = iota
	KindLogical
	KindUnary
	KindLiteral
	KindGrouping
	KindVarDecl
	KindVariable
)

// String returns the variant name
func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "Binary"
	case KindLogical:
		return "Logical"
	case KindUnary:
		return "Unary"
	case KindLiteral:
		return "Literal"
	case KindGrouping:
		return "Grouping"
	case KindVarDecl:
		return "VarDecl"
	case KindVariable:
		return "Variable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is implemented by the seven node variants only
type Node interface {
	// Kind returns the variant
	Kind() Kind

	// Pos returns the position of the node's leading token
	Pos() token.Position

	// Children returns the child handles in evaluation order
	Children() []Handle

	accept(h Handle, v Visitor) error
}

// Binary is an arithmetic, comparison or equality operation
type Binary struct {
	Left     Handle
	Operator token.Token
	Right    Handle
}

// Logical is a short-circuit && or || operation
type Logical struct {
	Left     Handle
	Operator token.Token
	Right    Handle
}

// Unary is a prefix ! or - operation
type Unary struct {
	Operator token.Token
	Right    Handle
}

// Literal is a constant taken directly from a token
type Literal struct {
	Value token.Token
}

// Grouping is a parenthesized expression. Paren is the opening parenthesis.
type Grouping struct {
	Paren token.Token
	Inner Handle
}

// VarDecl is a let declaration. Type is nil and Initializer is NoHandle
// when absent.
type VarDecl struct {
	Name        token.Token
	Type        *token.Token
	Initializer Handle
}

// Variable is a reference to a declared name
type Variable struct {
	Name token.Token
}

func (Binary) Kind() Kind   { return KindBinary }
func (Logical) Kind() Kind  { return KindLogical }
func (Unary) Kind() Kind    { return KindUnary }
func (Literal) Kind() Kind  { return KindLiteral }
func (Grouping) Kind() Kind { return KindGrouping }
func (VarDecl) Kind() Kind  { return KindVarDecl }
func (Variable) Kind() Kind { return KindVariable }

func (n Binary) Pos() token.Position   { return n.Operator.Pos() }
func (n Logical) Pos() token.Position  { return n.Operator.Pos() }
func (n Unary) Pos() token.Position    { return n.Operator.Pos() }
func (n Literal) Pos() token.Position  { return n.Value.Pos() }
func (n Grouping) Pos() token.Position { return n.Paren.Pos() }
func (n VarDecl) Pos() token.Position  { return n.Name.Pos() }
func (n Variable) Pos() token.Position { return n.Name.Pos() }

func (n Binary) Children() []Handle   { return []Handle{n.Left, n.Right} }
func (n Logical) Children() []Handle  { return []Handle{n.Left, n.Right} }
func (n Unary) Children() []Handle    { return []Handle{n.Right} }
func (Literal) Children() []Handle    { return nil }
func (n Grouping) Children() []Handle { return []Handle{n.Inner} }
func (Variable) Children() []Handle   { return nil }

func (n VarDecl) Children() []Handle {
	if n.Initializer.Valid() {
		return []Handle{n.Initializer}
	}
	return nil
}

// HasType reports whether the declaration carries a type annotation
func (n VarDecl) HasType() bool {
	return n.Type != nil
}

// HasInitializer reports whether the declaration has an initializer
func (n VarDecl) HasInitializer() bool {
	return n.Initializer.Valid()
}
