// File: types.go
// Title: hasty Type Annotations
// Description: Primitive type names and the metadata keys under which
//              passes attach type and binding information to tree nodes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-17
// Modified: 2025-02-17
//
// Change History:
// - 2025-02-17 v0.1.0: Initial implementation

package types

import (
	"strconv"

	"github.com/msto63/hasty/foundation/hasty/ast"
	"github.com/msto63/hasty/foundation/hasty/meta"
	"github.com/msto63/hasty/foundation/hasty/token"
)

// Type names a hasty type. Declared annotations are kept verbatim, so
// user-defined names are valid types as well.
type Type string

// Primitive types attached to literals
const (
	Unknown Type = ""
	Int     Type = "int"
	Float   Type = "float"
	String  Type = "string"
	Bool    Type = "bool"
	Char    Type = "char"
	// Nil is the type of the nil literal; it is not assignable to any
	// other type until a later pass introduces optionals.
	Nil Type = "nil"
)

// IsKnown reports whether t names a type
func (t Type) IsKnown() bool {
	return t != Unknown
}

// String returns the type name, or "?" for Unknown
func (t Type) String() string {
	if t == Unknown {
		return "?"
	}
	return string(t)
}

// Info is the type metadata of a node
type Info struct {
	Type Type
	// Declared is true when the type comes from an explicit annotation
	Declared bool
}

// String renders the info for annotated tree output
func (i Info) String() string {
	if i.Declared {
		return i.Type.String() + "!"
	}
	return i.Type.String()
}

// Binding is the scope record of a declared variable
type Binding struct {
	Type Type
	// Decl is the VarDecl node that introduced the name
	Decl ast.Handle
}

// String renders the binding for annotated tree output
func (b Binding) String() string {
	return "#" + strconv.Itoa(int(b.Decl)) + ":" + b.Type.String()
}

var (
	// Key attaches Info to expression and declaration nodes
	Key = meta.NewKey[Info]("type")
	// BindingKey attaches the resolved Binding to Variable nodes
	BindingKey = meta.NewKey[Binding]("binding")
)

// OfLiteral returns the primitive type of a literal token kind
func OfLiteral(kind token.Kind) (Type, bool) {
	switch kind {
	case token.Integer:
		return Int, true
	case token.Floating:
		return Float, true
	case token.String:
		return String, true
	case token.Character:
		return Char, true
	case token.True, token.False:
		return Bool, true
	case token.Nil:
		return Nil, true
	default:
		return Unknown, false
	}
}

// TypeOf returns the type attached to h, or Unknown
func TypeOf(t *ast.Tree, h ast.Handle) Type {
	info, ok := meta.Get(t.Meta(h), Key)
	if !ok {
		return Unknown
	}
	return info.Type
}

// InfoOf returns the type metadata attached to h
func InfoOf(t *ast.Tree, h ast.Handle) (Info, bool) {
	return meta.Get(t.Meta(h), Key)
}

// SetType attaches info to h, replacing any earlier value
func SetType(t *ast.Tree, h ast.Handle, info Info) {
	meta.Insert(t.Meta(h), Key, info)
}

// BindingOf returns the binding attached to a Variable node
func BindingOf(t *ast.Tree, h ast.Handle) (Binding, bool) {
	return meta.Get(t.Meta(h), BindingKey)
}
