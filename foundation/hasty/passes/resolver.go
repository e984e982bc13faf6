// File: resolver.go
// Title: Name and Type Resolver
// Description: Walks every top-level node, binds declared names in a
//              scope stack and attaches type and binding metadata.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-17
// Modified: 2025-02-17
//
// Change History:
// - 2025-02-17 v0.1.0: Initial implementation

package passes

import (
	mdwlog "github.com/msto63/hasty/foundation/core/log"
	"github.com/msto63/hasty/foundation/hasty/ast"
	"github.com/msto63/hasty/foundation/hasty/meta"
	"github.com/msto63/hasty/foundation/hasty/scope"
	"github.com/msto63/hasty/foundation/hasty/types"
)

// Options configures the resolver
type Options struct {
	Logger *mdwlog.Logger
}

// Resolver binds names and propagates types. It implements ast.Visitor.
type Resolver struct {
	tree   *ast.Tree
	scope  *scope.Scope[types.Binding]
	logger *mdwlog.Logger
}

// NewResolver creates a resolver with an empty global scope
func NewResolver(opts Options) *Resolver {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Resolver{
		scope:  scope.New[types.Binding](),
		logger: opts.Logger.WithField("component", "hasty-resolver"),
	}
}

// Name returns "resolve"
func (r *Resolver) Name() string { return "resolve" }

// Scope returns the scope populated by the last Process call
func (r *Resolver) Scope() *scope.Scope[types.Binding] {
	return r.scope
}

// Process resolves all top-level nodes of tree in order against a fresh
// global frame
func (r *Resolver) Process(tree *ast.Tree) error {
	r.tree = tree
	r.scope = scope.New[types.Binding]()
	defer func() { r.tree = nil }()

	roots := tree.Roots()
	r.logger.Debug("Starting resolution", mdwlog.Fields{
		"statements": len(roots),
	})

	for _, root := range roots {
		if err := r.resolve(root); err != nil {
			r.logger.Debug("Resolution failed", mdwlog.Fields{
				"error": err.Error(),
			})
			return err
		}
	}

	r.logger.Debug("Resolution completed successfully", mdwlog.Fields{
		"bindings": len(r.scope.Names()),
	})
	return nil
}

func (r *Resolver) resolve(h ast.Handle) error {
	return r.tree.Accept(h, r)
}

// VisitVarDecl resolves the initializer before binding the name, so an
// initializer cannot refer to the variable it declares.
func (r *Resolver) VisitVarDecl(h ast.Handle, n ast.VarDecl) error {
	if n.HasInitializer() {
		if err := r.resolve(n.Initializer); err != nil {
			return err
		}
	}

	var typ types.Type
	switch {
	case n.HasType():
		typ = types.Type(n.Type.Lexeme)
		types.SetType(r.tree, h, types.Info{Type: typ, Declared: true})
	case n.HasInitializer():
		typ = types.TypeOf(r.tree, n.Initializer)
		if typ.IsKnown() {
			types.SetType(r.tree, h, types.Info{Type: typ})
		}
	default:
		return &Error{Kind: MalformedDeclaration, Token: n.Name}
	}

	r.scope.Declare(n.Name.Lexeme, types.Binding{Type: typ, Decl: h})

	r.logger.Trace("Declared variable", mdwlog.Fields{
		"name": n.Name.Lexeme,
		"type": typ.String(),
	})
	return nil
}

func (r *Resolver) VisitVariable(h ast.Handle, n ast.Variable) error {
	binding, ok := r.scope.Lookup(n.Name.Lexeme)
	if !ok {
		return &Error{Kind: UndeclaredVariable, Token: n.Name}
	}

	if binding.Type.IsKnown() {
		types.SetType(r.tree, h, types.Info{Type: binding.Type})
	}
	meta.Insert(r.tree.Meta(h), types.BindingKey, binding)
	return nil
}

func (r *Resolver) VisitLiteral(h ast.Handle, n ast.Literal) error {
	if typ, ok := types.OfLiteral(n.Value.Kind); ok {
		types.SetType(r.tree, h, types.Info{Type: typ})
	}
	return nil
}

func (r *Resolver) VisitGrouping(h ast.Handle, n ast.Grouping) error {
	if err := r.resolve(n.Inner); err != nil {
		return err
	}
	if typ := types.TypeOf(r.tree, n.Inner); typ.IsKnown() {
		types.SetType(r.tree, h, types.Info{Type: typ})
	}
	return nil
}

// Operator typing is not implemented; operator nodes stay untyped.

func (r *Resolver) VisitBinary(h ast.Handle, n ast.Binary) error {
	return r.resolveAll(n.Left, n.Right)
}

func (r *Resolver) VisitLogical(h ast.Handle, n ast.Logical) error {
	return r.resolveAll(n.Left, n.Right)
}

func (r *Resolver) VisitUnary(h ast.Handle, n ast.Unary) error {
	return r.resolveAll(n.Right)
}

func (r *Resolver) resolveAll(handles ...ast.Handle) error {
	for _, h := range handles {
		if err := r.resolve(h); err != nil {
			return err
		}
	}
	return nil
}
