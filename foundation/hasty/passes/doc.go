// File: doc.go
// Title: Semantic Passes Package Documentation
// Description: Package passes runs semantic passes over a parsed tree.
//              Passes mutate node metadata in place and run in sequence,
//              so each pass sees the annotations of the ones before it.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-17
// Modified: 2025-02-17
//
// Change History:
// - 2025-02-17 v0.1.0: Initial implementation

// Package passes provides the semantic passes of the hasty front end.
//
// The Resolver binds variable references to their declarations through a
// scope stack and attaches type information:
//
//	tree, _ := parser.Parse(tokens)
//	if err := passes.Run(tree, passes.NewResolver(passes.Options{})); err != nil {
//		// *passes.Error with Kind UndeclaredVariable or MalformedDeclaration
//	}
//	typ := types.TypeOf(tree, tree.Roots()[0])
//
// Literals receive their primitive type, declarations receive their
// declared or propagated type, and variables receive the type of the
// binding they resolve to. Binary, logical and unary nodes stay untyped.
//
// A failing pass stops at the first error. Metadata already attached to
// earlier nodes is kept.
package passes
