// Package ast defines the hasty syntax tree.
//
// Package: ast
// Title: hasty Abstract Syntax Tree
// Description: Nodes live in an arena (Tree) and refer to their children
//              by Handle, a stable index into that arena. Each arena slot
//              holds the node payload and its metadata container, so passes
//              annotate and rewrite nodes through handles without cloning
//              subtrees. The node set is closed; the Visitor interface has
//              one method per variant, so adding a variant breaks every
//              visitor at compile time until it is handled.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial arena tree
package ast
