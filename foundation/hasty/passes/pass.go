// File: pass.go
// Title: Pass Interface
// Description: The contract shared by semantic passes and the helper that
//              runs them in order.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-17
// Modified: 2025-02-17
//
// Change History:
// - 2025-02-17 v0.1.0: Initial implementation

package passes

import "github.com/msto63/hasty/foundation/hasty/ast"

// Pass mutates tree metadata in place
type Pass interface {
	Name() string
	Process(tree *ast.Tree) error
}

// Run applies passes in order and returns the first error. Later passes
// do not run once one has failed.
func Run(tree *ast.Tree, passes ...Pass) error {
	for _, p := range passes {
		if err := p.Process(tree); err != nil {
			return err
		}
	}
	return nil
}
