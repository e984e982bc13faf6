// File: doc.go
// Title: hasty Package Documentation
// Description: Package hasty is the entry point to the hasty front end.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-22
// Modified: 2025-02-22
//
// Change History:
// - 2025-02-22 v0.1.0: Initial documentation

// Package hasty runs the hasty front end as one pipeline:
//
//	source -> lexer -> tokens -> parser -> tree -> passes -> annotated tree
//
// The Engine exposes each prefix of that pipeline:
//
//	engine := hasty.New(hasty.Options{})
//	result, err := engine.Check("let x: int = 1; let y = x;")
//	if err != nil {
//		if d, ok := diag.From(err); ok {
//			fmt.Println(diag.Render(d, source, diag.Options{}))
//		}
//		return
//	}
//	fmt.Println(types.TypeOf(result.Tree, result.Tree.Roots()[1])) // int
//
// Every stage stops at its first error. Returned errors are mdwerror
// values with CodeScanError, CodeParseError or CodeResolveError that wrap
// the stage error, so errors.As and diag.From still reach it.
//
// Compile additionally hands the resolved tree to a Generator.
package hasty
