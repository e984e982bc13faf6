// Package lexer turns hasty source text into a token sequence.
//
// Package: lexer
// Title: hasty Lexical Analyzer
// Description: Single left-to-right scan with one rune of lookahead (two
//              for the decimal point). Two-character operators are matched
//              before their one-character prefixes. Line comments and
//              whitespace are dropped. Scanning stops at the first error and
//              returns no tokens.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
//
// Usage:
//   tokens, err := lexer.Scan(`let x: int = 1;`)
//   if err != nil {
//     var scanErr *lexer.Error
//     if errors.As(err, &scanErr) { ... }
//   }
package lexer
