// Package parser builds a hasty syntax tree from a token sequence.
//
// Package: parser
// Title: hasty Recursive Descent Parser
// Description: Precedence-climbing recursive descent over the grammar
//
//   program     := statement* EOF
//   statement   := ( declaration | expression ) ( ";" | <before EOF> )
//   declaration := "let" IDENTIFIER ( ":" IDENTIFIER )? ( "=" expression )?
//   expression  := logic_or
//   logic_or    := logic_and ( "||" logic_and )*
//   logic_and   := equality ( "&&" equality )*
//   equality    := comparison ( ( "!=" | "==" ) comparison )*
//   comparison  := term ( ( ">" | ">=" | "<" | "<=" ) term )*
//   term        := factor ( ( "+" | "-" ) factor )*
//   factor      := unary ( ( "*" | "/" ) unary )*
//   unary       := ( "!" | "-" ) unary | primary
//   primary     := TRUE | FALSE | NIL | INTEGER | FLOATING | STRING
//                | CHARACTER | "(" expression ")" | IDENTIFIER
//
//              Every binary level is left-associative. The parser stops at
//              the first error; there is no recovery.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-15
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation
package parser
