// Package log provides structured logging for the hasty toolchain.
//
// Package: log
// Title: hasty Structured Logging Framework
// Description: This package implements a structured logger with levels,
//              immutable context builders, several output formats and
//              integration with the structured error package. Loggers carry
//              the identifier of the current compiler run and the pipeline
//              stage so that every entry of one run can be correlated.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-03-02 v0.2.0: Run/stage context, lipgloss console output, stderr default
//
// Usage:
//   import mdwlog "github.com/msto63/hasty/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatConsole).
//     WithRunID(runID).
//     WithStage("PARSER")
//
//   logger.Debug("Parsed statement", mdwlog.Fields{"kind": "VarDecl"})
//
//   timer := logger.StartTimer("resolve")
//   err := pass.Process(tree)
//   timer.StopWithError(err)
package log
