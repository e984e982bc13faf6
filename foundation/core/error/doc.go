// Package error provides structured error handling for the hasty toolchain.
//
// Package: error
// Title: hasty Error Handling Framework
// Description: This package implements a structured error type with error
//              codes, severities, details and stack traces. Front-end stages
//              report their own concrete error values; the pipeline wraps
//              them here so that logging and the CLI can classify failures
//              without knowing every stage-specific type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Compiler stage codes, dropped request/user context
//
// Usage:
//   import mdwerror "github.com/msto63/hasty/foundation/core/error"
//
//   err := mdwerror.Wrap(scanErr, "scan failed").
//     WithCode(mdwerror.CodeScanError).
//     WithOperation("hasty.Scan").
//     WithDetail("run_id", runID)
//
//   if mdwerror.HasCode(err, mdwerror.CodeScanError) {
//     // report as a source diagnostic
//   }
package error
