// Package stringx provides small string helpers shared by the hasty
// packages: blank checks, rune-safe truncation for log fields and source
// line extraction for diagnostics.
//
// Package: stringx
// Title: String Utilities
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-03-02 v0.2.0: Reduced to the helpers the toolchain uses, added LineAt
package stringx
