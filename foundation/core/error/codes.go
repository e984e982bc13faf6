// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the hasty toolchain.
//              Codes are grouped by category so that callers can decide how
//              to report a failure without inspecting its concrete type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with platform error codes
// - 2025-03-02 v0.2.0: Replaced service codes with compiler stage codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Front-end stages
	CodeScanError     Code = "SCAN_ERROR"
	CodeParseError    Code = "PARSE_ERROR"
	CodeResolveError  Code = "RESOLVE_ERROR"
	CodePassFailed    Code = "PASS_FAILED"
	CodeGenerateError Code = "GENERATE_ERROR"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// I/O
	CodeIOError    Code = "IO_ERROR"
	CodeWatchError Code = "WATCH_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeScanError, CodeParseError, CodeResolveError, CodePassFailed, CodeGenerateError,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeIOError, CodeWatchError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeScanError, CodeParseError, CodeResolveError, CodePassFailed:
		return "frontend"
	case CodeGenerateError:
		return "backend"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeIOError, CodeWatchError:
		return "io"
	default:
		return "generic"
	}
}

// IsSourceError reports whether the code describes a problem in the
// compiled source rather than in the toolchain itself.
func (c Code) IsSourceError() bool {
	return c.Category() == "frontend"
}

// ExitCode returns the process exit status the CLI uses for this code.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "frontend":
		return 1
	case "configuration":
		return 3
	case "io":
		return 4
	default:
		return 2
	}
}
