// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to decide how loudly an error
//              is logged.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2025-03-02 v0.2.0: Severity mapping for compiler codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks errors caused by the user's input, e.g. a syntax error
	SeverityLow Severity = iota

	// SeverityMedium marks errors with a workaround, e.g. a missing config file
	SeverityMedium

	// SeverityHigh marks toolchain failures such as unreadable files
	SeverityHigh

	// SeverityCritical marks broken internal invariants
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should be surfaced even in quiet mode
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeIOError, CodeWatchError, CodeGenerateError:
		return SeverityHigh
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodePassFailed:
		return SeverityMedium
	case CodeInvalidInput, CodeNotFound, CodeScanError, CodeParseError, CodeResolveError:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
