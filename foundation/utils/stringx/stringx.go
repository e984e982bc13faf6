// File: stringx.go
// Title: Core String Utility Functions
// Description: Unicode-aware helpers used by configuration, logging and
//              diagnostic rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-03-02 v0.2.0: Added LineAt and ExpandTabs for source previews

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate shortens s to at most maxLen runes, ending in ellipsis when cut.
// If the ellipsis does not fit it is dropped.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// FromBlankDefault returns defaultValue when s is blank.
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// LineAt returns the 1-based line of s, without its line terminator.
// Lines are separated by '\n' only; a trailing '\r' is removed.
// ok is false when the line does not exist.
func LineAt(s string, line int) (text string, ok bool) {
	if line < 1 {
		return "", false
	}
	for current := 1; ; current++ {
		idx := strings.IndexByte(s, '\n')
		if current == line {
			if idx >= 0 {
				s = s[:idx]
			}
			return strings.TrimSuffix(s, "\r"), true
		}
		if idx < 0 {
			return "", false
		}
		s = s[idx+1:]
	}
}

// ExpandTabs replaces every tab with a single space so that a caret line
// built from display widths stays aligned with the previewed source line.
func ExpandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}
