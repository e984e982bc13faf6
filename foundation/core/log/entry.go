// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry that holds one log message together
//              with its run context, fields, error and duration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2025-03-02 v0.2.0: RunID and Stage replace request and user context

package log

import (
	"time"

	"github.com/msto63/hasty/foundation/utils/mapx"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// Compiler run context
	RunID string
	Stage string

	Fields   Fields
	Error    error
	Duration time.Duration
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// Merge combines multiple Fields into a new map
func (f Fields) Merge(other Fields) Fields {
	return mapx.Merge(f, other)
}

// Clone creates a copy of the Fields
func (f Fields) Clone() Fields {
	return mapx.Clone(f)
}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	return mapx.SortedKeys(f)
}

// NewEntry creates a new log entry with the given level and message
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
