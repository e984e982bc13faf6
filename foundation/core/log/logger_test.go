// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context handling, error
//              integration and the performance timer.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-03-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2025-03-02 v0.2.0: Run/stage context and timer coverage
// - 2025-03-14 v0.2.1: Builder, level and elapsed coverage

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/hasty/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf, Name: "test"}), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNew(t *testing.T) {
	logger := New()

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatJSON)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Audit("always")

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %s", len(entries), buf.String())
	}
	if entries[0]["message"] != "shown" || entries[1]["level"] != "audit" {
		t.Errorf("unexpected entries: %v", entries)
	}
}

func TestWithBuildersDoNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelDebug, FormatJSON)
	child := parent.WithField("component", "parser").WithRunID("run-1").WithStage("PARSER")

	parent.Debug("from parent")
	child.Debug("from child", Fields{"tokens": 4})

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if _, ok := entries[0]["component"]; ok {
		t.Error("parent logger should not carry child fields")
	}
	if _, ok := entries[0]["run_id"]; ok {
		t.Error("parent logger should not carry the run id")
	}

	child0 := entries[1]
	if child0["component"] != "parser" {
		t.Errorf("component = %v, want parser", child0["component"])
	}
	if child0["run_id"] != "run-1" {
		t.Errorf("run_id = %v, want run-1", child0["run_id"])
	}
	if child0["stage"] != "PARSER" {
		t.Errorf("stage = %v, want PARSER", child0["stage"])
	}
	if child0["tokens"] != float64(4) {
		t.Errorf("tokens = %v, want 4", child0["tokens"])
	}
	if child.RunID() != "run-1" {
		t.Errorf("RunID() = %q, want run-1", child.RunID())
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "source error logs at info",
			err:       mdwerror.New("unterminated string").WithCode(mdwerror.CodeScanError),
			wantLevel: "info",
			wantCode:  "SCAN_ERROR",
		},
		{
			name:      "config error logs at warn",
			err:       mdwerror.New("bad level").WithCode(mdwerror.CodeInvalidConfig),
			wantLevel: "warn",
			wantCode:  "INVALID_CONFIG",
		},
		{
			name:      "io error logs at error",
			err:       mdwerror.New("cannot read").WithCode(mdwerror.CodeIOError),
			wantLevel: "error",
			wantCode:  "IO_ERROR",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("plain"),
			wantLevel: "error",
			wantCode:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			entries := decodeLines(t, buf)
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(entries))
			}
			if entries[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entries[0]["level"], tt.wantLevel)
			}
			if entries[0]["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", entries[0]["error_code"], tt.wantCode)
			}
		})
	}

	t.Run("nil error logs nothing", func(t *testing.T) {
		logger, buf := newBufferLogger(LevelTrace, FormatJSON)
		logger.LogError(nil)
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}

func TestFormatters(t *testing.T) {
	entry := NewEntry(LevelInfo, "parsed")
	entry.RunID = "r1"
	entry.Stage = "PARSER"
	entry.Fields["b"] = 2
	entry.Fields["a"] = "x"

	tests := []struct {
		name   string
		format Format
		want   []string
	}{
		{"text", FormatText, []string{"[INF]", "(run=r1,stage=PARSER)", "parsed", "[a=x b=2]"}},
		{"console", FormatConsole, []string{"INF", "parsed", "[a=x b=2]"}},
		{"logfmt", FormatLogfmt, []string{"level=info", `message="parsed"`, "run_id=r1", "stage=PARSER", `a="x" b=2`}},
		{"json", FormatJSON, []string{`"message":"parsed"`, `"stage":"PARSER"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := GetFormatter(tt.format).Format(entry)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(string(out), want) {
					t.Errorf("output %q missing %q", out, want)
				}
			}
		})
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if lvl, err := ParseLevel("WARNING"); err != nil || lvl != LevelWarn {
		t.Errorf("ParseLevel(WARNING) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
	if f, err := ParseFormat(" Console "); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(Console) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestTimer(t *testing.T) {
	t.Run("stop logs completion once", func(t *testing.T) {
		logger, buf := newBufferLogger(LevelDebug, FormatJSON)
		timer := logger.StartTimer("scan").WithField("bytes", 12)

		timer.Stop()
		if timer.IsRunning() {
			t.Error("timer should be stopped")
		}
		if second := timer.Stop(); second != 0 {
			t.Errorf("second Stop() = %v, want 0", second)
		}

		entries := decodeLines(t, buf)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0]["message"] != "scan completed" || entries[0]["success"] != true {
			t.Errorf("unexpected entry: %v", entries[0])
		}
	})

	t.Run("stop with error logs failure at warn", func(t *testing.T) {
		logger, buf := newBufferLogger(LevelWarn, FormatJSON)
		logger.StartTimer("parse").StopWithError(errors.New("boom"))

		entries := decodeLines(t, buf)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0]["message"] != "parse failed" || entries[0]["error"] != "boom" {
			t.Errorf("unexpected entry: %v", entries[0])
		}
	})

	t.Run("stop with nil error behaves like stop", func(t *testing.T) {
		logger, buf := newBufferLogger(LevelDebug, FormatJSON)
		logger.StartTimer("resolve").StopWithError(nil)

		entries := decodeLines(t, buf)
		if len(entries) != 1 || entries[0]["message"] != "resolve completed" {
			t.Errorf("unexpected entries: %v", entries)
		}
	})
}

func TestFieldHelpersAndBuilders(t *testing.T) {
	parent, _ := newBufferLogger(LevelInfo, FormatJSON)

	var other bytes.Buffer
	logger := parent.
		WithOutput(&other).
		WithName("hasty.check").
		WithFields(Fields{"component": "watcher", "root": "src"})

	logger.Info("changed", Field("file", "a.hy").Merge(Err(errors.New("denied"))))

	entries := decodeLines(t, &other)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry on the new output, got %d", len(entries))
	}
	entry := entries[0]
	want := map[string]interface{}{
		"logger":    "hasty.check",
		"component": "watcher",
		"root":      "src",
		"file":      "a.hy",
		"error":     "denied",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
}

func TestSetLevelAndIsLevelEnabled(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatJSON)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be disabled at warn level")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error should be enabled at warn level")
	}

	logger.SetLevel(LevelDebug)
	if !logger.IsLevelEnabled(LevelDebug) || logger.GetLevel() != LevelDebug {
		t.Error("SetLevel(debug) did not take effect")
	}
	logger.Debug("now visible")

	entries := decodeLines(t, buf)
	if len(entries) != 1 || entries[0]["message"] != "now visible" {
		t.Errorf("unexpected entries: %v", entries)
	}
}

func TestTimerElapsed(t *testing.T) {
	logger, _ := newBufferLogger(LevelDebug, FormatJSON)
	timer := logger.StartTimer("scan")

	first := timer.Elapsed()
	time.Sleep(2 * time.Millisecond)
	second := timer.Elapsed()

	if second <= first {
		t.Errorf("Elapsed() did not grow: %v then %v", first, second)
	}
	if !timer.IsRunning() {
		t.Error("Elapsed() must not stop the timer")
	}
}
