package logging

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/go-logr/logr"
)

// Test that if writer is nil, the logger defaults to os.Stdout.
func TestDefaultWriter(t *testing.T) {
	s := NewSimpleLogSink(nil, LEVEL_DEBUG, true)
	if s.writer != os.Stdout {
		t.Errorf("expected default writer to be os.Stdout, got %v", s.writer)
	}
}

// Test that the Enabled method returns true only for levels less than or equal to minVerbosity.
func TestEnabled(t *testing.T) {
	s := NewSimpleLogSink(&bytes.Buffer{}, LEVEL_DEBUG, true)
	if !s.Enabled(LEVEL_INFO) {
		t.Error("expected level 0 to be enabled")
	}
	if !s.Enabled(LEVEL_DEBUG) {
		t.Error("expected level 1 to be enabled")
	}
	if s.Enabled(LEVEL_TRACE) {
		t.Error("expected level 2 to be disabled")
	}
}

// Test that Info() writes a properly formatted log message.
func TestInfoLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, LEVEL_DEBUG, false)
	s.Info(LEVEL_INFO, "decoded bookmark", "path", "/Applications/Syncthing.app")
	output := buf.String()

	if !strings.Contains(output, "decoded bookmark") {
		t.Errorf("expected output to contain message, got %q", output)
	}
	if !strings.Contains(output, "path: /Applications/Syncthing.app") {
		t.Errorf("expected output to contain key-value pair, got %q", output)
	}
	if !strings.Contains(output, "[INFO]") {
		t.Errorf("expected output to contain [INFO] label, got %q", output)
	}
}

// Test that a log at a level higher than minVerbosity is not written.
func TestInfoNotLoggedWhenDisabled(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, LEVEL_INFO, false) // Only level 0 enabled.
	s.Info(LEVEL_DEBUG, "This should not be logged", "foo", "bar")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

// Test that Error() writes an error log with the proper label and key/value output.
func TestErrorLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, LEVEL_INFO, false)
	err := errors.New("sample error")
	s.Error(err, "An error occurred", "context", "testing")
	output := buf.String()

	if !strings.Contains(output, "[ERROR]") {
		t.Errorf("expected output to contain [ERROR] label, got %q", output)
	}
	if !strings.Contains(output, "An error occurred") {
		t.Errorf("expected error message, got %q", output)
	}
	// The Error method appends an "error" key and the error value.
	if !strings.Contains(output, "context: testing") {
		t.Errorf("expected context key-value, got %q", output)
	}
	if !strings.Contains(output, "error: sample error") {
		t.Errorf("expected error key-value, got %q", output)
	}
}

// Test that with useColor off, no ANSI escape sequences ever reach the writer.
func TestPlainOutputHasNoEscapeSequences(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, LEVEL_TRACE, false)
	s.Info(LEVEL_INFO, "info")
	s.Info(LEVEL_DEBUG, "debug")
	s.Info(LEVEL_TRACE, "trace")
	s.Error(errors.New("boom"), "error")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected no escape sequences, got %q", buf.String())
	}
}

// Test that WithName returns a new logger whose messages include the name prefix.
func TestWithName(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, LEVEL_DEBUG, false)
	named := s.WithName("decoder")
	named.Info(LEVEL_INFO, "Test message")
	output := buf.String()

	if !strings.Contains(output, "[decoder]") {
		t.Errorf("expected output to contain [decoder], got %q", output)
	}
}

// Test that chaining WithName produces a combined name.
func TestChainedWithName(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, LEVEL_DEBUG, false)
	chain := s.WithName("scanner").WithName("bookmark").(*SimpleLogSink)
	chain.Info(LEVEL_INFO, "Chained name")
	output := buf.String()

	if !strings.Contains(output, "[scanner.bookmark]") {
		t.Errorf("expected output to contain [scanner.bookmark], got %q", output)
	}
}

// Test that the useColor setting survives WithName, WithValues, and V.
func TestDerivedSinksKeepColorSetting(t *testing.T) {
	s := NewSimpleLogSink(&bytes.Buffer{}, LEVEL_DEBUG, true)
	if !s.WithName("n").(*SimpleLogSink).useColor {
		t.Error("WithName dropped useColor")
	}
	if !s.WithValues("k", "v").(*SimpleLogSink).useColor {
		t.Error("WithValues dropped useColor")
	}
	if !s.V(LEVEL_DEBUG).(*SimpleLogSink).useColor {
		t.Error("V dropped useColor")
	}
}

// Test that V returns a new logger and that a log with the given level is formatted correctly.
func TestVMethod(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, LEVEL_DEBUG, false)
	v := s.V(LEVEL_DEBUG)
	v.Info(LEVEL_DEBUG, "Verbose log")
	output := buf.String()

	if !strings.Contains(output, "[DEBUG]") {
		t.Errorf("expected output to contain [DEBUG] label, got %q", output)
	}
}

// Test that if a key in the key-value list isn't a string, it is replaced with a formatted key.
func TestNonStringKey(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, LEVEL_DEBUG, false)
	s.Info(LEVEL_INFO, "Non-string key", 123, "value")
	output := buf.String()

	if !strings.Contains(output, "key0: value") {
		t.Errorf("expected output to contain 'key0: value', got %q", output)
	}
}

// Test that Init properly sets the callDepth field.
func TestInitSetsCallDepth(t *testing.T) {
	s := NewSimpleLogSink(&bytes.Buffer{}, LEVEL_DEBUG, false)
	s.Init(logr.RuntimeInfo{CallDepth: 5})
	if s.callDepth != 5 {
		t.Errorf("expected callDepth 5, got %d", s.callDepth)
	}
}

// Test that NewSimpleLogger returns a logr.Logger that writes output as expected.
func TestNewSimpleLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSimpleLogger(buf, LEVEL_DEBUG, false)
	logger.Info("Logger info", "testKey", "testValue")
	output := buf.String()

	if !strings.Contains(output, "Logger info") {
		t.Errorf("expected logger info message, got %q", output)
	}
}

// Test that the unconfigured default is a silent logger.
func TestDefaultLoggerDiscards(t *testing.T) {
	logger := DefaultLogger()
	if logger.Enabled() {
		t.Error("expected default logger to be disabled")
	}
}
