package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
	})
	return buf
}

func TestInfoProducesJSONWithTimestamp(t *testing.T) {
	buf := captureLogger(t)

	Info(context.Background(), "hello", "user", "test")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log output, got empty string")
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", line, err)
	}
	if fields["ts"] == nil {
		t.Fatalf("expected ts field in %q", line)
	}
	if fields["msg"] != "hello" {
		t.Fatalf("expected msg hello in %q", line)
	}
	if fields["user"] != "test" {
		t.Fatalf("expected structured field in %q", line)
	}
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() {
		if err := SetLevel("info"); err != nil {
			t.Fatalf("restore level: %v", err)
		}
	})

	for _, level := range []string{"", "info", "debug", "warn", "error", "DEBUG"} {
		if err := SetLevel(level); err != nil {
			t.Fatalf("SetLevel(%q) failed: %v", level, err)
		}
	}
	if err := SetLevel("verbose"); err == nil {
		t.Fatal("expected unknown level to fail")
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := captureLogger(t)
	if err := SetLevel("info"); err != nil {
		t.Fatalf("set level: %v", err)
	}

	Debug(context.Background(), "invisible")
	if buf.Len() != 0 {
		t.Fatalf("expected debug output suppressed, got %q", buf.String())
	}

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	t.Cleanup(func() { _ = SetLevel("info") })

	Debug(context.Background(), "visible")
	if buf.Len() == 0 {
		t.Fatal("expected debug output at debug level")
	}
}

func TestReplaceLoggerRejectsNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil logger")
		}
	}()
	ReplaceLogger(nil)
}

func TestNilContextIsTolerated(t *testing.T) {
	buf := captureLogger(t)
	Error(nil, "boom") //nolint:staticcheck // exercising the nil guard
	if !strings.Contains(buf.String(), "boom") {
		t.Fatalf("expected output for nil context, got %q", buf.String())
	}
}
