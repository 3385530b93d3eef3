package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"DEBUG":   Debug,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "pet-care-planner", Writer: &buf})

	log.With(map[string]any{"pet": "Buddy"}).Warn("conflict detected", map[string]any{
		"task": 2,
		"":     "ignored",
	})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid json output %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" || entry["message"] != "conflict detected" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if entry["app"] != "pet-care-planner" || entry["pet"] != "Buddy" {
		t.Fatalf("expected base fields, got %#v", entry)
	}
	if entry["task"] != float64(2) {
		t.Fatalf("expected task=2, got %#v", entry["task"])
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty key must be dropped")
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatJSON, Writer: &buf})

	log.Info("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output below level, got %q", buf.String())
	}

	log.Error("shown", nil)
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected error entry, got %q", buf.String())
	}
}

func TestTextLogger_IsHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Debug, Format: FormatText, Writer: &buf})

	log.Debug("task added", map[string]any{"task_id": 7})

	out := buf.String()
	if !strings.Contains(out, "task added") || !strings.Contains(out, "task_id=7") {
		t.Fatalf("unexpected text output %q", out)
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.With(map[string]any{"a": 1}).Error("nothing", nil)
}
