package telemetry

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Warn("llm.fallback", map[string]any{"level": "spoofed", "skill": "sql"})

	line := strings.TrimSpace(buf.String())
	var got map[string]any
	if err := json.Unmarshal([]byte(line), &got); err != nil {
		t.Fatalf("decode %q: %v", line, err)
	}
	if got["level"] != "warn" || got["msg"] != "llm.fallback" || got["skill"] != "sql" {
		t.Fatalf("unexpected entry %v", got)
	}
	if _, ok := got["ts"]; !ok {
		t.Fatalf("missing ts")
	}
}

func TestWriteUnmarshalableField(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Error("bad", map[string]any{"fn": func() {}})

	if !strings.Contains(buf.String(), "logger marshal failed") {
		t.Fatalf("expected marshal failure line, got %q", buf.String())
	}
}
