package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("parsed track", String("source", "a.mkv"), Int("cues", 42))

	line := buf.String()
	if !strings.Contains(line, "INFO parsed track") {
		t.Errorf("line = %q, want INFO message", line)
	}
	if !strings.Contains(line, "source=a.mkv") || !strings.Contains(line, "cues=42") {
		t.Errorf("line = %q, want attrs rendered", line)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Warn("skipping cue", String("reason", "bad timestamp"))

	line := buf.String()
	for _, want := range []string{`"level":"warn"`, `"msg":"skipping cue"`, `"reason":"bad timestamp"`} {
		if !strings.Contains(line, want) {
			t.Errorf("line = %q, missing %q", line, want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	if got := buf.String(); strings.Contains(got, "hidden") || !strings.Contains(got, "visible") {
		t.Errorf("output = %q, want only warn and above", got)
	}
}

func TestNewComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(newConsoleHandler(&buf, levelVarAt(slog.LevelInfo)))

	NewComponentLogger(base, "extractor").Info("ready")

	if got := buf.String(); !strings.Contains(got, "component=extractor") {
		t.Errorf("output = %q, want component attr", got)
	}
}

func TestNewComponentLoggerNilBase(t *testing.T) {
	logger := NewComponentLogger(nil, "cache")
	logger.Info("must not panic")
}

func levelVarAt(level slog.Level) *slog.LevelVar {
	lv := new(slog.LevelVar)
	lv.Set(level)
	return lv
}
