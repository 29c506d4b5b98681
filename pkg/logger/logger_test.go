package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCloudRunHandlerWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewCloudRunHandlerTo(&buf, slog.LevelInfo)).With("request_id", "req-1")

	log.Warn("bank not found", "error", errors.New("missing"), "account_number", "1234")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v (%q)", err, buf.String())
	}
	if entry["severity"] != "WARNING" {
		t.Fatalf("severity = %v", entry["severity"])
	}
	if entry["message"] != "bank not found" {
		t.Fatalf("message = %v", entry["message"])
	}
	data, ok := entry["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data: %#v", entry)
	}
	if data["error"] != "missing" {
		t.Fatalf("error attr = %#v", data["error"])
	}
	if data["account_number"] != "1234" || data["request_id"] != "req-1" {
		t.Fatalf("unexpected attrs: %#v", data)
	}
}

func TestCloudRunHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewCloudRunHandlerTo(&buf, slog.LevelWarn))

	log.Info("ignored")

	if buf.Len() != 0 {
		t.Fatalf("expected no output below level, got %q", buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatalf("FromContext must never return nil")
	}

	var buf bytes.Buffer
	base := slog.New(NewCloudRunHandlerTo(&buf, slog.LevelInfo))
	ctx := ToContext(context.Background(), base)

	log, ctx := With(ctx, "account_number", "1234")
	if FromContext(ctx) != log {
		t.Fatalf("With must store the enriched logger in the returned context")
	}
}
