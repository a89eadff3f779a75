package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/filter"
)

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{Writer: &bytes.Buffer{}})
	sh := NewSlogHandler(h, filter.New(core.InfoFilter), "app")

	if sh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Warn should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Info")
	}
}

func TestSlogHandler_TargetFilter(t *testing.T) {
	f, _ := filter.Parse("warn,app.db=trace", core.InfoFilter)
	h := NewConsoleHandler(ConsoleConfig{Writer: &bytes.Buffer{}})

	if !NewSlogHandler(h, f, "app.db").Enabled(context.Background(), LevelTrace) {
		t.Error("app.db=trace should enable LevelTrace")
	}
	if NewSlogHandler(h, f, "app.http").Enabled(context.Background(), slog.LevelInfo) {
		t.Error("warn base should reject info for app.http")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	asciiProfile(t)
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})

	logger := slog.New(NewSlogHandler(h, filter.New(core.TraceFilter), ""))
	logger.Info("test message", "key", "value", "count", 42)

	if got := buf.String(); got != "[*] test message key=value count=42\n" {
		t.Errorf("output = %q", got)
	}
}

func TestSlogHandler_Levels(t *testing.T) {
	asciiProfile(t)
	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelError + 4, "[E] m\n"},
		{slog.LevelError, "[E] m\n"},
		{slog.LevelWarn, "[W] m\n"},
		{slog.LevelInfo, "[*] m\n"},
		{slog.LevelDebug, "[D] m\n"},
		{LevelTrace, "[T] m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
			logger := slog.New(NewSlogHandler(h, filter.New(core.TraceFilter), ""))
			logger.Log(context.Background(), tt.level, "m")
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	asciiProfile(t)
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})

	logger := slog.New(NewSlogHandler(h, filter.New(core.TraceFilter), "")).
		With("service", "api").
		WithGroup("req").
		With("id", "r-1")
	logger.Warn("slow request", "path", "/users list", slog.Group("timing", "ms", 1500))

	want := `[W] slow request service=api req.id=r-1 req.path="/users list" req.timing.ms=1500` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSlogHandler_MultiLineMessage(t *testing.T) {
	asciiProfile(t)
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})

	slog.New(NewSlogHandler(h, filter.New(core.TraceFilter), "")).Info("first\nsecond", "k", "v")
	if got := buf.String(); got != "[*] first\n | second k=v\n" {
		t.Errorf("output = %q", got)
	}
}

func TestSlogHandler_ReturnsWriteError(t *testing.T) {
	sinkErr := errors.New("closed pipe")
	h := NewConsoleHandler(ConsoleConfig{Writer: failingWriter{err: sinkErr}})
	sh := NewSlogHandler(h, filter.New(core.TraceFilter), "")

	err := sh.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelError, "x", 0))
	if err != sinkErr {
		t.Errorf("Handle() error = %v, want %v", err, sinkErr)
	}
}
