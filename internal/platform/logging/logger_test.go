package logging

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_KeyValueFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).Named("usecase.dashboard")

	logger.Warn("player events fetch failed",
		"organization_id", int64(7),
		"player_id", int64(11),
		"error", errors.New("timeout"),
	)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.LoggerName != "usecase.dashboard" {
		t.Fatalf("unexpected logger name: %q", entry.LoggerName)
	}
	fields := entry.ContextMap()
	if fields["player_id"] != int64(11) {
		t.Fatalf("unexpected player_id field: %v", fields["player_id"])
	}
	if fields["error"] != "timeout" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestLogger_ContextAddsTraceFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "dashboard computed")
	logger.DebugContext(ctx, "filtered by level")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry above level, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["trace_id"] != traceID.String() || fields["span_id"] != spanID.String() {
		t.Fatalf("unexpected trace fields: %v", fields)
	}
}

func TestLogger_NilIsSafe(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.Named("x") == nil {
		t.Fatalf("expected nop logger from nil receiver")
	}
}

func TestLogger_ContextWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	ctx := ContextWithFields(context.Background(), "pass_id", "p-1")
	ctx = ContextWithFields(ctx, "view", "dashboard")

	logger.WarnContext(ctx, "player events fetch failed", "player_id", int64(3))
	logger.Warn("no context fields")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["pass_id"] != "p-1" || fields["view"] != "dashboard" || fields["player_id"] != int64(3) {
		t.Fatalf("unexpected bound fields: %v", fields)
	}
	if _, ok := entries[1].ContextMap()["pass_id"]; ok {
		t.Fatalf("did not expect pass_id without context")
	}
}

func TestLogger_SyncOnce(t *testing.T) {
	logger := NewNop()
	child := logger.With("service", "skauts-stats")
	if err := child.Sync(); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if err := logger.Sync(); err != nil {
		t.Fatalf("second sync should be a no-op, got %v", err)
	}
}
