// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestLogHandlerSummarize(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelWarn)

	record := slog.NewRecord(time.Now(), slog.LevelWarn, "loading readings failed", 0)
	if got := handler.summarize(record); got != "loading readings failed" {
		t.Errorf("summary = %q", got)
	}

	record.AddAttrs(slog.String("lote", "B12"), slog.Int("attempt", 2))
	want := "loading readings failed (lote=B12, attempt=2)"
	if got := handler.summarize(record); got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestLogHandlerSummarizeIncludesDerivedAttrs(t *testing.T) {
	root := NewTUILogHandler(slog.LevelWarn)
	derived, ok := root.WithAttrs([]slog.Attr{slog.String("component", "dashboard")}).(*TUILogHandler)
	if !ok {
		t.Fatal("WithAttrs returned a foreign handler type")
	}

	record := slog.NewRecord(time.Now(), slog.LevelError, "save failed", 0)
	record.AddAttrs(slog.String("error", "timeout"))

	want := "save failed (component=dashboard, error=timeout)"
	if got := derived.summarize(record); got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestLogHandlerEnabledThreshold(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelWarn)
	ctx := context.Background()

	if handler.Enabled(ctx, slog.LevelInfo) {
		t.Error("info records must be dropped at warn level")
	}
	if !handler.Enabled(ctx, slog.LevelWarn) || !handler.Enabled(ctx, slog.LevelError) {
		t.Error("warn and error records must pass at warn level")
	}
}
