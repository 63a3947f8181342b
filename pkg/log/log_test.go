package log_test

import (
	"context"
	"testing"

	"items-fixture-api/pkg/log"
)

func TestInit(t *testing.T) {
	t.Run("Console Development", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true})
		if l == nil {
			t.Fatal("expected logger, got nil")
		}
		l.Debug(context.Background(), "debug message")
		l.Infof(context.Background(), "hello %s", "world")
	})

	t.Run("JSON Production", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"})
		if l == nil {
			t.Fatal("expected logger, got nil")
		}
		l.Warn(context.Background(), "warn message")
	})

	t.Run("Invalid Level Falls Back", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "shouting", Mode: "development", Encoding: "console"})
		if l == nil {
			t.Fatal("expected logger, got nil")
		}
		l.Info(context.Background(), "still logs")
	})

	t.Run("Logs With Request ID Context", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "debug", Mode: "development", Encoding: "json"})
		ctx := log.WithRequestID(context.Background(), "req-123")
		l.Error(ctx, "request-scoped error")
	})
}

func TestRequestIDContext(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		ctx := log.WithRequestID(context.Background(), "abc-def")
		if got := log.RequestIDFromContext(ctx); got != "abc-def" {
			t.Errorf("expected abc-def, got %q", got)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if got := log.RequestIDFromContext(context.Background()); got != "" {
			t.Errorf("expected empty id, got %q", got)
		}
	})

	t.Run("Nil Context", func(t *testing.T) {
		if got := log.RequestIDFromContext(nil); got != "" {
			t.Errorf("expected empty id for nil context, got %q", got)
		}
	})
}
