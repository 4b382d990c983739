package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Envs(t *testing.T) {
	tests := []struct {
		env     string
		wantErr bool
	}{
		{"prod", false},
		{"local", false},
		{"dev", false},
		{"docker", false},
		{"test", false},
		{"staging", true},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			l, err := NewLogger(tt.env)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger(%q) error = %v, wantErr %v", tt.env, err, tt.wantErr)
			}
			if l != nil {
				_ = l.Sync()
			}
		})
	}
}

func TestNewLogger_TestEnvIsQuiet(t *testing.T) {
	l, err := NewLogger("test")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Error("test logger should not log info")
	}
	if !l.Core().Enabled(zapcore.WarnLevel) {
		t.Error("test logger should log warnings")
	}
}

func TestNewLogger_LevelOverride(t *testing.T) {
	l, err := NewLogger("prod", "debug")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level enabled")
	}

	if _, err := NewLogger("prod", "loud"); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestFromContext(t *testing.T) {
	fallback := zap.NewExample()
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Error("expected fallback logger")
	}
	if got := FromContext(context.Background(), nil); got == nil {
		t.Error("expected no-op logger, got nil")
	}

	scoped := zap.NewNop().With(zap.String("request_id", "r1"))
	ctx := ContextWithLogger(context.Background(), scoped)
	if got := FromContext(ctx, fallback); got != scoped {
		t.Error("expected request-scoped logger")
	}
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	ctx := WithFields(context.Background(), base, zap.String("search_query", "go"))
	FromContext(ctx, nil).Info("search done")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["search_query"]; got != "go" {
		t.Errorf("search_query = %v, want go", got)
	}

	plain := context.Background()
	if WithFields(plain, base) != plain {
		t.Error("no fields must return the context unchanged")
	}
}
