package logger

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"ERR", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Fatalf("parseLevel(%q)=%v, want %v", c.in, got, c.want)
		}
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("MP_TEST_KEY", "val")
	if v := envOr("MP_TEST_KEY", "def"); v != "val" {
		t.Fatalf("envOr returned %q, want 'val'", v)
	}
	if v := envOr("MP_TEST_MISSING", "def"); v != "def" {
		t.Fatalf("envOr returned %q, want 'def'", v)
	}
}

func TestInitAndL(t *testing.T) {
	_ = os.Unsetenv("LOG_LEVEL")
	_ = os.Unsetenv("LOG_PRETTY")
	Init()
	if L() == nil {
		t.Fatalf("L() returned nil")
	}
	if L().GetLevel() != zerolog.InfoLevel {
		t.Fatalf("default level %v, want info", L().GetLevel())
	}

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	Init()
	if L().GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", L().GetLevel())
	}
}

func TestLoggerSelfInitializes(t *testing.T) {
	root = zerolog.Logger{}
	lg := L()
	if lg == nil {
		t.Fatalf("logger is nil")
	}
	if lg.GetLevel() == zerolog.NoLevel {
		t.Fatalf("logger level not initialized")
	}
}
