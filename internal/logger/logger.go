// Package logger holds the process-wide zerolog instance.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "marketpulse"

var root zerolog.Logger

// Init configures the global JSON logger. Every line carries a static
// "service" field so logs from co-located processes stay distinguishable.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error (default: info)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	level := parseLevel(envOr("LOG_LEVEL", "info"))

	zerolog.TimeFieldFormat = time.RFC3339Nano
	var w io.Writer = os.Stdout
	if strings.EqualFold(envOr("LOG_PRETTY", "false"), "true") {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	root = zerolog.New(w).With().
		Timestamp().
		Str("service", serviceName).
		Logger().
		Level(level)
}

// L returns the global logger. Call Init() once on startup; L self-initializes
// when a package logs before main wires things up (tests mostly).
func L() *zerolog.Logger {
	if root.GetLevel() == zerolog.NoLevel {
		Init()
	}
	return &root
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
