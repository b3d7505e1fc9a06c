package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLogLevel(tt.in); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewStructuredLogger(t *testing.T) {
	l := NewStructuredLogger("envprobe", "v0.0.1", "warn")
	if l == nil {
		t.Fatal("expected logger")
	}
	if l.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !l.Enabled(t.Context(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestSetDefaultStructuredLoggerWithLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Setenv(EnvVarLogLevel, "error")
	SetDefaultStructuredLoggerWithLevel("envprobe", "v0.0.1", "")
	if slog.Default().Enabled(t.Context(), slog.LevelWarn) {
		t.Error("LOG_LEVEL=error should disable warn")
	}

	SetDefaultStructuredLoggerWithLevel("envprobe", "v0.0.1", "debug")
	if !slog.Default().Enabled(t.Context(), slog.LevelDebug) {
		t.Error("explicit debug level should win over LOG_LEVEL")
	}
}

func TestNewLogLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))

	NewLogLogger(slog.LevelWarn).Print("http: TLS handshake error")

	out := buf.String()
	if !strings.Contains(out, `"level":"WARN"`) || !strings.Contains(out, "TLS handshake error") {
		t.Errorf("expected warning through default handler, got %q", out)
	}
}
