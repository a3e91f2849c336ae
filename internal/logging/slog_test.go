package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newCaptureLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	return NewSlog(slog.New(handler)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	tests := []struct {
		name string
		log  func(l *SlogLogger)
		want string
	}{
		{"debug", func(l *SlogLogger) { l.Debug("debug msg", "k", "v") }, "level=DEBUG"},
		{"info", func(l *SlogLogger) { l.Info("info msg") }, "level=INFO"},
		{"warn", func(l *SlogLogger) { l.Warn("warn msg") }, "level=WARN"},
		{"error", func(l *SlogLogger) { l.Error("error msg") }, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newCaptureLogger(t)
			tt.log(l)
			require.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestSlogLogger_KeyValues(t *testing.T) {
	l, buf := newCaptureLogger(t)

	l.Info("latch changed", "from", "Inactive", "to", "Active")

	out := buf.String()
	require.Contains(t, out, "latch changed")
	require.Contains(t, out, "from=Inactive")
	require.Contains(t, out, "to=Active")
}
