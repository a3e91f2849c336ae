package logger

import "testing"

func TestNopLogger(t *testing.T) {
	l := NewNop()

	// None of these may panic or produce output.
	l.Debug("debug", "key", "value")
	l.Info("info")
	l.Warn("warn", "key", 1)
	l.Error("error")
	l.Fatal("fatal must not exit")
}
