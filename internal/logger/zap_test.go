package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		DebugLevel: zapcore.DebugLevel,
		"bogus":    defaultZapLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Errorf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewZapLogger_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.log")
	log := newZapLogger(Options{Level: InfoLevel, File: path, MaxSizeMB: 1})

	log.Infow("case_resolved", "case_id", "c-1")
	_ = log.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("expected log file to contain the entry")
	}
}
