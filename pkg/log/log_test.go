package log

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{" WARN ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInitWritesToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l := Init(ZapConfig{
		Level:       "info",
		Mode:        ModeProduction,
		Encoding:    EncodingJSON,
		OutputPaths: []string{path},
	})

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	l.Debugf(ctx, "hidden %d", 1)
	l.Infof(ctx, "task appended: %s", "write report")
	if zl, ok := l.(*zapLogger); ok {
		_ = zl.sugar.Sync()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)

	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered at info level: %s", out)
	}
	if !strings.Contains(out, "task appended: write report") {
		t.Errorf("expected info line in output, got %s", out)
	}
	if !strings.Contains(out, `"request_id":"req-1"`) {
		t.Errorf("expected request id field, got %s", out)
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Info(context.Background(), "discarded")
	l.Errorf(context.TODO(), "discarded %v", "too")
}
