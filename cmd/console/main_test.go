package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"task-tracker/config"
	"task-tracker/internal/task/delivery/console"
	"task-tracker/internal/task/repository/csvfile"
	"task-tracker/internal/task/usecase"
	"task-tracker/pkg/log"
)

// runSession drives one console session with the logger main would build,
// redirected to a file, and returns what was logged.
func runSession(t *testing.T, storeContent, input string) string {
	t.Helper()
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	logPath := filepath.Join(t.TempDir(), "console.log")
	zc := consoleLogConfig(cfg.Logger)
	zc.OutputPaths = []string{logPath}
	logger := log.Init(zc)

	storePath := filepath.Join(t.TempDir(), "tasks.csv")
	if storeContent != "" {
		if err := os.WriteFile(storePath, []byte(storeContent), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	uc := usecase.New(logger, csvfile.New(storePath, logger), nil, "")
	today := func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }
	var out bytes.Buffer
	if err := console.New(logger, uc, strings.NewReader(input), &out, today).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	logged, err := os.ReadFile(logPath)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	return string(logged)
}

func TestConsoleLogConfigDefaults(t *testing.T) {
	zc := consoleLogConfig(config.LoggerConfig{Level: "debug", Mode: "debug", ConsoleLevel: "warn"})
	if zc.Level != "warn" || zc.Mode != log.ModeProduction {
		t.Errorf("unexpected console log config %+v", zc)
	}
	if len(zc.OutputPaths) != 1 || zc.OutputPaths[0] != "stderr" {
		t.Errorf("output paths = %v", zc.OutputPaths)
	}
}

func TestConsoleSessionLogsNothing(t *testing.T) {
	logged := runSession(t, "", "1\nPay rent\nhigh\n2024-01-05\n2\n3\n")
	if strings.TrimSpace(logged) != "" {
		t.Errorf("expected no log output during add and view, got:\n%s", logged)
	}
}

func TestConsoleSessionWarnsWithoutStackTraces(t *testing.T) {
	store := "description,priority,deadline\r\nBroken,low,soon\r\n"
	logged := runSession(t, store, "2\n3\n")

	lines := strings.Split(strings.TrimSpace(logged), "\n")
	if len(lines) == 0 || lines[0] == "" {
		t.Fatal("expected a warning for the unreadable record")
	}
	for _, line := range lines {
		if !strings.Contains(line, "WARN") {
			t.Errorf("unexpected log line %q", line)
		}
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for Go < 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
