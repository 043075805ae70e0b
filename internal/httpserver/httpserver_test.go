package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"task-tracker/internal/middleware"
	"task-tracker/internal/task/repository/csvfile"
	"task-tracker/internal/task/usecase"
	pkgLog "task-tracker/pkg/log"
)

func newTestServer(t *testing.T, path string) *HTTPServer {
	t.Helper()
	l := pkgLog.NewNop()
	srv, err := New(l, Config{
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		TaskUseCase: usecase.New(l, csvfile.New(path, l), nil, ""),
		Today:       func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNewValidation(t *testing.T) {
	l := pkgLog.NewNop()
	uc := usecase.New(l, csvfile.New(filepath.Join(t.TempDir(), "t.csv"), l), nil, "")
	today := func() time.Time { return time.Now() }

	tests := []struct {
		name   string
		logger pkgLog.Logger
		cfg    Config
	}{
		{name: "No logger", cfg: Config{Port: 1, Mode: "test", TaskUseCase: uc, Today: today}},
		{name: "No mode", logger: l, cfg: Config{Port: 1, TaskUseCase: uc, Today: today}},
		{name: "No port", logger: l, cfg: Config{Mode: "test", TaskUseCase: uc, Today: today}},
		{name: "No use case", logger: l, cfg: Config{Port: 1, Mode: "test", Today: today}},
		{name: "No clock", logger: l, cfg: Config{Port: 1, Mode: "test", TaskUseCase: uc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.logger, tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, filepath.Join(t.TempDir(), "tasks.csv"))

	for _, path := range []string{"/health", "/ready", "/live", "/metrics", "/"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Errorf("GET %s = %d", path, w.Code)
			}
			if w.Header().Get(middleware.RequestIDHeader) == "" {
				t.Errorf("GET %s missing request id", path)
			}
		})
	}
}

func TestMetricsExposeTaskCounters(t *testing.T) {
	srv := newTestServer(t, filepath.Join(t.TempDir(), "tasks.csv"))

	body := `{"description":"Pay rent","priority":"high","deadline":"2024-01-05"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d", w.Code)
	}

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(w.Body.String(), `task_tracker_tasks_created_total{priority="high"}`) {
		t.Error("created counter not exposed")
	}
}

func TestReadyFailsOnUnreadableStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.csv")
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, path)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("ready = %d, want 500", w.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t, filepath.Join(t.TempDir(), "tasks.csv"))
	srv.port = 0 // validated already; let the kernel pick a free port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestInvalidRecordGaugeStableAcrossPolls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.csv")
	content := "description,priority,deadline\r\nBroken,low,soon\r\nFine,high,2024-01-05\r\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, path)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("ready poll %d = %d", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(w.Body.String(), "\ntask_tracker_invalid_records 1\n") {
		t.Errorf("invalid record gauge should read 1 after repeated polls:\n%s", w.Body.String())
	}
}
