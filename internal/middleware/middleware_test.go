package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgLog "task-tracker/pkg/log"
)

func newRouter(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.POST("/tasks", append(handlers, func(c *gin.Context) {
		id, _ := c.Request.Context().Value(pkgLog.RequestIDKey).(string)
		c.String(http.StatusOK, id)
	})...)
	return r
}

func TestRequestID(t *testing.T) {
	mw := New(pkgLog.NewNop(), Config{})
	r := newRouter(mw)

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/tasks", nil))

		got := w.Header().Get(RequestIDHeader)
		if got == "" {
			t.Fatal("expected a generated request id header")
		}
		if w.Body.String() != got {
			t.Errorf("context id %q does not match header %q", w.Body.String(), got)
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tasks", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("header = %q, want abc-123", got)
		}
		if w.Body.String() != "abc-123" {
			t.Errorf("context id = %q, want abc-123", w.Body.String())
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one request.
	mw := New(pkgLog.NewNop(), Config{RequestsPerMin: 10})
	r := newRouter(mw, mw.RateLimit())

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/tasks", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("first request: got %d", code)
	}
	if code := send("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("second request: got %d, want 429", code)
	}
	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("other client should have its own budget, got %d", code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := New(pkgLog.NewNop(), Config{})
	r := newRouter(mw, mw.RateLimit())

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/tasks", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: got %d", i, w.Code)
		}
	}
}

func TestNewRateLimiterBurstFloor(t *testing.T) {
	rl := newRateLimiter(3)
	if rl.burst != 1 {
		t.Errorf("burst = %d, want 1", rl.burst)
	}
	if !rl.Allow("x") {
		t.Error("first call should be allowed")
	}
}
