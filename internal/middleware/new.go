package middleware

import (
	pkgLog "task-tracker/pkg/log"
)

// Config holds the limits applied by the middleware set.
type Config struct {
	// RequestsPerMin caps writes per client IP. Zero or less disables limiting.
	RequestsPerMin int
}

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
