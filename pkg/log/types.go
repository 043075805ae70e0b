package log

// ZapConfig configures Init.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "production" selects zap's production preset, anything else development
	Encoding     string // "console" or "json"
	ColorEnabled bool
	OutputPaths  []string // defaults to stderr
}

type ctxKey string

// RequestIDKey is the context key under which middleware stores the request id.
const RequestIDKey ctxKey = "request_id"

const (
	ModeProduction  = "production"
	EncodingJSON    = "json"
	EncodingConsole = "console"
)
