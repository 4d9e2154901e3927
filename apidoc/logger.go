package apidoc

import (
	"log/slog"

	"github.com/hashicorp/go-hclog"
)

// Logger is the interface that apidoc2oas uses for structured logging.
//
// It uses variadic key-value pairs for structured attributes, following the
// same convention as log/slog and go-hclog:
//
//	logger.Warn("example is not valid JSON", "endpoint", "GetUser", "code", 200)
//
// Use [NewSlogAdapter] or [NewHclogAdapter] to plug in an existing logger.
type Logger interface {
	// Debug logs at debug level. Use for detailed diagnostic information.
	Debug(msg string, attrs ...any)

	// Info logs at info level. Use for general operational information.
	Info(msg string, attrs ...any)

	// Warn logs at warn level. Use for tolerated input problems.
	Warn(msg string, attrs ...any)

	// Error logs at error level. Use for error conditions.
	Error(msg string, attrs ...any)

	// With returns a new Logger with the given attributes prepended to every log.
	With(attrs ...any) Logger
}

// NopLogger is a no-op logger that discards all output.
// It is the default logger used when no logger is configured.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(_ string, _ ...any) {}

// Info implements Logger.
func (NopLogger) Info(_ string, _ ...any) {}

// Warn implements Logger.
func (NopLogger) Warn(_ string, _ ...any) {}

// Error implements Logger.
func (NopLogger) Error(_ string, _ ...any) {}

// With implements Logger.
func (n NopLogger) With(_ ...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter from a *slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements Logger.
func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }

// Info implements Logger.
func (s *SlogAdapter) Info(msg string, attrs ...any) { s.logger.Info(msg, attrs...) }

// Warn implements Logger.
func (s *SlogAdapter) Warn(msg string, attrs ...any) { s.logger.Warn(msg, attrs...) }

// Error implements Logger.
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

// With implements Logger.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)

// HclogAdapter wraps an hclog.Logger to implement the Logger interface.
type HclogAdapter struct {
	logger hclog.Logger
}

// NewHclogAdapter creates a new HclogAdapter.
// If logger is nil, hclog.Default() is used.
func NewHclogAdapter(logger hclog.Logger) *HclogAdapter {
	if logger == nil {
		logger = hclog.Default()
	}
	return &HclogAdapter{logger: logger}
}

// Debug implements Logger.
func (h *HclogAdapter) Debug(msg string, attrs ...any) { h.logger.Debug(msg, attrs...) }

// Info implements Logger.
func (h *HclogAdapter) Info(msg string, attrs ...any) { h.logger.Info(msg, attrs...) }

// Warn implements Logger.
func (h *HclogAdapter) Warn(msg string, attrs ...any) { h.logger.Warn(msg, attrs...) }

// Error implements Logger.
func (h *HclogAdapter) Error(msg string, attrs ...any) { h.logger.Error(msg, attrs...) }

// With implements Logger.
func (h *HclogAdapter) With(attrs ...any) Logger {
	return &HclogAdapter{logger: h.logger.With(attrs...)}
}

var _ Logger = (*HclogAdapter)(nil)
