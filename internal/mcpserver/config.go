package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Convert tool defaults.
	ConvertValidate bool
	ConvertStrict   bool
	ConvertFormat   string

	// list_endpoints defaults.
	ListLimit int
	MaxLimit  int

	// Input limits.
	MaxInlineSize int64
	MaxInputSize  int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from APIDOC2OAS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("APIDOC2OAS_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("APIDOC2OAS_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("APIDOC2OAS_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("APIDOC2OAS_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("APIDOC2OAS_CACHE_SWEEP_INTERVAL", 60*time.Second),
		ConvertValidate:    envBool("APIDOC2OAS_CONVERT_VALIDATE", false),
		ConvertStrict:      envBool("APIDOC2OAS_CONVERT_STRICT", false),
		ConvertFormat:      envFormat("APIDOC2OAS_CONVERT_FORMAT", formatJSON),
		ListLimit:          envInt("APIDOC2OAS_LIST_LIMIT", 100),
		MaxLimit:           envInt("APIDOC2OAS_MAX_LIMIT", 1000),
		MaxInlineSize:      int64(envInt("APIDOC2OAS_MAX_INLINE_SIZE", 10*1024*1024)),
		MaxInputSize:       int64(envInt("APIDOC2OAS_MAX_INPUT_SIZE", 64*1024*1024)),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}

func envFormat(key, fallback string) string {
	v := strings.ToLower(os.Getenv(key))
	switch v {
	case "":
		return fallback
	case formatJSON, formatYAML:
		return v
	default:
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
}
