package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/apidoc2oas/apidoc"
)

// sourceInput represents the two ways an apidoc file can be provided to a tool.
// Exactly one of File or Content must be set.
type sourceInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to the file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline file content (JSON)"`
}

func (s sourceInput) empty() bool {
	return s.File == "" && s.Content == ""
}

// cacheEntry holds loaded endpoint data with LRU ordering and TTL expiry.
type cacheEntry struct {
	endpoints []apidoc.Endpoint
	size      int64
	insertAt  time.Time
	expiresAt time.Time
}

// dataCacheStore provides a session-scoped cache for decoded api_data.json
// inputs. File inputs are keyed by (absolutePath, modTime); content inputs by
// a SHA-256 hash. Cached endpoint slices are shared and must not be mutated.
type dataCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var dataCache = &dataCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns cached endpoints. Expired entries are lazily removed.
func (c *dataCacheStore) get(key string) (*cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil, false
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e, true
	}
	return nil, false
}

// putWithTTL stores endpoints with a specific TTL, evicting the oldest entry if at capacity.
func (c *dataCacheStore) putWithTTL(key string, endpoints []apidoc.Endpoint, size int64, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{endpoints: endpoints, size: size, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *dataCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// It is safe to call multiple times; only the first call spawns a sweeper.
// It stops when ctx is cancelled.
func (c *dataCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *dataCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *dataCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given input.
func makeCacheKey(s sourceInput) string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// validate checks that exactly one source is set and that inline content
// respects the size limit.
func (s sourceInput) validate(name string) error {
	if (s.File != "") == (s.Content != "") {
		return fmt.Errorf("%s: exactly one of file or content must be provided", name)
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return fmt.Errorf("%s: inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set APIDOC2OAS_MAX_INLINE_SIZE to increase",
			name, len(s.Content), cfg.MaxInlineSize)
	}
	return nil
}

// loadOption returns the apidoc.Load source option for this input.
func (s sourceInput) loadOption() apidoc.Option {
	if s.File != "" {
		return apidoc.WithFilePath(s.File)
	}
	return apidoc.WithReader(strings.NewReader(s.Content))
}

// resolveInput loads api_data.json (through the cache) and, when given,
// api_project.json.
func resolveInput(data, project sourceInput) (*apidoc.Input, error) {
	if err := data.validate("data"); err != nil {
		return nil, err
	}
	if !project.empty() {
		if err := project.validate("project"); err != nil {
			return nil, err
		}
	}

	in, err := loadData(data)
	if err != nil {
		return nil, err
	}

	switch {
	case project.File != "":
		raw, err := os.ReadFile(project.File) //nolint:gosec // G304 - reading user-specified input is the purpose
		if err != nil {
			return nil, fmt.Errorf("reading project: %w", err)
		}
		if in.Project, err = apidoc.DecodeProject(raw); err != nil {
			return nil, err
		}
	case project.Content != "":
		if in.Project, err = apidoc.DecodeProject([]byte(project.Content)); err != nil {
			return nil, err
		}
	}
	return in, nil
}

func loadData(s sourceInput) (*apidoc.Input, error) {
	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(s)
		ttl = cfg.CacheContentTTL
		if s.File != "" {
			ttl = cfg.CacheFileTTL
		}
	}

	if key != "" {
		if e, ok := dataCache.get(key); ok {
			return &apidoc.Input{
				Endpoints:  e.endpoints,
				Project:    &apidoc.Project{},
				SourcePath: sourceName(s),
				SourceSize: e.size,
			}, nil
		}
	}

	in, err := apidoc.Load(s.loadOption(), apidoc.WithMaxInputSize(cfg.MaxInputSize))
	if err != nil {
		return nil, err
	}
	in.SourcePath = sourceName(s)

	if key != "" {
		dataCache.putWithTTL(key, in.Endpoints, in.SourceSize, ttl)
	}
	return in, nil
}

func sourceName(s sourceInput) string {
	if s.File != "" {
		return filepath.Base(s.File)
	}
	return "<content>"
}
