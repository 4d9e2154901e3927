package apidoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/erraggy/apidoc2oas/internal/options"
	"github.com/erraggy/apidoc2oas/oaserrors"
)

// DefaultMaxInputSize bounds how many bytes are read from one input source.
const DefaultMaxInputSize int64 = 64 << 20

// Input is a loaded apidoc export.
type Input struct {
	// Endpoints are the records of api_data.json in file order.
	Endpoints []Endpoint
	// Project is the decoded api_project.json, or an empty project.
	Project *Project
	// SourcePath identifies where the endpoints were read from.
	SourcePath string
	// SourceSize is the size of the endpoint data in bytes.
	SourceSize int64
}

// Option is a function that configures a load operation
type Option func(*loadConfig) error

type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	projectPath  *string
	projectBytes []byte
	project      *Project

	maxInputSize int64
	logger       Logger
}

// WithFilePath reads api_data.json from path.
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader reads api_data.json from r.
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "WithReader", Message: "reader is nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes uses data as the content of api_data.json.
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		if data == nil {
			data = []byte{}
		}
		cfg.bytes = data
		return nil
	}
}

// WithProjectFilePath reads api_project.json from path.
func WithProjectFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.projectPath = &path
		return nil
	}
}

// WithProjectBytes uses data as the content of api_project.json.
func WithProjectBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		cfg.projectBytes = data
		return nil
	}
}

// WithProject supplies an already decoded project.
func WithProject(p *Project) Option {
	return func(cfg *loadConfig) error {
		cfg.project = p
		return nil
	}
}

// WithMaxInputSize overrides DefaultMaxInputSize. Zero keeps the default.
func WithMaxInputSize(n int64) Option {
	return func(cfg *loadConfig) error {
		if n < 0 {
			return &oaserrors.ConfigError{Option: "WithMaxInputSize", Value: n, Message: "must not be negative"}
		}
		cfg.maxInputSize = n
		return nil
	}
}

// WithLogger sets the logger used while loading.
func WithLogger(l Logger) Option {
	return func(cfg *loadConfig) error {
		cfg.logger = l
		return nil
	}
}

// Load reads and decodes an apidoc export.
func Load(opts ...Option) (*Input, error) {
	cfg := &loadConfig{
		maxInputSize: DefaultMaxInputSize,
		logger:       NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("apidoc: invalid options: %w", err)
		}
	}
	if cfg.maxInputSize == 0 {
		cfg.maxInputSize = DefaultMaxInputSize
	}
	if cfg.logger == nil {
		cfg.logger = NopLogger{}
	}
	if err := options.ValidateSingleInputSource("apidoc input",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, fmt.Errorf("apidoc: %w", err)
	}

	source := "<bytes>"
	var data []byte
	var err error
	switch {
	case cfg.filePath != nil:
		source = *cfg.filePath
		data, err = readFile(source, cfg.maxInputSize)
	case cfg.reader != nil:
		source = "<reader>"
		data, err = readLimited(cfg.reader, cfg.maxInputSize)
	default:
		data, err = readLimited(bytes.NewReader(cfg.bytes), cfg.maxInputSize)
	}
	if err != nil {
		return nil, fmt.Errorf("apidoc: reading %s: %w", source, err)
	}

	endpoints, err := DecodeEndpoints(data)
	if err != nil {
		return nil, withSource(err, source)
	}
	cfg.logger.Debug("loaded apidoc data", "source", source, "endpoints", len(endpoints))

	project, err := cfg.loadProject()
	if err != nil {
		return nil, err
	}

	return &Input{
		Endpoints:  endpoints,
		Project:    project,
		SourcePath: source,
		SourceSize: int64(len(data)),
	}, nil
}

func (cfg *loadConfig) loadProject() (*Project, error) {
	switch {
	case cfg.project != nil:
		return cfg.project, nil
	case cfg.projectBytes != nil:
		p, err := DecodeProject(cfg.projectBytes)
		if err != nil {
			return nil, withSource(err, "<project bytes>")
		}
		return p, nil
	case cfg.projectPath != nil:
		data, err := readFile(*cfg.projectPath, cfg.maxInputSize)
		if err != nil {
			return nil, fmt.Errorf("apidoc: reading %s: %w", *cfg.projectPath, err)
		}
		p, err := DecodeProject(data)
		if err != nil {
			return nil, withSource(err, *cfg.projectPath)
		}
		return p, nil
	default:
		return &Project{}, nil
	}
}

// DecodeEndpoints decodes api_data.json. Both the plain array and the
// {"api": [...]} wrapper written by older apidoc releases are accepted.
func DecodeEndpoints(data []byte) ([]Endpoint, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped struct {
			API []Endpoint `json:"api"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, parseError("decoding endpoints", err)
		}
		return wrapped.API, nil
	}

	var endpoints []Endpoint
	if err := json.Unmarshal(trimmed, &endpoints); err != nil {
		return nil, parseError("decoding endpoints", err)
	}
	return endpoints, nil
}

// DecodeProject decodes api_project.json.
func DecodeProject(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, parseError("decoding project", err)
	}
	return &p, nil
}

func parseError(msg string, err error) *oaserrors.ParseError {
	pe := &oaserrors.ParseError{Message: msg, Cause: err}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		pe.Offset = syntaxErr.Offset
	}
	return pe
}

func withSource(err error, source string) error {
	var pe *oaserrors.ParseError
	if errors.As(err, &pe) && pe.Path == "" {
		pe.Path = source
	}
	return fmt.Errorf("apidoc: %w", err)
}

func readFile(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path) //nolint:gosec // G304 - reading user-specified input is the purpose
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return readLimited(f, limit)
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "input_size",
			Limit:        limit,
			Message:      "input is larger than the configured maximum",
		}
	}
	return data, nil
}
