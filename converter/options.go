package converter

import (
	"io"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/internal/options"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for conversion operations
type convertConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte
	input    *apidoc.Input

	projectPath  *string
	projectBytes []byte
	project      *apidoc.Project

	maxInputSize int64

	strictMode  bool
	validate    bool
	includeInfo bool
	logger      apidoc.Logger
}

// applyOptions applies option functions and validates the input source
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		includeInfo: true,
		logger:      apidoc.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("converter input",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil, cfg.input != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadOptions translates the input settings into apidoc.Load options.
func (cfg *convertConfig) loadOptions() []apidoc.Option {
	var opts []apidoc.Option
	switch {
	case cfg.filePath != nil:
		opts = append(opts, apidoc.WithFilePath(*cfg.filePath))
	case cfg.reader != nil:
		opts = append(opts, apidoc.WithReader(cfg.reader))
	default:
		opts = append(opts, apidoc.WithBytes(cfg.bytes))
	}

	switch {
	case cfg.project != nil:
		opts = append(opts, apidoc.WithProject(cfg.project))
	case cfg.projectBytes != nil:
		opts = append(opts, apidoc.WithProjectBytes(cfg.projectBytes))
	case cfg.projectPath != nil:
		opts = append(opts, apidoc.WithProjectFilePath(*cfg.projectPath))
	}

	return append(opts,
		apidoc.WithMaxInputSize(cfg.maxInputSize),
		apidoc.WithLogger(cfg.logger),
	)
}

// WithFilePath specifies a file path to api_data.json
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader reads api_data.json from r
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		cfg.reader = r
		return nil
	}
}

// WithBytes uses data as the content of api_data.json
func WithBytes(data []byte) Option {
	return func(cfg *convertConfig) error {
		if data == nil {
			data = []byte{}
		}
		cfg.bytes = data
		return nil
	}
}

// WithInput converts already loaded input.
// Project options are ignored when this option is used.
func WithInput(in *apidoc.Input) Option {
	return func(cfg *convertConfig) error {
		cfg.input = in
		return nil
	}
}

// WithProjectFilePath specifies a file path to api_project.json
func WithProjectFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		cfg.projectPath = &path
		return nil
	}
}

// WithProjectBytes uses data as the content of api_project.json
func WithProjectBytes(data []byte) Option {
	return func(cfg *convertConfig) error {
		cfg.projectBytes = data
		return nil
	}
}

// WithProject supplies the project metadata directly
func WithProject(p *apidoc.Project) Option {
	return func(cfg *convertConfig) error {
		cfg.project = p
		return nil
	}
}

// WithMaxInputSize limits how many bytes are read from each input file.
// Zero selects apidoc.DefaultMaxInputSize.
func WithMaxInputSize(n int64) Option {
	return func(cfg *convertConfig) error {
		cfg.maxInputSize = n
		return nil
	}
}

// WithStrictMode enables or disables strict mode (fail on any warning)
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithValidation enables or disables validating the result with kin-openapi
// Default: false
func WithValidation(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.validate = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithLogger sets the logger used during loading and conversion
func WithLogger(l apidoc.Logger) Option {
	return func(cfg *convertConfig) error {
		if l == nil {
			l = apidoc.NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}
