package converter

import (
	"context"
	"fmt"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/internal/issues"
	"github.com/erraggy/apidoc2oas/internal/severity"
	"github.com/erraggy/apidoc2oas/oaserrors"
	"github.com/erraggy/apidoc2oas/openapi"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates tolerated input problems
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates problems that make the document unusable
	SeverityError = severity.SeverityError
)

// ConversionIssue represents a single conversion issue
type ConversionIssue = issues.Issue

// ConversionResult contains the results of converting apidoc data
type ConversionResult struct {
	// Document is the generated OpenAPI document
	Document *openapi.Document
	// SourcePath identifies the endpoint data that was converted
	SourcePath string
	// SourceSize is the size of the endpoint data in bytes
	SourceSize int64
	// EndpointCount is the number of apidoc records that were converted
	EndpointCount int
	// Stats counts paths, operations and schemas of the document
	Stats openapi.DocumentStats
	// Issues contains all conversion issues in the order they were found
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// ErrorCount is the total number of errors
	ErrorCount int
	// Validated is true if the document was checked with kin-openapi
	Validated bool
	// Success is true if conversion completed without errors
	Success bool
}

// HasErrors returns true if there are any error issues
func (r *ConversionResult) HasErrors() bool {
	return r.ErrorCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter turns loaded apidoc input into OpenAPI documents
type Converter struct {
	// StrictMode causes conversion to fail on any warning or error issue
	StrictMode bool
	// Validate checks the generated document with kin-openapi
	Validate bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// Logger receives diagnostics; nil discards them
	Logger apidoc.Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		IncludeInfo: true,
		Logger:      apidoc.NopLogger{},
	}
}

// Convert converts loaded apidoc input.
//
// Every call works on its own schema registry, so a Converter may be used for
// several conversions, including concurrent ones.
func (c *Converter) Convert(ctx context.Context, in *apidoc.Input) (*ConversionResult, error) {
	if in == nil {
		return nil, &oaserrors.ConfigError{Option: "input", Message: "input is nil"}
	}
	logger := c.Logger
	if logger == nil {
		logger = apidoc.NopLogger{}
	}

	r := newRun(in.Project, logger)
	for i := range in.Endpoints {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("converter: conversion aborted after %d endpoint(s): %w", i, err)
		}
		r.addEndpoint(&in.Endpoints[i])
	}
	doc := r.finish()

	result := &ConversionResult{
		Document:      doc,
		SourcePath:    in.SourcePath,
		SourceSize:    in.SourceSize,
		EndpointCount: len(in.Endpoints),
		Stats:         doc.Stats(),
		Issues:        r.issues,
	}

	if c.Validate {
		validationIssues, err := validateDocument(ctx, doc)
		if err != nil {
			return nil, err
		}
		result.Issues = append(result.Issues, validationIssues...)
		result.Validated = true
	}

	if !c.IncludeInfo {
		filtered := make([]ConversionIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
	}

	result.ErrorCount, result.WarningCount, result.InfoCount = issues.Count(result.Issues)
	result.Success = result.ErrorCount == 0

	logger.Info("conversion finished",
		"source", in.SourcePath,
		"endpoints", result.EndpointCount,
		"paths", result.Stats.PathCount,
		"schemas", result.Stats.SchemaCount,
		"warnings", result.WarningCount,
	)

	// In strict mode, fail on any issues
	if c.StrictMode && (result.ErrorCount > 0 || result.WarningCount > 0) {
		return result, &oaserrors.ConversionError{
			Message: fmt.Sprintf("strict mode: %d error(s), %d warning(s)", result.ErrorCount, result.WarningCount),
		}
	}

	return result, nil
}

// ConvertWithOptions loads apidoc data and converts it using functional options.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(ctx,
//	    converter.WithFilePath("api_data.json"),
//	    converter.WithProjectFilePath("api_project.json"),
//	    converter.WithValidation(true),
//	)
func ConvertWithOptions(ctx context.Context, opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	in := cfg.input
	if in == nil {
		in, err = apidoc.Load(cfg.loadOptions()...)
		if err != nil {
			return nil, err
		}
	}

	c := &Converter{
		StrictMode:  cfg.strictMode,
		Validate:    cfg.validate,
		IncludeInfo: cfg.includeInfo,
		Logger:      cfg.logger,
	}
	return c.Convert(ctx, in)
}
