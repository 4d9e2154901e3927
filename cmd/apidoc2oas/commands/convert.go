package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/converter"
	"github.com/erraggy/apidoc2oas/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Input    string
	Project  string
	Output   string
	Format   string
	Validate bool
	Strict   bool
	NoInfo   bool
	Quiet    bool
	Verbose  bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Input, "i", "", "apidoc api_data.json path, or '-' for stdin (required)")
	fs.StringVar(&flags.Input, "input", "", "apidoc api_data.json path, or '-' for stdin (required)")
	fs.StringVar(&flags.Project, "p", "", "apidoc api_project.json path")
	fs.StringVar(&flags.Project, "project", "", "apidoc api_project.json path")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "f", FormatJSON, "output format: json or yaml")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")
	fs.BoolVar(&flags.Validate, "validate", false, "validate the generated document with kin-openapi")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any conversion issues (even warnings)")
	fs.BoolVar(&flags.NoInfo, "no-info", false, "suppress info messages")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log per-field merge decisions to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidoc2oas convert [flags] -i <api_data.json|->\n\n")
		cliutil.Writef(fs.Output(), "Convert an apidoc export into an OpenAPI 3.0 document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  apidoc2oas convert -i doc/api_data.json -p doc/api_project.json -o openapi.json\n")
		cliutil.Writef(fs.Output(), "  apidoc2oas convert -i doc/api_data.json -f yaml --validate -o openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  cat api_data.json | apidoc2oas convert -q -i - > openapi.json\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Warnings mark examples that could not be decoded or endpoints that were skipped\n")
		cliutil.Writef(fs.Output(), "  - Info messages provide context about merge choices\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    Conversion failed, or issues found in --strict mode\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	return runConvert(context.Background(), args, os.Stdin, os.Stdout, os.Stderr)
}

func runConvert(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupConvertFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	// Accept the input as a positional argument too.
	if flags.Input == "" && fs.NArg() == 1 {
		flags.Input = fs.Arg(0)
	}
	if flags.Input == "" || fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one input (use -i or --input)")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{flags.Input, flags.Project}); err != nil {
			return err
		}
	}

	logger := apidoc.NewHclogAdapter(NewLogger(stderr, flags.Verbose, flags.Quiet))

	opts := []converter.Option{
		converter.WithStrictMode(flags.Strict),
		converter.WithValidation(flags.Validate),
		converter.WithIncludeInfo(!flags.NoInfo),
		converter.WithLogger(logger),
	}
	if flags.Input == StdinFilePath {
		opts = append(opts, converter.WithReader(stdin))
	} else {
		opts = append(opts, converter.WithFilePath(flags.Input))
	}
	if flags.Project != "" {
		opts = append(opts, converter.WithProjectFilePath(flags.Project))
	}

	startTime := time.Now()
	result, err := converter.ConvertWithOptions(ctx, opts...)
	totalTime := time.Since(startTime)
	if result == nil {
		return fmt.Errorf("converting %s: %w", FormatSourcePath(flags.Input), err)
	}

	if !flags.Quiet {
		printConvertSummary(stderr, flags.Input, result, totalTime)
	}

	// Strict mode failures still carry a result, but nothing is written.
	if err != nil {
		return err
	}

	data, err := MarshalDocument(result.Document, flags.Format)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	if err := cliutil.WriteOutput(flags.Output, data, stdout); err != nil {
		return err
	}
	if flags.Output != "" && !flags.Quiet {
		cliutil.Writef(stderr, "\nOutput written to: %s\n", flags.Output)
	}

	if !result.Success {
		return fmt.Errorf("conversion completed with %d error(s)", result.ErrorCount)
	}
	return nil
}

func printConvertSummary(w io.Writer, input string, result *converter.ConversionResult, totalTime time.Duration) {
	OutputHeader(w, "apidoc to OpenAPI Converter")
	cliutil.Writef(w, "Input: %s\n", FormatSourcePath(input))
	cliutil.Writef(w, "Source Size: %s\n", FormatBytes(result.SourceSize))
	cliutil.Writef(w, "Endpoints: %d\n", result.EndpointCount)
	cliutil.Writef(w, "Paths: %d\n", result.Stats.PathCount)
	cliutil.Writef(w, "Operations: %d\n", result.Stats.OperationCount)
	cliutil.Writef(w, "Schemas: %d\n", result.Stats.SchemaCount)
	cliutil.Writef(w, "Total Time: %v\n\n", totalTime)

	if len(result.Issues) > 0 {
		cliutil.Writef(w, "Conversion Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			cliutil.Writef(w, "  %s\n", issue.String())
		}
		cliutil.Writef(w, "\n")
	}

	if result.Success {
		cliutil.Writef(w, "✓ Conversion successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			cliutil.Writef(w, " (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		if result.Validated {
			cliutil.Writef(w, ", validated")
		}
		cliutil.Writef(w, "\n")
	} else {
		cliutil.Writef(w, "✗ Conversion completed with %d error(s)", result.ErrorCount)
		if result.WarningCount > 0 {
			cliutil.Writef(w, ", %d warning(s)", result.WarningCount)
		}
		cliutil.Writef(w, "\n")
	}
}
