package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/apidoc2oas/internal/cliutil"
	"github.com/erraggy/apidoc2oas/internal/payload"
	"github.com/erraggy/apidoc2oas/internal/schemainfer"
)

// InferFlags contains flags for the infer command
type InferFlags struct {
	Title  string
	Format string
	Output string
}

// SetupInferFlags creates and configures a FlagSet for the infer command.
func SetupInferFlags() (*flag.FlagSet, *InferFlags) {
	fs := flag.NewFlagSet("infer", flag.ContinueOnError)
	flags := &InferFlags{}

	fs.StringVar(&flags.Title, "t", "", "schema title")
	fs.StringVar(&flags.Title, "title", "", "schema title")
	fs.StringVar(&flags.Format, "f", FormatJSON, "output format: json or yaml")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidoc2oas infer [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Infer a JSON schema skeleton from an example payload.\n")
		cliutil.Writef(fs.Output(), "The payload may start with an HTTP status line.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  apidoc2oas infer -t User response.txt\n")
		cliutil.Writef(fs.Output(), "  curl -si https://api.example.com/users/7 | apidoc2oas infer -f yaml -\n")
	}

	return fs, flags
}

// HandleInfer executes the infer command
func HandleInfer(args []string) error {
	return runInfer(args, os.Stdin, os.Stdout, os.Stderr)
}

func runInfer(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupInferFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("infer command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	content, err := readSource(fs.Arg(0), stdin)
	if err != nil {
		return fmt.Errorf("reading %s: %w", FormatSourcePath(fs.Arg(0)), err)
	}

	p, err := payload.Extract(string(content))
	if err != nil {
		return err
	}

	data, err := MarshalValue(schemainfer.Infer(flags.Title, p.Value), flags.Format)
	if err != nil {
		return err
	}
	return cliutil.WriteOutput(flags.Output, data, stdout)
}
