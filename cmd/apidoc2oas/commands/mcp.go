package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/apidoc2oas/internal/cliutil"
	"github.com/erraggy/apidoc2oas/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command. It takes no flags;
// the server is configured through APIDOC2OAS_* environment variables.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidoc2oas mcp\n\n")
		cliutil.Writef(fs.Output(), "Run an MCP server over stdio exposing the convert, infer_schema and\n")
		cliutil.Writef(fs.Output(), "list_endpoints tools. Defaults are read from APIDOC2OAS_* environment variables.\n")
	}
	return fs
}

// HandleMCP runs the MCP server until stdin closes or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
