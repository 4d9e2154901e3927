package main

import (
	"fmt"
	"os"

	"github.com/erraggy/apidoc2oas"
	"github.com/erraggy/apidoc2oas/cmd/apidoc2oas/commands"
)

// commandNames lists the subcommands used for typo suggestions.
var commandNames = []string{"convert", "infer", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("apidoc2oas v%s\n", apidoc2oas.Version())
		fmt.Printf("commit: %s\n", apidoc2oas.Commit())
		fmt.Printf("built: %s (%s)\n", apidoc2oas.BuildTime(), apidoc2oas.GoVersion())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "convert":
		err = commands.HandleConvert(os.Args[2:])
	case "infer":
		err = commands.HandleInfer(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `apidoc2oas - convert apidoc exports to OpenAPI 3.0

Usage:
  apidoc2oas <command> [flags]

Commands:
  convert    Convert api_data.json (and api_project.json) to an OpenAPI document
  infer      Infer a JSON schema skeleton from an example payload
  mcp        Run an MCP server over stdio
  version    Print version information
  help       Show this help

Run 'apidoc2oas <command> --help' for command flags.
`)
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
