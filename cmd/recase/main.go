package main

import (
	"context"
	"fmt"
	"os"

	"github.com/erraggy/recase"
	"github.com/erraggy/recase/cmd/recase/commands"
	"github.com/erraggy/recase/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("recase v%s\n", recase.Version())
	case "help", "-h", "--help":
		printUsage()
	case "camel", "pascal", "snake", "screaming-snake", "kebab", "dot", "title":
		if err := commands.HandleConvert(command, os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "keys":
		if err := commands.HandleKeys(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists every command suggestCommand may propose.
var knownCommands = []string{
	"camel", "pascal", "snake", "screaming-snake", "kebab", "dot", "title",
	"keys", "mcp", "version", "help",
}

// suggestCommand returns the known command closest to input, or "" when no
// command is within edit distance 2.
func suggestCommand(input string) string {
	best := ""
	bestDistance := 3
	for _, candidate := range knownCommands {
		if d := editDistance(input, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`recase - Identifier Case Conversion Tools

Usage:
  recase <command> [options]

Commands:
  camel            Convert inputs to camelCase
  pascal           Convert inputs to PascalCase
  snake            Convert inputs to snake_case
  screaming-snake  Convert inputs to SCREAMING_SNAKE_CASE
  kebab            Convert inputs to kebab-case
  dot              Convert inputs to dot.case
  title            Convert inputs to Title Case
  keys             Rename every mapping key of a YAML/JSON document
  mcp              Run the MCP server over stdio
  version          Show version information
  help             Show this help message

Examples:
  recase camel "SCREEN_NAME" "first name"
  recase kebab helloWorld
  echo user_id | recase dot -
  recase keys -to snake values.yaml
  cat config.json | recase keys -to camel - > renamed.yaml

Run 'recase <command> --help' for more information on a command.`)
}
