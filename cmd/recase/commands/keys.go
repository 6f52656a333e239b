package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/recase"
	"github.com/erraggy/recase/renamer"
)

// KeysFlags contains flags for the keys command
type KeysFlags struct {
	To     string
	Output string
	Quiet  bool
}

// SetupKeysFlags creates and configures a FlagSet for the keys command.
// Returns the FlagSet and a KeysFlags struct with bound flag variables.
func SetupKeysFlags() (*flag.FlagSet, *KeysFlags) {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	flags := &KeysFlags{}

	fs.StringVar(&flags.To, "to", "", "target convention for every mapping key (required)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: recase keys -to <convention> [flags] <file|->\n\n")
		_, _ = fmt.Fprintf(output, "Rename every mapping key of a YAML or JSON document to one convention.\n")
		_, _ = fmt.Fprintf(output, "Key order, values, and comments are preserved. Keys that cannot be\n")
		_, _ = fmt.Fprintf(output, "converted or that would collide with a sibling are kept unchanged and\n")
		_, _ = fmt.Fprintf(output, "reported on stderr.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nConventions: %v\n", recase.ValidConventions())
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  recase keys -to snake values.yaml\n")
		_, _ = fmt.Fprintf(output, "  recase keys -to camel -o renamed.yaml config.json\n")
		_, _ = fmt.Fprintf(output, "  cat values.yaml | recase keys -q -to kebab - > renamed.yaml\n")
	}

	return fs, flags
}

// HandleKeys renames the mapping keys of one document.
func HandleKeys(args []string) error {
	fs, flags := SetupKeysFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if flags.To == "" {
		fs.Usage()
		return fmt.Errorf("keys command requires -to <convention>")
	}
	convention, err := recase.ParseConvention(flags.To)
	if err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("keys command requires exactly one file path (or '-' for stdin)")
	}

	content, err := ReadDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	result, err := renamer.RenameWithOptions(
		renamer.WithContent(content),
		renamer.WithConvention(convention),
	)
	if err != nil {
		return fmt.Errorf("renaming keys: %w", err)
	}

	if !flags.Quiet {
		for _, issue := range result.Issues {
			fmt.Fprintln(os.Stderr, issue)
		}
		fmt.Fprintf(os.Stderr, "Renamed %d of %d keys\n", result.RenamedCount, result.KeyCount)
	}

	if flags.Output != "" {
		if err := os.WriteFile(flags.Output, result.Document, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", flags.Output, err)
		}
		return nil
	}
	_, err = os.Stdout.Write(result.Document)
	return err
}
