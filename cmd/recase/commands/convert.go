package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/recase"
)

// ConvertFlags contains flags for the per-convention convert commands
type ConvertFlags struct {
	Format string
}

// SetupConvertFlags creates and configures a FlagSet for a convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags(target string) (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet(target, flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: recase %s [flags] [text ...]\n\n", target)
		_, _ = fmt.Fprintf(output, "Convert each input to %s. With no arguments (or a single '-'),\n", target)
		_, _ = fmt.Fprintf(output, "inputs are read from stdin, one per line.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  recase %s \"SCREEN_NAME\" \"first name\"\n", target)
		_, _ = fmt.Fprintf(output, "  echo user_id | recase %s -\n", target)
		_, _ = fmt.Fprintf(output, "  recase %s -format json helloWorld\n", target)
	}

	return fs, flags
}

// conversionResult is one converted input in structured output.
type conversionResult struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// HandleConvert converts each input to the convention named by target.
func HandleConvert(target string, args []string) error {
	fs, flags := SetupConvertFlags(target)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	convention, err := recase.ParseConvention(target)
	if err != nil {
		return err
	}

	inputs, err := GatherInputs(fs.Args(), os.Stdin)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		fs.Usage()
		return fmt.Errorf("%s command requires at least one input", target)
	}

	results := make([]conversionResult, 0, len(inputs))
	failed := 0
	for _, input := range inputs {
		result := conversionResult{Input: input}
		converted, err := recase.Convert(input, convention)
		if err != nil {
			result.Error = err.Error()
			failed++
		} else {
			result.Output = converted
		}
		results = append(results, result)
	}

	if flags.Format == FormatText {
		for _, result := range results {
			if result.Error != "" {
				fmt.Fprintf(os.Stderr, "Error: %q: %s\n", result.Input, result.Error)
				continue
			}
			fmt.Println(result.Output)
		}
	} else {
		if err := OutputStructured(results, flags.Format); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to convert %d of %d inputs", failed, len(inputs))
	}
	return nil
}
