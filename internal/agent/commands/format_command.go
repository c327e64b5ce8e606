package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/romellogoodman/monolith/internal/formatting"
)

// FormatCommand shows or switches the output format of the session
type FormatCommand struct {
	*BaseCommand
}

// NewFormatCommand creates a new format command
func NewFormatCommand(client ClientInterface, output OutputLogger, formats *FormatSelector) *FormatCommand {
	return &FormatCommand{
		BaseCommand: NewBaseCommand(client, output, formats),
	}
}

// Execute prints the current format, or switches to the named one
func (f *FormatCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		f.output.OutputLine("Output format: %s", f.formatter().GetOptions().Format)
		return nil
	}

	format, ok := formatting.ParseFormat(strings.ToLower(args[0]))
	if !ok {
		return fmt.Errorf("unknown format: %s. Valid formats: %s", args[0], strings.Join(f.Completions(""), ", "))
	}

	f.formats.Select(format)
	f.output.Success("Output format set to %s", format)
	return nil
}

// Usage returns the usage string
func (f *FormatCommand) Usage() string {
	return "format [console|json|yaml|table]"
}

// Description returns the command description
func (f *FormatCommand) Description() string {
	return "Show or change the output format"
}

// Completions returns possible completions
func (f *FormatCommand) Completions(input string) []string {
	completions := make([]string, len(formatting.Formats))
	for i, format := range formatting.Formats {
		completions[i] = string(format)
	}
	return completions
}

// Aliases returns command aliases
func (f *FormatCommand) Aliases() []string {
	return []string{"output"}
}
