package commands

import (
	"context"
	"strings"
)

// DescribeCommand shows detailed information about a function or tool
type DescribeCommand struct {
	*BaseCommand
}

// NewDescribeCommand creates a new describe command
func NewDescribeCommand(client ClientInterface, output OutputLogger, formats *FormatSelector) *DescribeCommand {
	return &DescribeCommand{
		BaseCommand: NewBaseCommand(client, output, formats),
	}
}

// Execute describes a utility function from the catalog. Names outside the
// catalog, such as the discovery tools, are described from the tool listing.
func (d *DescribeCommand) Execute(ctx context.Context, args []string) error {
	parsed, err := d.parseArgs(args, 1, d.Usage())
	if err != nil {
		return err
	}
	name := parsed[0]

	if strings.Contains(name, "/") {
		entry, err := d.client.Describe(ctx, name)
		if err != nil {
			d.output.Error("%v", err)
			return nil
		}
		d.output.OutputLine(d.formatter().FormatFunction(*entry))
		return nil
	}

	tool := d.formatter().FindTool(d.client.GetToolCache(), name)
	if tool == nil {
		d.output.Error("Tool not found: %s", name)
		return nil
	}

	d.output.OutputLine(d.formatter().FormatToolDetail(*tool))
	return nil
}

// Usage returns the usage string
func (d *DescribeCommand) Usage() string {
	return "describe <name>"
}

// Description returns the command description
func (d *DescribeCommand) Description() string {
	return "Show parameters, examples and tags of a function"
}

// Completions returns possible completions
func (d *DescribeCommand) Completions(input string) []string {
	return d.getToolCompletions()
}

// Aliases returns command aliases
func (d *DescribeCommand) Aliases() []string {
	return []string{"desc", "info"}
}
