package commands

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/romellogoodman/monolith/internal/formatting"
)

// CallCommand executes tools with arguments
type CallCommand struct {
	*BaseCommand
}

// NewCallCommand creates a new call command
func NewCallCommand(client ClientInterface, output OutputLogger, formats *FormatSelector) *CallCommand {
	return &CallCommand{
		BaseCommand: NewBaseCommand(client, output, formats),
	}
}

// Execute calls a tool with the given arguments
func (c *CallCommand) Execute(ctx context.Context, args []string) error {
	parsed, err := c.parseArgs(args, 1, c.Usage())
	if err != nil {
		return err
	}

	toolName := parsed[0]

	toolArgs, err := ParseToolArgs(parsed[1:])
	if err != nil {
		c.output.Error("%v", err)
		c.output.OutputLine("Example: call %s key=value other=123", toolName)
		return nil
	}

	c.output.Debug("Executing tool: %s...", toolName)

	result, err := c.client.CallTool(ctx, toolName, toolArgs)
	if err != nil {
		c.output.Error("Tool execution failed: %v", err)
		return nil
	}

	if result.IsError {
		c.output.OutputLine("Tool returned an error:")
	}

	for _, content := range result.Content {
		switch v := content.(type) {
		case mcp.TextContent:
			c.output.OutputLine(c.formatter().FormatData(formatting.DecodeText(v.Text)))
		case mcp.ImageContent:
			c.output.OutputLine("[Image: MIME type %s, %d bytes]", v.MIMEType, len(v.Data))
		case mcp.AudioContent:
			c.output.OutputLine("[Audio: MIME type %s, %d bytes]", v.MIMEType, len(v.Data))
		default:
			c.output.OutputLine("%+v", content)
		}
	}

	return nil
}

// Usage returns the usage string
func (c *CallCommand) Usage() string {
	return "call <tool-name> [key=value ...|json-arguments]"
}

// Description returns the command description
func (c *CallCommand) Description() string {
	return "Execute a tool with key=value or JSON arguments"
}

// Completions returns tool names for the first argument and "param="
// suggestions for the rest.
func (c *CallCommand) Completions(input string) []string {
	parts := strings.Fields(input)
	if len(parts) < 2 {
		return c.getToolCompletions()
	}

	tool := findToolByName(c.client.GetToolCache(), parts[1])
	var completions []string
	for _, name := range getToolParamNames(tool) {
		completions = append(completions, name+"=")
	}
	return completions
}

// Aliases returns command aliases
func (c *CallCommand) Aliases() []string {
	return []string{"run", "exec"}
}
