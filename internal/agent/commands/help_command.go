package commands

import (
	"context"
	"strings"
)

// shortcuts are the readline key bindings worth knowing about.
var shortcuts = [][2]string{
	{"TAB", "complete commands, tool names and parameters"},
	{"Up/Down", "walk through history"},
	{"Ctrl+R", "search history"},
	{"Ctrl+C", "discard the current line"},
	{"Ctrl+D", "leave the REPL"},
}

var helpExamples = []string{
	"search case",
	"search valid category=validation",
	"describe strings/truncate",
	`call strings/truncate input="Hello World" length=8`,
	`call data/arrays/unique {"array": [1, 2, 2, 3]}`,
	"format table",
}

// HelpCommand lists the commands, or explains one of them.
type HelpCommand struct {
	*BaseCommand
	registry *Registry
}

func NewHelpCommand(client ClientInterface, output OutputLogger, formats *FormatSelector, registry *Registry) *HelpCommand {
	return &HelpCommand{
		BaseCommand: NewBaseCommand(client, output, formats),
		registry:    registry,
	}
}

func (h *HelpCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		h.overview()
		return nil
	}

	name, ok := h.registry.Resolve(strings.ToLower(args[0]))
	if !ok {
		h.output.Error("Unknown command: %s", args[0])
		h.output.OutputLine("Use 'help' to see all available commands.")
		return nil
	}
	cmd, _ := h.registry.Get(name)

	h.output.OutputLine("Command: %s", name)
	h.output.OutputLine("Description: %s", cmd.Description())
	h.output.OutputLine("Usage: %s", cmd.Usage())
	if aliases := cmd.Aliases(); len(aliases) > 0 {
		h.output.OutputLine("Aliases: %s", strings.Join(aliases, ", "))
	}
	return nil
}

func (h *HelpCommand) overview() {
	h.output.OutputLine("Available commands:")
	for _, name := range h.registry.List() {
		cmd, _ := h.registry.Get(name)
		h.output.OutputLine("  %-44s %s", cmd.Usage(), cmd.Description())
	}

	h.output.OutputLine("")
	h.output.OutputLine("Keyboard shortcuts:")
	for _, s := range shortcuts {
		h.output.OutputLine("  %-10s %s", s[0], s[1])
	}

	h.output.OutputLine("")
	h.output.OutputLine("Examples:")
	for _, example := range helpExamples {
		h.output.OutputLine("  %s", example)
	}
}

func (h *HelpCommand) Usage() string { return "help [command]" }
func (h *HelpCommand) Description() string { return "Show help information for commands" }
func (h *HelpCommand) Aliases() []string { return []string{"?"} }

func (h *HelpCommand) Completions(input string) []string {
	return h.registry.AllCompletions()
}
