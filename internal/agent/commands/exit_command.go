package commands

import "context"

// ExitCommand ends the REPL session.
type ExitCommand struct {
	*BaseCommand
}

func NewExitCommand(client ClientInterface, output OutputLogger, formats *FormatSelector) *ExitCommand {
	return &ExitCommand{BaseCommand: NewBaseCommand(client, output, formats)}
}

func (e *ExitCommand) Execute(context.Context, []string) error { return ErrExit }
func (e *ExitCommand) Usage() string { return "exit" }
func (e *ExitCommand) Description() string { return "Exit the REPL" }
func (e *ExitCommand) Completions(string) []string { return nil }
func (e *ExitCommand) Aliases() []string { return []string{"quit", "q"} }
