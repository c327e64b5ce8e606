// Package commands implements the REPL commands of the monolith agent.
//
// Each command parses its own arguments and offers its own completions; the
// REPL only splits the input line and looks the command up in a Registry.
package commands

import (
	"context"
	"errors"
	"sort"
)

// ErrExit is returned by the exit command to end the REPL loop.
var ErrExit = errors.New("exit")

// Command is a single REPL command.
type Command interface {
	Execute(ctx context.Context, args []string) error
	Usage() string
	Description() string
	// Completions lists candidates for the word after the command name.
	Completions(input string) []string
	Aliases() []string
}

// OutputLogger is where commands write. Output and OutputLine carry results
// and go to stdout; the remaining methods are timestamped status lines.
type OutputLogger interface {
	Output(format string, args ...interface{})
	OutputLine(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Error(format string, args ...interface{})
	Success(format string, args ...interface{})
}

// Registry maps command names and aliases to commands.
type Registry struct {
	commands map[string]Command

	// names resolves a primary name or an alias to the primary name.
	names map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		names:    make(map[string]string),
	}
}

// Register adds cmd under name and all of its aliases. A later registration
// of the same name or alias wins.
func (r *Registry) Register(name string, cmd Command) {
	r.commands[name] = cmd
	r.names[name] = name
	for _, alias := range cmd.Aliases() {
		r.names[alias] = name
	}
}

// Resolve returns the primary name for a command name or alias.
func (r *Registry) Resolve(name string) (string, bool) {
	primary, ok := r.names[name]
	return primary, ok
}

// Get looks a command up by name or alias.
func (r *Registry) Get(name string) (Command, bool) {
	primary, ok := r.Resolve(name)
	if !ok {
		return nil, false
	}
	cmd, ok := r.commands[primary]
	return cmd, ok
}

// List returns the primary command names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllCompletions returns every name and alias, sorted.
func (r *Registry) AllCompletions() []string {
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
