package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/shlex"

	"github.com/romellogoodman/monolith/internal/agent/commands"
	"github.com/romellogoodman/monolith/internal/formatting"
)

// promptText is the REPL prompt.
const promptText = "monolith » "

// historyFileName is created in the user's temp directory.
const historyFileName = ".monolith_history"

// commandExecutionTimeout is the timeout for individual REPL command execution.
const commandExecutionTimeout = 5 * time.Minute

// REPL represents an interactive Read-Eval-Print Loop for exploring and
// calling the function catalog. It provides tab completion for commands,
// tool names and parameter names, plus persistent command history.
type REPL struct {
	client          *Client
	logger          *Logger
	rl              *readline.Instance
	commandRegistry *commands.Registry
	formats         *commands.FormatSelector
	historyFile     string
	stdin           io.ReadCloser
}

// NewREPL creates a new REPL instance with the specified client and logger.
// It registers all available commands with their aliases and completion
// handlers. Output starts in the given format.
//
// Example:
//
//	client := agent.NewClient("http://localhost:8090/mcp", logger, agent.TransportStreamableHTTP)
//	if err := client.Connect(ctx); err != nil {
//	    return err
//	}
//	repl := agent.NewREPL(client, logger, formatting.Options{Format: formatting.FormatConsole})
//	return repl.Run(ctx)
func NewREPL(client *Client, logger *Logger, options formatting.Options) *REPL {
	repl := &REPL{
		client:          client,
		logger:          logger,
		commandRegistry: commands.NewRegistry(),
		formats:         commands.NewFormatSelector(options),
		historyFile:     filepath.Join(os.TempDir(), historyFileName),
	}

	repl.registerCommands()

	return repl
}

// SetHistoryFile changes where command history is persisted. An empty path
// disables history.
func (r *REPL) SetHistoryFile(path string) {
	r.historyFile = path
}

// SetStdin reads commands from in instead of the terminal.
func (r *REPL) SetStdin(in io.ReadCloser) {
	r.stdin = in
}

func (r *REPL) registerCommands() {
	r.commandRegistry.Register("help", commands.NewHelpCommand(r.client, r.logger, r.formats, r.commandRegistry))
	r.commandRegistry.Register("list", commands.NewListCommand(r.client, r.logger, r.formats))
	r.commandRegistry.Register("search", commands.NewSearchCommand(r.client, r.logger, r.formats))
	r.commandRegistry.Register("categories", commands.NewCategoriesCommand(r.client, r.logger, r.formats))
	r.commandRegistry.Register("describe", commands.NewDescribeCommand(r.client, r.logger, r.formats))
	r.commandRegistry.Register("call", commands.NewCallCommand(r.client, r.logger, r.formats))
	r.commandRegistry.Register("format", commands.NewFormatCommand(r.client, r.logger, r.formats))
	r.commandRegistry.Register("exit", commands.NewExitCommand(r.client, r.logger, r.formats))
}

// tokenize splits a command line into words, honoring shell quoting. A JSON
// object argument is kept verbatim as the final word.
func tokenize(input string) ([]string, error) {
	if i := strings.Index(input, "{"); i >= 0 && !strings.ContainsAny(input[:i], `"'=`) {
		words := strings.Fields(input[:i])
		return append(words, strings.TrimSpace(input[i:])), nil
	}
	return shlex.Split(input)
}

// executeCommand parses and runs one line of input.
func (r *REPL) executeCommand(input string) error {
	parts, err := tokenize(input)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	if len(parts) == 0 {
		return nil
	}

	commandName := strings.ToLower(parts[0])
	args := parts[1:]

	if commandName == "?" {
		commandName = "help"
	}

	command, exists := r.commandRegistry.Get(commandName)
	if !exists {
		return fmt.Errorf("unknown command: %s. Type 'help' for available commands", parts[0])
	}

	commandCtx, commandCancel := context.WithTimeout(context.Background(), commandExecutionTimeout)
	defer commandCancel()

	return command.Execute(commandCtx, args)
}

// Run starts the REPL loop. It returns when the user exits, input ends, or
// ctx is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	config := &readline.Config{
		Prompt:          promptText,
		HistoryFile:     r.historyFile,
		AutoComplete:    r.createCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	}
	if r.stdin != nil {
		config.Stdin = r.stdin
		config.Stdout = r.logger.out
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	r.rl = rl

	r.logger.Info("Monolith REPL started. Type 'help' for available commands. Use TAB for completion.")

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("REPL shutting down...")
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				continue
			}
		} else if errors.Is(err, io.EOF) {
			r.logger.Info("Goodbye!")
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if err := r.executeCommand(input); err != nil {
			if errors.Is(err, commands.ErrExit) {
				r.logger.Info("Goodbye!")
				return nil
			}
			r.logger.Error("Error: %v", err)
		}

		// Tools may have changed after list refreshed the cache.
		r.rl.Config.AutoComplete = r.createCompleter()
		r.logger.OutputLine("")
	}
}
