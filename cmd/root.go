package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments,
	// or a function that reported a failure envelope).
	ExitCodeError = 1
)

// rootCmd represents the base command for the monolith application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "monolith",
	Short: "Serve a catalog of utility functions over MCP",
	Long: `monolith exposes a fixed catalog of small utility functions (string case
conversion, date parsing, math, validation, encoding, CSV/JSON conversion and
array helpers) as MCP tools, together with discovery tools that let a client
search the catalog, list its categories and describe a function.

Run 'monolith serve' to start the MCP server. The list, search, describe,
categories, call and repl commands act as a client: they talk to a running
server given with --endpoint or a named context (see 'monolith context'),
or to an in-process server when neither is set.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "monolith version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCodeError)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
