package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/romellogoodman/monolith/internal/agent"
	"github.com/romellogoodman/monolith/internal/agent/commands"
	"github.com/romellogoodman/monolith/internal/formatting"
)

var callJSON string

var callCmd = &cobra.Command{
	Use:   "call <tool> [key=value ...]",
	Short: "Call a function or discovery tool",
	Long: `Calls a tool and prints its result. Arguments are given as key=value
pairs; values are decoded as JSON where possible, so numbers, booleans,
arrays and objects keep their type. --json supplies the arguments as one JSON
object; key=value pairs override its fields.

The command exits non-zero when the tool call fails or the function
reports a failure envelope.

Examples:
  monolith call strings/toCamelCase input=hello-world
  monolith call strings/truncate input="Hello World" length=8
  monolith call data/arrays/sortBy --json '{"array":[{"n":2},{"n":1}],"key":"n"}'
  monolith call search_functions query=date -o json`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeFunctionNames,
	RunE:              runCall,
}

func runCall(cmd *cobra.Command, args []string) error {
	formatter, err := clientOpts.formatter()
	if err != nil {
		return err
	}

	toolArgs, err := buildCallArgs(callJSON, args[1:])
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	client, err := clientOpts.connect(ctx, cmd, clientOpts.logger(cmd))
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := client.CallTool(ctx, args[0], toolArgs)
	if err != nil {
		return err
	}

	data := formatting.DecodeText(agent.ResultText(result))
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatData(data))

	if result.IsError {
		return fmt.Errorf("tool %s failed", args[0])
	}
	if envelope, ok := data.(map[string]interface{}); ok && envelope["success"] == false {
		return fmt.Errorf("%s failed: %v (%v)", args[0], envelope["error"], envelope["errorCode"])
	}
	return nil
}

// buildCallArgs merges the --json object with key=value pairs.
func buildCallArgs(rawJSON string, pairs []string) (map[string]interface{}, error) {
	toolArgs := map[string]interface{}{}
	if rawJSON != "" {
		if err := json.Unmarshal([]byte(rawJSON), &toolArgs); err != nil {
			return nil, fmt.Errorf("--json must be a JSON object: %w", err)
		}
		if toolArgs == nil {
			toolArgs = map[string]interface{}{}
		}
	}

	overrides, err := commands.ParseKeyValueArgs(pairs)
	if err != nil {
		return nil, err
	}
	for k, v := range overrides {
		toolArgs[k] = v
	}
	return toolArgs, nil
}

func init() {
	rootCmd.AddCommand(callCmd)
	addClientFlags(callCmd)
	callCmd.Flags().StringVar(&callJSON, "json", "", "Arguments as a JSON object")
}
