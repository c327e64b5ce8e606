package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/romellogoodman/monolith/internal/formatting"
	scenariotest "github.com/romellogoodman/monolith/internal/testing"
)

var (
	testScenarioPath string
	testCategory     string
	testScenario     string
	testTag          string
	testParallel     int
	testFailFast     bool
	testTimeout      time.Duration
	testReportPath   string
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run test scenarios against a monolith server",
	Long: `Executes YAML test scenarios: sequences of tool calls with expected
outcomes. Without --scenarios the built-in scenarios run, covering every
function of the catalog and the discovery tools.

The server is chosen like for the other client commands: --endpoint, a
named context, or an in-process server.

Examples:
  monolith test                                  # Built-in scenarios, in-process
  monolith test --category math --verbose
  monolith test --tag smoke --parallel 4
  monolith test --scenarios ./scenarios --fail-fast
  monolith test --context staging -o json
  monolith test --report ./reports

Scenario format:
  name: math-clamp
  category: math
  steps:
    - id: clamp-above
      tool: math/clamp
      args: {value: 100, min: 0, max: 50}
      expected: {success: true, result: 50}`,
	Args: cobra.NoArgs,
	RunE: runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
	addClientFlags(testCmd)

	testCmd.Flags().StringVar(&testScenarioPath, "scenarios", "", "Scenario file or directory (default: built-in scenarios)")
	testCmd.Flags().StringVar(&testCategory, "category", "", "Run only scenarios of this category")
	testCmd.Flags().StringVar(&testScenario, "scenario", "", "Run only the scenario with this name")
	testCmd.Flags().StringVar(&testTag, "tag", "", "Run only scenarios with this tag")
	testCmd.Flags().IntVar(&testParallel, "parallel", 1, "Number of scenarios run at once (1-20)")
	testCmd.Flags().BoolVar(&testFailFast, "fail-fast", false, "Stop after the first failing scenario")
	testCmd.Flags().DurationVar(&testTimeout, "timeout", scenariotest.DefaultScenarioTimeout, "Timeout for scenarios that set none")
	testCmd.Flags().StringVar(&testReportPath, "report", "", "Directory receiving a detailed JSON report")

	_ = testCmd.RegisterFlagCompletionFunc("scenario", completeScenarioNames)
	_ = testCmd.RegisterFlagCompletionFunc("category", completeCategories)
}

func completeScenarioNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	scenarios, err := scenariotest.LoadScenarios(testScenarioPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return scenariotest.ScenarioNames(scenarios), cobra.ShellCompDirectiveNoFileComp
}

func runTest(cmd *cobra.Command, args []string) error {
	if testParallel < 1 || testParallel > 20 {
		return fmt.Errorf("--parallel must be between 1 and 20, got %d", testParallel)
	}
	options, err := clientOpts.formatOptions()
	if err != nil {
		return err
	}

	scenarios, err := scenariotest.LoadScenarios(testScenarioPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := clientOpts.connect(ctx, cmd, clientOpts.logger(cmd))
	if err != nil {
		return err
	}
	defer client.Close()

	out := cmd.OutOrStdout()
	var reporter scenariotest.TestReporter
	switch {
	case options.Format == formatting.FormatJSON:
		reporter = scenariotest.NewJSONReporter(out)
	case options.Quiet:
		reporter = scenariotest.NewQuietReporter()
	default:
		reporter = scenariotest.NewTestReporter(out, clientOpts.verbose)
	}

	config := scenariotest.TestConfiguration{
		Category:   testCategory,
		Scenario:   testScenario,
		Tag:        testTag,
		Parallel:   testParallel,
		FailFast:   testFailFast,
		Timeout:    testTimeout,
		ReportPath: testReportPath,
	}

	result, err := scenariotest.NewTestRunner(client, reporter).Run(ctx, config, scenarios)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("test run interrupted: %w", context.Cause(ctx))
		}
		return err
	}
	if result.TotalScenarios == 0 {
		return fmt.Errorf("no scenarios match the given filters")
	}
	if !result.Succeeded() {
		return fmt.Errorf("%d of %d scenario(s) failed", result.FailedScenarios+result.ErrorScenarios, result.TotalScenarios)
	}
	return nil
}
