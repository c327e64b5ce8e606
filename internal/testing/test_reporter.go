package testing

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// consoleReporter prints one line per scenario and a summary.
type consoleReporter struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// NewTestReporter creates a human-readable reporter writing to out. In
// verbose mode every step is listed; otherwise only failing steps are.
func NewTestReporter(out io.Writer, verbose bool) TestReporter {
	return &consoleReporter{out: out, verbose: verbose}
}

func (r *consoleReporter) ReportStart(config TestConfiguration, scenarios int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.out, "🧪 Running %d scenario(s)", scenarios)
	if config.Parallel > 1 {
		fmt.Fprintf(r.out, " with %d workers", config.Parallel)
	}
	fmt.Fprintln(r.out)

	if r.verbose {
		fmt.Fprintf(r.out, "   • Category: %s\n", stringOrDefault(config.Category, "all"))
		fmt.Fprintf(r.out, "   • Scenario: %s\n", stringOrDefault(config.Scenario, "all"))
		fmt.Fprintf(r.out, "   • Tag: %s\n", stringOrDefault(config.Tag, "any"))
		fmt.Fprintf(r.out, "   • Fail fast: %t\n", config.FailFast)
	}
	fmt.Fprintln(r.out)
}

func (r *consoleReporter) ReportScenarioResult(result TestScenarioResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.out, "%s %s (%v)\n", resultSymbol(result.Result), result.Scenario.Name, result.Duration.Round(time.Microsecond))

	for _, step := range result.StepResults {
		if step.Result == ResultPassed && !r.verbose {
			continue
		}
		fmt.Fprintf(r.out, "   %s %s → %s", resultSymbol(step.Result), step.Step.ID, step.Step.Tool)
		if step.Error != "" {
			fmt.Fprintf(r.out, ": %s", step.Error)
		}
		fmt.Fprintln(r.out)
		if step.Result != ResultPassed && step.Response != "" {
			fmt.Fprintln(r.out, indentText(step.Response, "      "))
		}
	}
}

func (r *consoleReporter) ReportSuiteResult(result TestSuiteResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.out, "\n🏁 Test Suite Complete\n")
	fmt.Fprintf(r.out, "⏱️  Duration: %v\n", result.Duration.Round(time.Millisecond))
	fmt.Fprintf(r.out, "📊 Results:\n")
	fmt.Fprintf(r.out, "   ✅ Passed: %d\n", result.PassedScenarios)
	if result.FailedScenarios > 0 {
		fmt.Fprintf(r.out, "   ❌ Failed: %d\n", result.FailedScenarios)
	}
	if result.ErrorScenarios > 0 {
		fmt.Fprintf(r.out, "   💥 Errors: %d\n", result.ErrorScenarios)
	}
	if result.SkippedScenarios > 0 {
		fmt.Fprintf(r.out, "   ⏭️  Skipped: %d\n", result.SkippedScenarios)
	}
	fmt.Fprintf(r.out, "   📈 Total: %d\n", result.TotalScenarios)

	if result.Succeeded() {
		fmt.Fprintf(r.out, "\n🎉 All tests passed!\n")
	} else {
		fmt.Fprintf(r.out, "\n💔 Some tests failed\n")
	}
}

// jsonReporter prints only the suite result as JSON.
type jsonReporter struct {
	out io.Writer
}

// NewJSONReporter creates a reporter that writes the final suite result as
// indented JSON and nothing else.
func NewJSONReporter(out io.Writer) TestReporter {
	return &jsonReporter{out: out}
}

func (r *jsonReporter) ReportStart(TestConfiguration, int) {}
func (r *jsonReporter) ReportScenarioResult(TestScenarioResult) {}

func (r *jsonReporter) ReportSuiteResult(result TestSuiteResult) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(r.out, `{"error": %q}`+"\n", err.Error())
		return
	}
	fmt.Fprintln(r.out, string(data))
}

type quietReporter struct{}

// NewQuietReporter discards every event.
func NewQuietReporter() TestReporter {
	return quietReporter{}
}

func (quietReporter) ReportStart(TestConfiguration, int) {}
func (quietReporter) ReportScenarioResult(TestScenarioResult) {}
func (quietReporter) ReportSuiteResult(TestSuiteResult) {}

// SaveReport writes result as JSON into dir, creating it when needed, and
// returns the path of the report file.
func SaveReport(dir string, result TestSuiteResult) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("monolith-test-report-%s.json", result.StartTime.Format("20060102-150405")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return path, nil
}

func resultSymbol(result TestResult) string {
	switch result {
	case ResultPassed:
		return "✅"
	case ResultFailed:
		return "❌"
	case ResultSkipped:
		return "⏭️"
	case ResultError:
		return "💥"
	default:
		return "❓"
	}
}

func stringOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func indentText(text, indent string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
