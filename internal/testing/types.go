package testing

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// TestResult is the outcome of a step or scenario.
type TestResult string

const (
	// ResultPassed indicates every expectation held
	ResultPassed TestResult = "PASSED"
	// ResultFailed indicates an expectation was not met
	ResultFailed TestResult = "FAILED"
	// ResultSkipped indicates the scenario was marked skip
	ResultSkipped TestResult = "SKIPPED"
	// ResultError indicates the call itself could not be made
	ResultError TestResult = "ERROR"
)

// ToolCaller executes MCP tools. agent.Client satisfies it.
type ToolCaller interface {
	CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error)
}

// TestConfiguration controls a test run.
type TestConfiguration struct {
	// Category keeps only scenarios of this function category
	Category string `json:"category,omitempty"`
	// Scenario keeps only the scenario with this name
	Scenario string `json:"scenario,omitempty"`
	// Tag keeps only scenarios carrying this tag
	Tag string `json:"tag,omitempty"`
	// Parallel is the number of scenarios executed at once
	Parallel int `json:"parallel"`
	// FailFast stops scheduling scenarios after the first failure
	FailFast bool `json:"fail_fast"`
	// Timeout bounds each scenario that sets no timeout of its own
	Timeout time.Duration `json:"timeout"`
	// ReportPath receives the suite result as JSON when set
	ReportPath string `json:"report_path,omitempty"`
}

// TestScenario is a named sequence of tool calls with expectations.
type TestScenario struct {
	Name        string        `yaml:"name" json:"name"`
	Category    string        `yaml:"category" json:"category"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string      `yaml:"tags,omitempty" json:"tags,omitempty"`
	Skip        bool          `yaml:"skip,omitempty" json:"skip,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	Steps       []TestStep    `yaml:"steps" json:"steps"`
}

// TestStep is a single tool call.
type TestStep struct {
	ID          string                 `yaml:"id" json:"id"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Tool        string                 `yaml:"tool" json:"tool"`
	Args        map[string]interface{} `yaml:"args,omitempty" json:"args,omitempty"`
	Expected    TestExpectation        `yaml:"expected" json:"expected"`
	Timeout     time.Duration          `yaml:"timeout,omitempty" json:"timeout,omitempty"`

	// Store saves the decoded response under this name. Later steps refer
	// to it in their args as {{ name.path }}.
	Store string `yaml:"store,omitempty" json:"store,omitempty"`
}

// TestExpectation describes the outcome a step must produce.
//
// Success compares against the envelope's success flag when the payload is
// an envelope. A discovery not-found payload counts as a failure, and any
// other payload succeeds unless the result is flagged as an error.
type TestExpectation struct {
	Success       bool                   `yaml:"success" json:"success"`
	IsError       *bool                  `yaml:"is_error,omitempty" json:"is_error,omitempty"`
	Result        interface{}            `yaml:"result,omitempty" json:"result,omitempty"`
	ErrorCode     string                 `yaml:"error_code,omitempty" json:"error_code,omitempty"`
	ErrorContains []string               `yaml:"error_contains,omitempty" json:"error_contains,omitempty"`
	Contains      []string               `yaml:"contains,omitempty" json:"contains,omitempty"`
	NotContains   []string               `yaml:"not_contains,omitempty" json:"not_contains,omitempty"`
	JSONPath      map[string]interface{} `yaml:"json_path,omitempty" json:"json_path,omitempty"`
}

// TestStepResult records one executed step.
type TestStepResult struct {
	Step     TestStep      `json:"step"`
	Result   TestResult    `json:"result"`
	Response string        `json:"response,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// TestScenarioResult records one executed scenario.
type TestScenarioResult struct {
	Scenario    TestScenario     `json:"scenario"`
	Result      TestResult       `json:"result"`
	StepResults []TestStepResult `json:"step_results"`
	Error       string           `json:"error,omitempty"`
	Duration    time.Duration    `json:"duration"`
}

// TestSuiteResult aggregates a run.
type TestSuiteResult struct {
	StartTime        time.Time            `json:"start_time"`
	EndTime          time.Time            `json:"end_time"`
	Duration         time.Duration        `json:"duration"`
	TotalScenarios   int                  `json:"total_scenarios"`
	PassedScenarios  int                  `json:"passed_scenarios"`
	FailedScenarios  int                  `json:"failed_scenarios"`
	SkippedScenarios int                  `json:"skipped_scenarios"`
	ErrorScenarios   int                  `json:"error_scenarios"`
	ScenarioResults  []TestScenarioResult `json:"scenario_results"`
	Configuration    TestConfiguration    `json:"configuration"`
}

// Succeeded reports whether no scenario failed or errored.
func (r *TestSuiteResult) Succeeded() bool {
	return r.FailedScenarios == 0 && r.ErrorScenarios == 0
}

// TestReporter receives progress events. Methods may be called from
// several goroutines when scenarios run in parallel.
type TestReporter interface {
	ReportStart(config TestConfiguration, scenarios int)
	ReportScenarioResult(result TestScenarioResult)
	ReportSuiteResult(result TestSuiteResult)
}
