package testing

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/romellogoodman/monolith/internal/template"
	"github.com/romellogoodman/monolith/pkg/logging"
)

// DefaultScenarioTimeout bounds a scenario when neither the scenario nor the
// configuration sets a timeout.
const DefaultScenarioTimeout = 30 * time.Second

// TestRunner executes scenarios against a ToolCaller.
type TestRunner struct {
	client   ToolCaller
	reporter TestReporter
	engine   *template.Engine
}

// NewTestRunner creates a runner. reporter may be nil.
func NewTestRunner(client ToolCaller, reporter TestReporter) *TestRunner {
	if reporter == nil {
		reporter = NewQuietReporter()
	}
	return &TestRunner{client: client, reporter: reporter, engine: template.New()}
}

// Run filters scenarios by config and executes them, config.Parallel at a
// time. Results keep the order of the filtered scenarios. With FailFast no
// new scenario starts after a failure; scenarios never started are left out
// of the result.
func (r *TestRunner) Run(ctx context.Context, config TestConfiguration, scenarios []TestScenario) (*TestSuiteResult, error) {
	selected := FilterScenarios(scenarios, config)
	suite := &TestSuiteResult{
		StartTime:      time.Now(),
		TotalScenarios: len(selected),
		Configuration:  config,
	}
	r.reporter.ReportStart(config, len(selected))

	workers := config.Parallel
	if workers < 1 {
		workers = 1
	}
	if workers > len(selected) {
		workers = len(selected)
	}

	results := make([]*TestScenarioResult, len(selected))
	jobs := make(chan int)
	var stop atomic.Bool
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range jobs {
				if stop.Load() || ctx.Err() != nil {
					continue
				}
				logging.Debug("TestRunner", "Worker %d running scenario %s", workerID, selected[i].Name)
				result := r.runScenario(ctx, selected[i], config)

				mu.Lock()
				results[i] = &result
				updateCounters(suite, result)
				mu.Unlock()

				r.reporter.ReportScenarioResult(result)
				if config.FailFast && (result.Result == ResultFailed || result.Result == ResultError) {
					stop.Store(true)
				}
			}
		}(w)
	}

	for i := range selected {
		if stop.Load() || ctx.Err() != nil {
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, res := range results {
		if res != nil {
			suite.ScenarioResults = append(suite.ScenarioResults, *res)
		}
	}
	suite.EndTime = time.Now()
	suite.Duration = suite.EndTime.Sub(suite.StartTime)

	r.reporter.ReportSuiteResult(*suite)

	if config.ReportPath != "" {
		path, err := SaveReport(config.ReportPath, *suite)
		if err != nil {
			return suite, err
		}
		logging.Info("TestRunner", "Detailed report saved to %s", path)
	}
	return suite, ctx.Err()
}

func (r *TestRunner) runScenario(ctx context.Context, scenario TestScenario, config TestConfiguration) TestScenarioResult {
	start := time.Now()
	result := TestScenarioResult{Scenario: scenario, Result: ResultPassed}

	if scenario.Skip {
		result.Result = ResultSkipped
		return result
	}

	timeout := scenario.Timeout
	if timeout <= 0 {
		timeout = config.Timeout
	}
	if timeout <= 0 {
		timeout = DefaultScenarioTimeout
	}
	scenarioCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stored := make(map[string]interface{})
	for _, step := range scenario.Steps {
		stepResult := r.runStep(scenarioCtx, step, stored)
		result.StepResults = append(result.StepResults, stepResult)
		if stepResult.Result != ResultPassed {
			result.Result = stepResult.Result
			result.Error = fmt.Sprintf("step %s: %s", step.ID, stepResult.Error)
			break
		}
		if step.Store != "" {
			var payload interface{}
			if err := json.Unmarshal([]byte(stepResult.Response), &payload); err != nil {
				payload = stepResult.Response
			}
			stored[step.Store] = payload
		}
	}

	result.Duration = time.Since(start)
	return result
}

func (r *TestRunner) runStep(ctx context.Context, step TestStep, stored map[string]interface{}) TestStepResult {
	start := time.Now()
	result := TestStepResult{Step: step, Result: ResultPassed}

	stepCtx := ctx
	if step.Timeout > 0 {
		var cancel context.CancelFunc
		stepCtx, cancel = context.WithTimeout(ctx, step.Timeout)
		defer cancel()
	}

	args, err := r.engine.ReplaceArgs(step.Args, stored)
	if err != nil {
		result.Result = ResultError
		result.Error = err.Error()
		return result
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	response, err := r.client.CallTool(stepCtx, step.Tool, args)
	result.Duration = time.Since(start)
	if err != nil {
		result.Result = ResultError
		result.Error = fmt.Sprintf("tool call failed: %v", err)
		return result
	}
	if response == nil {
		result.Result = ResultError
		result.Error = "tool call returned no result"
		return result
	}

	result.Response = responseText(response)
	if problems := validateExpectations(step.Expected, response); len(problems) > 0 {
		result.Result = ResultFailed
		result.Error = strings.Join(problems, "; ")
	}
	return result
}

func updateCounters(suite *TestSuiteResult, result TestScenarioResult) {
	switch result.Result {
	case ResultPassed:
		suite.PassedScenarios++
	case ResultFailed:
		suite.FailedScenarios++
	case ResultSkipped:
		suite.SkippedScenarios++
	case ResultError:
		suite.ErrorScenarios++
	}
}

// responseText joins the text content of a result.
func responseText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	var parts []string
	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// validateExpectations returns one message per unmet expectation.
func validateExpectations(expected TestExpectation, response *mcp.CallToolResult) []string {
	var problems []string
	text := responseText(response)

	var payload map[string]interface{}
	_ = json.Unmarshal([]byte(text), &payload)

	if expected.IsError != nil && response.IsError != *expected.IsError {
		problems = append(problems, fmt.Sprintf("expected is_error=%t, got %t", *expected.IsError, response.IsError))
	}

	if succeeded := payloadSucceeded(response, payload); succeeded != expected.Success {
		problems = append(problems, fmt.Sprintf("expected success=%t, got %t", expected.Success, succeeded))
	}

	if expected.Result != nil {
		actual, ok := payload["result"]
		if !ok {
			problems = append(problems, "response has no result")
		} else if !compareValues(actual, expected.Result) {
			problems = append(problems, fmt.Sprintf("expected result %v, got %v", expected.Result, actual))
		}
	}

	if expected.ErrorCode != "" {
		if code, _ := payload["errorCode"].(string); code != expected.ErrorCode {
			problems = append(problems, fmt.Sprintf("expected error code %s, got %q", expected.ErrorCode, code))
		}
	}

	if len(expected.ErrorContains) > 0 {
		message, _ := payload["error"].(string)
		for _, want := range expected.ErrorContains {
			if !containsText(message, want) {
				problems = append(problems, fmt.Sprintf("error %q does not contain %q", message, want))
			}
		}
	}

	for _, want := range expected.Contains {
		if !containsText(text, want) {
			problems = append(problems, fmt.Sprintf("response does not contain %q", want))
		}
	}
	for _, unwanted := range expected.NotContains {
		if containsText(text, unwanted) {
			problems = append(problems, fmt.Sprintf("response contains %q", unwanted))
		}
	}

	for path, want := range expected.JSONPath {
		actual, ok := template.Lookup(payload, path)
		if !ok {
			problems = append(problems, fmt.Sprintf("JSON path %q not found", path))
		} else if !compareValues(actual, want) {
			problems = append(problems, fmt.Sprintf("JSON path %q: expected %v, got %v", path, want, actual))
		}
	}

	return problems
}

// payloadSucceeded reads the outcome of a call: the envelope flag when the
// payload is an envelope, false for a discovery not-found payload, and
// otherwise the absence of the error flag.
func payloadSucceeded(response *mcp.CallToolResult, payload map[string]interface{}) bool {
	if response.IsError {
		return false
	}
	if ok, isEnvelope := payload["success"].(bool); isEnvelope {
		return ok
	}
	if _, notFound := payload["errorCode"]; notFound {
		return false
	}
	return true
}

// containsText is a case-insensitive substring check.
func containsText(text, expected string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(expected))
}

// compareValues compares a decoded JSON value with a YAML expectation. Both
// sides are normalized through JSON so integer and float forms of the same
// number match; a string expectation also matches the text form of a scalar.
func compareValues(actual, expected interface{}) bool {
	a, errA := normalize(actual)
	e, errE := normalize(expected)
	if errA == nil && errE == nil && reflect.DeepEqual(a, e) {
		return true
	}

	if expectedStr, ok := expected.(string); ok {
		switch actual.(type) {
		case map[string]interface{}, []interface{}:
			return false
		}
		return fmt.Sprintf("%v", actual) == expectedStr
	}
	return false
}

func normalize(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	err = json.Unmarshal(b, &out)
	return out, err
}
