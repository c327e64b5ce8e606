package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/metrics"
	"github.com/romellogoodman/monolith/internal/schema"
	"github.com/romellogoodman/monolith/pkg/logging"
)

// DuplicateToolError is returned by NewRouter when two providers, or one
// provider twice, expose the same tool name.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("tool %q is exposed more than once", e.Name)
}

// route binds a tool name to the provider that executes it and to the
// argument metadata it is validated against.
type route struct {
	provider api.ToolProvider
	meta     api.ToolMetadata
}

// Router resolves tool names, validates arguments and executes tools. The
// lookup table is built once from the providers' GetTools and is read-only
// afterwards, so the listing returned by Tools and the set of dispatchable
// names can never drift apart.
type Router struct {
	routes  map[string]route
	order   []string
	metrics *metrics.Recorder
}

// Option configures a Router.
type Option func(*Router)

// WithMetrics records every call on rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(r *Router) {
		r.metrics = rec
	}
}

// NewRouter builds the dispatch table from providers, in order.
//
// Args:
//   - providers: every component that exposes tools
//   - opts: optional router settings
//
// Returns:
//   - *Router: the router
//   - error: *DuplicateToolError when a name is exposed more than once
func NewRouter(providers []api.ToolProvider, opts ...Option) (*Router, error) {
	r := &Router{routes: make(map[string]route)}
	for _, opt := range opts {
		opt(r)
	}

	for _, p := range providers {
		for _, meta := range p.GetTools() {
			if _, exists := r.routes[meta.Name]; exists {
				return nil, &DuplicateToolError{Name: meta.Name}
			}
			r.routes[meta.Name] = route{provider: p, meta: meta}
			r.order = append(r.order, meta.Name)
		}
	}

	logging.Debug("Dispatch", "Router ready with %d tools from %d providers", len(r.order), len(providers))
	return r, nil
}

// Tools returns the metadata of every dispatchable tool in registration
// order. This is the capability listing served to clients.
func (r *Router) Tools() []api.ToolMetadata {
	tools := make([]api.ToolMetadata, len(r.order))
	for i, name := range r.order {
		tools[i] = r.routes[name].meta
	}
	return tools
}

// Lookup returns the metadata of one tool.
func (r *Router) Lookup(name string) (api.ToolMetadata, bool) {
	rt, ok := r.routes[name]
	return rt.meta, ok
}

// Call runs the dispatch pipeline for one request. It never returns an
// error and never panics: every pipeline failure (unknown tool, invalid
// arguments, a provider error or panic) becomes a TOOL_EXECUTION_ERROR
// result with IsError set. A provider result is returned unchanged.
//
// Args:
//   - ctx: request context, passed to the provider
//   - name: tool name as sent by the client
//   - args: raw argument bag; nil is treated as empty
//
// Returns:
//   - *api.CallToolResult: the provider result or a failure payload
func (r *Router) Call(ctx context.Context, name string, args map[string]interface{}) (result *api.CallToolResult) {
	requestID := uuid.NewString()
	start := time.Now()
	label := name
	outcome := metrics.OutcomePipelineError

	defer func() {
		if rec := recover(); rec != nil {
			logging.Error("Dispatch", fmt.Errorf("panic: %v", rec), "[%s] Tool %s panicked", requestID, name)
			result = api.ExecutionErrorResult(fmt.Sprintf("Internal error while executing %s: %v", name, rec))
			outcome = metrics.OutcomePipelineError
		}
		elapsed := time.Since(start)
		r.metrics.ObserveCall(label, outcome, elapsed)
		logging.Debug("Dispatch", "[%s] Tool %s finished with outcome %s in %s", requestID, name, outcome, elapsed)
	}()

	logging.Debug("Dispatch", "[%s] Calling tool %s", requestID, name)

	rt, ok := r.routes[name]
	if !ok {
		label = metrics.UnknownTool
		logging.Warn("Dispatch", "[%s] Unknown tool %q", requestID, name)
		return api.ExecutionErrorResult("Unknown tool: " + name)
	}

	if err := ctx.Err(); err != nil {
		return api.ExecutionErrorResult(fmt.Sprintf("Request cancelled: %v", err))
	}

	normalized, err := schema.Validate(rt.meta.Args, args)
	if err != nil {
		logging.Info("Dispatch", "[%s] Rejected arguments for %s: %v", requestID, name, err)
		return api.ExecutionErrorResult(err.Error())
	}

	res, err := rt.provider.ExecuteTool(ctx, name, normalized)
	if err != nil {
		logging.Error("Dispatch", err, "[%s] Tool execution failed for %s", requestID, name)
		return api.ExecutionErrorResult(err.Error())
	}
	if res == nil {
		return api.ExecutionErrorResult(fmt.Sprintf("Tool %s returned no result", name))
	}

	outcome = classify(res)
	return res
}

// classify derives the metric outcome of a provider result. Text content
// that decodes to an envelope with success=false is an envelope error.
func classify(res *api.CallToolResult) metrics.Outcome {
	if res.IsError {
		return metrics.OutcomePipelineError
	}
	if len(res.Content) == 0 {
		return metrics.OutcomeSuccess
	}
	text, ok := res.Content[0].(string)
	if !ok {
		return metrics.OutcomeSuccess
	}

	var envelope struct {
		Success *bool `json:"success"`
	}
	if json.Unmarshal([]byte(text), &envelope) == nil && envelope.Success != nil && !*envelope.Success {
		return metrics.OutcomeEnvelopeError
	}
	return metrics.OutcomeSuccess
}
