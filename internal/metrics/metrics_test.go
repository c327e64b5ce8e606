package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveCall(t *testing.T) {
	r := NewRecorder()

	r.ObserveCall("math/clamp", OutcomeSuccess, time.Millisecond)
	r.ObserveCall("math/clamp", OutcomeSuccess, time.Millisecond)
	r.ObserveCall("math/clamp", OutcomeEnvelopeError, time.Millisecond)
	r.ObserveCall(UnknownTool, OutcomePipelineError, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.ToolCalls.WithLabelValues("math/clamp", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ToolCalls.WithLabelValues("math/clamp", "envelope_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ToolCalls.WithLabelValues("unknown", "pipeline_error")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.ToolCallDuration))
}

func TestRecorder_SetCatalogSize(t *testing.T) {
	r := NewRecorder()
	r.SetCatalogSize(17)
	assert.Equal(t, 17.0, testutil.ToFloat64(r.CatalogFunctions))
}

func TestRecorder_Nil(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveCall("x", OutcomeSuccess, time.Second)
		r.SetCatalogSize(1)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 404, rec.Code)
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.ObserveCall("strings/toCamelCase", OutcomeSuccess, time.Millisecond)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)

	assert.True(t, strings.Contains(text, `monolith_tool_calls_total{outcome="success",tool="strings/toCamelCase"} 1`), text)
	assert.Contains(t, text, "monolith_tool_call_duration_seconds_bucket")
	assert.Contains(t, text, "go_goroutines")
}

func TestNewRecorder_Independent(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	a.ObserveCall("t", OutcomeSuccess, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.ToolCalls.WithLabelValues("t", "success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ToolCalls.WithLabelValues("t", "success")))
}
