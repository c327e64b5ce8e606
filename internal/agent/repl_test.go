package agent

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romellogoodman/monolith/internal/agent/commands"
	"github.com/romellogoodman/monolith/internal/formatting"
)

func newTestREPL(t *testing.T) (*REPL, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	client := connectedClient(t)
	var status, out bytes.Buffer
	logger := NewLoggerWithWriter(false, false, &status, &out)
	repl := NewREPL(client, logger, formatting.Options{Format: formatting.FormatConsole})
	repl.SetHistoryFile(filepath.Join(t.TempDir(), "history"))
	return repl, &status, &out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "describe math/round", []string{"describe", "math/round"}},
		{"quoted value", `call strings/truncate input="Hello World" length=8`, []string{"call", "strings/truncate", "input=Hello World", "length=8"}},
		{"single quotes", `search 'camel case'`, []string{"search", "camel case"}},
		{"json object", `call data/arrays/unique {"array": [1, 2, 2]}`, []string{"call", "data/arrays/unique", `{"array": [1, 2, 2]}`}},
		{"brace inside quoted value", `call strings/toCamelCase input="a {b}"`, []string{"call", "strings/toCamelCase", "input=a {b}"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestREPL_ExecuteCommand(t *testing.T) {
	repl, _, out := newTestREPL(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"help", "help", "Available commands:"},
		{"help alias", "?", "Available commands:"},
		{"list", "list", "Available tools (20):"},
		{"list category", "list math", "Available tools (2):"},
		{"search", "search base64", `Found 2 functions for "base64":`},
		{"search category", "search email category=validation", `for "email" in validation`},
		{"categories", "categories", "Categories (7):"},
		{"describe function", "describe strings/truncate", "Parameters:"},
		{"describe discovery tool", "describe search_functions", "Tool: search_functions"},
		{"call key value", `call strings/truncate input="Hello World" length=8`, `"result": "Hello..."`},
		{"call json", `call data/arrays/unique {"array": [1, 2, 2, 3]}`, `"success": true`},
		{"call failure envelope", "call math/clamp value=1 min=10 max=5", "INVALID_RANGE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			require.NoError(t, repl.executeCommand(tt.input))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestREPL_ExecuteCommandErrors(t *testing.T) {
	repl, status, _ := newTestREPL(t)

	err := repl.executeCommand("frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")

	assert.ErrorIs(t, repl.executeCommand("exit"), commands.ErrExit)
	assert.ErrorIs(t, repl.executeCommand("quit"), commands.ErrExit)

	err = repl.executeCommand(`search "unterminated`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")

	require.NoError(t, repl.executeCommand("describe strings/nope"))
	assert.Contains(t, status.String(), "Function 'strings/nope' not found")

	assert.NoError(t, repl.executeCommand(""))
}

func TestREPL_FormatSwitch(t *testing.T) {
	repl, _, out := newTestREPL(t)

	require.NoError(t, repl.executeCommand("format json"))
	out.Reset()
	require.NoError(t, repl.executeCommand("categories"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out.String()), "{"), out.String())

	out.Reset()
	require.NoError(t, repl.executeCommand("format"))
	assert.Contains(t, out.String(), "Output format: json")

	assert.Error(t, repl.executeCommand("format xml"))
}

func TestREPL_CreateCompleter(t *testing.T) {
	repl, _, _ := newTestREPL(t)

	completer := repl.createCompleter()
	require.NotNil(t, completer)

	line := []rune("call strings/trun")
	candidates, _ := completer.Do(line, len(line))
	require.Len(t, candidates, 1)
	assert.Equal(t, "cate ", string(candidates[0]))
}

func TestREPL_ToolParamCompleter(t *testing.T) {
	repl, _, _ := newTestREPL(t)

	tool := formatting.NewConsoleFormatter(formatting.Options{}).FindTool(repl.client.GetToolCache(), "strings/truncate")
	require.NotNil(t, tool)

	suggest := paramSuggestions(tool)
	assert.Equal(t, []string{"input=", "length=", "suffix="}, suggest("call strings/truncate "))
	assert.Equal(t, []string{"length=", "suffix="}, suggest("call strings/truncate input=x "))

	completer := &paramCompleter{suggest: func(string) []string { return []string{"input=", "verbatim"} }}
	names := completer.GetDynamicNames([]rune("call x "))
	require.Len(t, names, 2)
	assert.Equal(t, "input=", string(names[0]))
	assert.Equal(t, "verbatim ", string(names[1]))
}

func TestFilterInput(t *testing.T) {
	_, ok := filterInput('a')
	assert.True(t, ok)
	_, ok = filterInput(26) // Ctrl+Z
	assert.False(t, ok)
}
