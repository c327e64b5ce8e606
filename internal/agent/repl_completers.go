package agent

import (
	"bytes"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/romellogoodman/monolith/internal/formatting"
)

// paramCompleter offers "name=" pairs for a tool's parameters. Unlike
// readline.PcItemDynamic it does not append a space after "=", so the value
// can be typed right away.
type paramCompleter struct {
	suggest func(line string) []string
}

func (p *paramCompleter) GetName() []rune { return nil }
func (p *paramCompleter) GetChildren() []readline.PrefixCompleterInterface { return nil }
func (p *paramCompleter) SetChildren([]readline.PrefixCompleterInterface) {}
func (p *paramCompleter) Print(prefix string, level int, buf *bytes.Buffer) {}
func (p *paramCompleter) IsDynamic() bool { return true }

func (p *paramCompleter) Do(line []rune, pos int) ([][]rune, int) {
	return readline.Do(p, line, pos)
}

func (p *paramCompleter) GetDynamicNames(line []rune) [][]rune {
	var names [][]rune
	for _, name := range p.suggest(string(line)) {
		if !strings.HasSuffix(name, "=") {
			name += " "
		}
		names = append(names, []rune(name))
	}
	return names
}

// createCompleter creates the tab completion configuration from the cached
// tool listing and the command registry.
func (r *REPL) createCompleter() *readline.PrefixCompleter {
	toolCache := r.client.GetToolCache()
	sort.Slice(toolCache, func(i, j int) bool { return toolCache[i].Name < toolCache[j].Name })

	toolCompleter := make([]readline.PrefixCompleterInterface, len(toolCache))
	toolNames := make([]readline.PrefixCompleterInterface, len(toolCache))
	seen := make(map[string]bool)
	var categoryCompleter, searchCompleter []readline.PrefixCompleterInterface
	for i := range toolCache {
		tool := &toolCache[i]
		toolCompleter[i] = readline.PcItem(tool.Name, &paramCompleter{suggest: paramSuggestions(tool)})
		toolNames[i] = readline.PcItem(tool.Name)

		if category, _, ok := strings.Cut(tool.Name, "/"); ok && !seen[category] {
			seen[category] = true
			categoryCompleter = append(categoryCompleter, readline.PcItem(category))
			searchCompleter = append(searchCompleter, readline.PcItem("category="+category))
		}
	}

	formatCompleter := make([]readline.PrefixCompleterInterface, len(formatting.Formats))
	for i, f := range formatting.Formats {
		formatCompleter[i] = readline.PcItem(string(f))
	}

	commandNames := r.commandRegistry.AllCompletions()
	commandCompleters := make([]readline.PrefixCompleterInterface, len(commandNames))
	for i, name := range commandNames {
		commandCompleters[i] = readline.PcItem(name)
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("help", commandCompleters...),
		readline.PcItem("?"),
		readline.PcItem("exit"),
		readline.PcItem("quit"),
		readline.PcItem("list", categoryCompleter...),
		readline.PcItem("search", searchCompleter...),
		readline.PcItem("categories"),
		readline.PcItem("describe", toolNames...),
		readline.PcItem("call", toolCompleter...),
		readline.PcItem("format", formatCompleter...),
	)
}

// paramSuggestions suggests "name=" for every parameter of tool not yet
// present on the line, required parameters first.
func paramSuggestions(tool *mcp.Tool) func(string) []string {
	required := make(map[string]bool, len(tool.InputSchema.Required))
	for _, name := range tool.InputSchema.Required {
		required[name] = true
	}
	params := make([]string, 0, len(tool.InputSchema.Properties))
	for name := range tool.InputSchema.Properties {
		params = append(params, name)
	}
	sort.Slice(params, func(i, j int) bool {
		if required[params[i]] != required[params[j]] {
			return required[params[i]]
		}
		return params[i] < params[j]
	})

	return func(line string) []string {
		var suggestions []string
		for _, param := range params {
			if !strings.Contains(line, param+"=") {
				suggestions = append(suggestions, param+"=")
			}
		}
		return suggestions
	}
}

// filterInput blocks Ctrl+Z, which would suspend the process mid-line.
func filterInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
