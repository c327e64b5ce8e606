// Package agent provides the MCP client side of monolith: a Client that
// talks to a running server (or an in-process one) and an interactive REPL
// built on top of it.
//
// # Quick Start
//
// For interactive exploration of a running server:
//
//	logger := agent.NewLogger(false, true)
//	client := agent.NewClient("http://localhost:8090/mcp", logger, agent.TransportStreamableHTTP)
//	if err := client.Connect(ctx); err != nil {
//	    return err
//	}
//	defer client.Close()
//	repl := agent.NewREPL(client, logger, formatting.Options{Format: formatting.FormatConsole})
//	return repl.Run(ctx)
//
// For programmatic calls:
//
//	resp, err := client.CallFunction(ctx, "strings/truncate", map[string]interface{}{
//	    "input":  "Hello World",
//	    "length": 8,
//	})
//
// # Client
//
// The Client wraps the mcp-go client for the streamable HTTP, SSE and
// in-process transports. It performs the MCP handshake on Connect, caches
// the tool listing, and decodes the payloads of the discovery tools:
//   - Search: search_functions, optionally within one category
//   - Categories: list_categories
//   - Describe: describe_function; an unknown name becomes an error
//
// CallFunction decodes the success or failure envelope returned by every
// utility function. A failure reported by the function is data, not an error.
//
// # REPL
//
// The REPL reads commands with readline, offering history and tab
// completion of command names, tool names, categories and "param=" pairs.
// Commands live in the commands subpackage:
//
//	help [command]                  Show help
//	list [category]                 List tools
//	search <query> [category=<c>]   Search functions
//	categories                      List categories
//	describe <name>                 Show a function or tool
//	call <tool> [key=value ...]     Execute a tool; a JSON object also works
//	format [console|json|yaml|table] Show or change the output format
//	exit                            Leave the REPL
//
// Arguments honor shell-style quoting, so values with spaces can be written
// as input="Hello World". Values are decoded as JSON where possible, so
// length=8 is sent as a number and array=[1,2] as an array.
package agent
