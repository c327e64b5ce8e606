// Package context stores named monolith server endpoints so client commands
// can reach a remote server without repeating --endpoint.
//
// Contexts live in ~/.config/monolith/contexts.yaml:
//
//	current-context: staging
//	contexts:
//	  - name: local
//	    endpoint: http://localhost:8090/mcp
//	  - name: staging
//	    endpoint: https://monolith.example.com/sse
//	    transport: sse
//	    settings:
//	      output: table
//
// A client command resolves its server in this order:
//  1. --endpoint flag
//  2. --context flag
//  3. MONOLITH_CONTEXT environment variable
//  4. current-context from contexts.yaml
//  5. an in-process server
package context
