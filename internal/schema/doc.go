// Package schema validates loosely typed tool arguments against the
// api.ArgMetadata declared by a tool.
//
// There is one validator for every tool, discovery and functional alike.
// Validate applies defaults, coerces values to their declared semantic type,
// checks enums and go-playground/validator rules, and returns either a
// normalized Args bag or a ValidationErrors describing every problem.
package schema
