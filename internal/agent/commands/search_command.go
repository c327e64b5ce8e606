package commands

import (
	"context"
	"fmt"
	"strings"
)

// SearchCommand finds functions by keyword through search_functions
type SearchCommand struct {
	*BaseCommand
}

// NewSearchCommand creates a new search command
func NewSearchCommand(client ClientInterface, output OutputLogger, formats *FormatSelector) *SearchCommand {
	return &SearchCommand{
		BaseCommand: NewBaseCommand(client, output, formats),
	}
}

// Execute searches the catalog. A trailing category=<name> argument restricts
// the search to that category; the remaining words form the query.
func (s *SearchCommand) Execute(ctx context.Context, args []string) error {
	parsed, err := s.parseArgs(args, 1, s.Usage())
	if err != nil {
		return err
	}

	var category string
	var words []string
	for _, arg := range parsed {
		if value, ok := strings.CutPrefix(arg, "category="); ok {
			category = stripQuotes(value)
			continue
		}
		words = append(words, arg)
	}
	query := stripQuotes(strings.Join(words, " "))

	resp, err := s.client.Search(ctx, query, category)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	s.output.OutputLine(s.formatter().FormatSearch(*resp))
	return nil
}

// Usage returns the usage string
func (s *SearchCommand) Usage() string {
	return "search <query> [category=<name>]"
}

// Description returns the command description
func (s *SearchCommand) Description() string {
	return "Search functions by name, description, category or tag"
}

// Completions returns possible completions
func (s *SearchCommand) Completions(input string) []string {
	categories := s.getCategoryCompletions()
	completions := make([]string, len(categories))
	for i, c := range categories {
		completions[i] = "category=" + c
	}
	return completions
}

// Aliases returns command aliases
func (s *SearchCommand) Aliases() []string {
	return []string{"find"}
}
