package commands

import (
	"context"
	"fmt"
)

// CategoriesCommand lists function categories through list_categories
type CategoriesCommand struct {
	*BaseCommand
}

// NewCategoriesCommand creates a new categories command
func NewCategoriesCommand(client ClientInterface, output OutputLogger, formats *FormatSelector) *CategoriesCommand {
	return &CategoriesCommand{
		BaseCommand: NewBaseCommand(client, output, formats),
	}
}

// Execute lists every category with its function count
func (c *CategoriesCommand) Execute(ctx context.Context, args []string) error {
	resp, err := c.client.Categories(ctx)
	if err != nil {
		return fmt.Errorf("listing categories failed: %w", err)
	}

	c.output.OutputLine(c.formatter().FormatCategories(*resp))
	return nil
}

// Usage returns the usage string
func (c *CategoriesCommand) Usage() string {
	return "categories"
}

// Description returns the command description
func (c *CategoriesCommand) Description() string {
	return "List function categories with their function counts"
}

// Completions returns possible completions
func (c *CategoriesCommand) Completions(input string) []string {
	return []string{}
}

// Aliases returns command aliases
func (c *CategoriesCommand) Aliases() []string {
	return []string{"cats"}
}
