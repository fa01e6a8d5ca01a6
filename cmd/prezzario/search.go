package main

import (
	"fmt"

	"github.com/maxsviluppo/prezzario"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.Semantic {
		return c.runSemantic(deps)
	}

	filter := prezzario.ItemFilter{
		Region:       c.Region,
		Municipality: c.Municipality,
		Category:     c.Category,
		MinPrice:     c.MinPrice,
		MaxPrice:     c.MaxPrice,
		Year:         c.Year,
	}

	items, err := deps.Searcher.SearchItems(deps.Ctx, c.Query, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prezzario.ErrorMessage(err))
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No items found.")
		return nil
	}

	for _, item := range items {
		printItem(deps, item)
	}
	fmt.Fprintf(deps.Stdout, "%d items\n", len(items))
	return nil
}

// runSemantic searches with AI keyword expansion, falling back to the
// deterministic matcher when the expansion fails.
func (c *SearchCmd) runSemantic(deps *Dependencies) error {
	results, err := deps.Semantic.SearchSemantic(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "keyword expansion failed (%s), using basic matching\n", prezzario.ErrorMessage(err))
		results, err = deps.Fallback.SearchSemantic(deps.Ctx, c.Query)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", prezzario.ErrorMessage(err))
			return err
		}
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No items found.")
		return nil
	}

	for _, r := range results {
		printItem(deps, r.Item)
	}
	fmt.Fprintf(deps.Stdout, "%d items\n", len(results))
	return nil
}

func printItem(deps *Dependencies, item *prezzario.PriceListItem) {
	fmt.Fprintf(deps.Stdout, "%-12s %-50s %8.2f €/%s  %s (%s %d)\n",
		item.Code, item.Description, item.Price, item.Unit, item.Category, item.Region, item.Year)
}
