package main

import (
	"fmt"

	"github.com/maxsviluppo/prezzario"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	categories, err := deps.Store.Categories(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prezzario.ErrorMessage(err))
		return err
	}

	if len(categories) == 0 {
		fmt.Fprintln(deps.Stdout, "No categories found.")
		return nil
	}

	for _, cat := range categories {
		fmt.Fprintln(deps.Stdout, cat)
	}

	return nil
}
