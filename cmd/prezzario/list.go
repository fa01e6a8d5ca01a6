package main

import (
	"fmt"

	"github.com/maxsviluppo/prezzario"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	lists, err := deps.Store.FindPriceLists(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prezzario.ErrorMessage(err))
		return err
	}

	if len(lists) == 0 {
		fmt.Fprintln(deps.Stdout, "No price lists found. Use 'prezzario import' to add one.")
		return nil
	}

	for _, pl := range lists {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s %d  %d items\n", pl.ID, pl.Name, pl.Region, pl.Year, pl.ItemCount)
	}

	return nil
}
