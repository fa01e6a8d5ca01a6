package main

import (
	"fmt"

	"github.com/maxsviluppo/prezzario"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	datasets, err := deps.Importer.Discover(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prezzario.ErrorMessage(err))
		return err
	}

	if len(datasets) == 0 {
		fmt.Fprintln(deps.Stdout, "No datasets found.")
		return nil
	}

	for _, ds := range datasets {
		region := prezzario.InferRegion(ds.Title)
		year := prezzario.InferYear(ds.Title)
		org := ""
		if ds.Organization != nil {
			org = ds.Organization.Title
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  [%s %d]  %s\n", ds.ID, ds.Title, region, year, org)
	}

	return nil
}
