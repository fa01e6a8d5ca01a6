package main

import (
	"fmt"

	"github.com/maxsviluppo/prezzario"
	"github.com/maxsviluppo/prezzario/csv"
)

// Run executes the import-url command.
func (c *ImportURLCmd) Run(deps *Dependencies) error {
	opts := csv.Options{
		Name:         c.Name,
		Region:       c.Region,
		Municipality: c.Municipality,
		Year:         c.Year,
	}

	res, err := deps.Importer.ImportURL(deps.Ctx, c.URL, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prezzario.ErrorMessage(err))
		return err
	}

	printImportResult(deps, res)
	return nil
}
