package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/maxsviluppo/prezzario"
	"github.com/maxsviluppo/prezzario/csv"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	opts := csv.Options{
		Name:         c.Name,
		Region:       c.Region,
		Municipality: c.Municipality,
		Year:         c.Year,
	}

	importFn := deps.Importer.ImportFile
	if strings.EqualFold(filepath.Ext(c.Path), ".xlsx") {
		importFn = deps.Importer.ImportWorkbook
	}

	res, err := importFn(deps.Ctx, c.Path, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prezzario.ErrorMessage(err))
		return err
	}

	printImportResult(deps, res)
	return nil
}

func printImportResult(deps *Dependencies, res *csv.Result) {
	pl := res.PriceList
	fmt.Fprintf(deps.Stdout, "Imported %q (%s): %d items", pl.Name, pl.ID, res.Accepted)
	if res.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, ", %d rows skipped", res.Skipped)
	}
	fmt.Fprintln(deps.Stdout)
}
