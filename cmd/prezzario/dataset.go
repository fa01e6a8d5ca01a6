package main

import (
	"fmt"

	"github.com/maxsviluppo/prezzario"
	"github.com/maxsviluppo/prezzario/ingest"
)

// Run executes the import-dataset command.
func (c *ImportDatasetCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Importer.Concurrency = c.Concurrency
	}

	progress := func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Importing %d datasets\n", event.Total)
		case ingest.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.Name)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.DatasetID, prezzario.ErrorMessage(event.Error))
		case ingest.ProgressFinished:
			// Summary printed after the batch completes
		}
	}

	result, err := deps.Importer.ImportDatasets(deps.Ctx, c.IDs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prezzario.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d price lists (%d items", result.Imported, result.Items)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, ", %d failed", result.Failed)
	}
	fmt.Fprintln(deps.Stdout, ")")
	return nil
}
