package main

import (
	"fmt"

	"github.com/maxsviluppo/prezzario"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return prezzario.Errorf(prezzario.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Store.DeletePriceList(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prezzario.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted price list %q\n", c.ID)
	return nil
}
