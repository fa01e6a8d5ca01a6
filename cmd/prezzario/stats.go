package main

import (
	"fmt"

	"github.com/maxsviluppo/prezzario"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Store.Stats(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prezzario.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Price lists:    %d\n", stats.TotalPriceLists)
	fmt.Fprintf(deps.Stdout, "Items:          %d\n", stats.TotalItems)
	fmt.Fprintf(deps.Stdout, "Regions:        %d\n", stats.RegionsCount)
	fmt.Fprintf(deps.Stdout, "Municipalities: %d\n", stats.MunicipalitiesCount)
	fmt.Fprintf(deps.Stdout, "Latest year:    %d\n", stats.LatestYear)
	return nil
}
