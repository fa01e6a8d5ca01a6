package mock

import (
	"context"

	"github.com/maxsviluppo/prezzario"
)

var _ prezzario.Catalog = (*Catalog)(nil)

// Catalog is a mock implementation of prezzario.Catalog.
type Catalog struct {
	SearchDatasetsFn  func(ctx context.Context, query string) ([]*prezzario.Dataset, error)
	FindDatasetByIDFn func(ctx context.Context, id string) (*prezzario.Dataset, error)
}

func (c *Catalog) SearchDatasets(ctx context.Context, query string) ([]*prezzario.Dataset, error) {
	return c.SearchDatasetsFn(ctx, query)
}

func (c *Catalog) FindDatasetByID(ctx context.Context, id string) (*prezzario.Dataset, error) {
	return c.FindDatasetByIDFn(ctx, id)
}
