package mock

import (
	"context"

	"github.com/maxsviluppo/prezzario"
)

var _ prezzario.PriceListStore = (*PriceListStore)(nil)

// PriceListStore is a mock implementation of prezzario.PriceListStore.
type PriceListStore struct {
	CreatePriceListFn   func(ctx context.Context, pl *prezzario.PriceList) error
	FindPriceListByIDFn func(ctx context.Context, id string) (*prezzario.PriceList, error)
	FindPriceListsFn    func(ctx context.Context) ([]*prezzario.PriceList, error)
	DeletePriceListFn   func(ctx context.Context, id string) error
	StatsFn             func(ctx context.Context) (*prezzario.StoreStats, error)
	CategoriesFn        func(ctx context.Context) ([]string, error)
}

func (s *PriceListStore) CreatePriceList(ctx context.Context, pl *prezzario.PriceList) error {
	return s.CreatePriceListFn(ctx, pl)
}

func (s *PriceListStore) FindPriceListByID(ctx context.Context, id string) (*prezzario.PriceList, error) {
	return s.FindPriceListByIDFn(ctx, id)
}

func (s *PriceListStore) FindPriceLists(ctx context.Context) ([]*prezzario.PriceList, error) {
	return s.FindPriceListsFn(ctx)
}

func (s *PriceListStore) DeletePriceList(ctx context.Context, id string) error {
	return s.DeletePriceListFn(ctx, id)
}

func (s *PriceListStore) Stats(ctx context.Context) (*prezzario.StoreStats, error) {
	return s.StatsFn(ctx)
}

func (s *PriceListStore) Categories(ctx context.Context) ([]string, error) {
	return s.CategoriesFn(ctx)
}
