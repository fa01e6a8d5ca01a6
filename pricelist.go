package prezzario

import (
	"context"
	"time"
)

// PriceListItem represents one priced unit-of-work entry inside a price
// list. Items are immutable after import; updates happen by replacing the
// whole price list.
type PriceListItem struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Description  string  `json:"description"`
	Unit         string  `json:"unit"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Region       string  `json:"region"`
	Municipality string  `json:"municipality,omitempty"`
	Year         int     `json:"year"`
}

// Validate returns an error if the item contains invalid fields.
func (i *PriceListItem) Validate() error {
	if i.Code == "" {
		return Errorf(EINVALID, "item code required")
	}
	if i.Description == "" {
		return Errorf(EINVALID, "item description required")
	}
	if i.Price < 0 {
		return Errorf(EINVALID, "item price must be non-negative")
	}
	return nil
}

// PriceList represents one imported batch of priced work items scoped to a
// region, year and source.
type PriceList struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Region       string           `json:"region"`
	Municipality string           `json:"municipality,omitempty"`
	Year         int              `json:"year"`
	Source       string           `json:"source"`
	SourceHash   string           `json:"sourceHash,omitempty"`
	ImportDate   time.Time        `json:"importDate"`
	ItemCount    int              `json:"itemCount"`
	Items        []*PriceListItem `json:"items"`
}

// Validate returns an error if the price list contains invalid fields.
func (p *PriceList) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "price list name required")
	}
	if p.Region == "" {
		return Errorf(EINVALID, "price list region required")
	}
	if p.ItemCount != len(p.Items) {
		return Errorf(EINVALID, "price list item count %d does not match %d items", p.ItemCount, len(p.Items))
	}
	for _, item := range p.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// StoreStats summarizes the contents of a price list store.
type StoreStats struct {
	TotalPriceLists     int `json:"totalPriceLists"`
	TotalItems          int `json:"totalItems"`
	RegionsCount        int `json:"regionsCount"`
	MunicipalitiesCount int `json:"municipalitiesCount"`
	LatestYear          int `json:"latestYear"`
}

// PriceListStore represents a service for managing the collection of
// imported price lists. The store is the single owner of the collection;
// callers must route all mutations through it.
type PriceListStore interface {
	// CreatePriceList appends a fully constructed price list to the
	// collection and persists it.
	CreatePriceList(ctx context.Context, pl *PriceList) error

	// FindPriceListByID retrieves a price list by ID.
	// Returns ENOTFOUND if the price list does not exist.
	FindPriceListByID(ctx context.Context, id string) (*PriceList, error)

	// FindPriceLists retrieves all price lists in insertion order.
	FindPriceLists(ctx context.Context) ([]*PriceList, error)

	// DeletePriceList removes the price list with the given ID and
	// persists the collection. Deleting an unknown ID is a no-op.
	DeletePriceList(ctx context.Context, id string) error

	// Stats derives summary statistics over the whole collection.
	// LatestYear falls back to the current year for an empty store.
	Stats(ctx context.Context) (*StoreStats, error)

	// Categories returns the distinct item categories across all lists,
	// sorted lexicographically.
	Categories(ctx context.Context) ([]string, error)
}
