// Package fs provides a file-based price list store. The whole collection
// is kept as one serialized JSON array in one well-known file: it is
// loaded in full at open time, mutated in memory, and written back in full
// after every mutation.
//
// The store is the single owner of the collection; all mutations are
// serialized behind one mutex, so there is no lost-update window between
// load and save.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/maxsviluppo/prezzario"
)

// Ensure Store implements prezzario.PriceListStore at compile time.
var _ prezzario.PriceListStore = (*Store)(nil)

// Store persists price lists as a JSON array on disk.
type Store struct {
	path string

	mu    sync.Mutex
	lists []*prezzario.PriceList
}

// NewStore creates a new Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Open loads the collection from disk. A missing file yields an empty
// collection.
func (s *Store) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.lists = nil
		return nil
	}
	if err != nil {
		return err
	}

	var lists []*prezzario.PriceList
	if err := json.Unmarshal(data, &lists); err != nil {
		return prezzario.Errorf(prezzario.EINTERNAL, "corrupt price list store at %q: %v", s.path, err)
	}
	s.lists = lists
	return nil
}

// CreatePriceList appends a fully constructed price list and persists the
// collection. Nothing is committed when validation or the write fails.
func (s *Store) CreatePriceList(ctx context.Context, pl *prezzario.PriceList) error {
	if err := pl.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists = append(s.lists, pl)
	if err := s.save(); err != nil {
		s.lists = s.lists[:len(s.lists)-1]
		return err
	}
	return nil
}

// FindPriceListByID retrieves a price list by ID.
func (s *Store) FindPriceListByID(ctx context.Context, id string) (*prezzario.PriceList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pl := range s.lists {
		if pl.ID == id {
			return pl, nil
		}
	}
	return nil, prezzario.Errorf(prezzario.ENOTFOUND, "price list %q not found", id)
}

// FindPriceLists retrieves all price lists in insertion order.
func (s *Store) FindPriceLists(ctx context.Context) ([]*prezzario.PriceList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*prezzario.PriceList, len(s.lists))
	copy(out, s.lists)
	return out, nil
}

// DeletePriceList removes a price list by ID and persists the collection.
// Deleting an unknown ID is a no-op.
func (s *Store) DeletePriceList(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, pl := range s.lists {
		if pl.ID == id {
			removed := pl
			s.lists = append(s.lists[:i], s.lists[i+1:]...)
			if err := s.save(); err != nil {
				s.lists = append(s.lists[:i], append([]*prezzario.PriceList{removed}, s.lists[i:]...)...)
				return err
			}
			return nil
		}
	}
	return nil
}

// Stats derives summary statistics over the collection.
func (s *Store) Stats(ctx context.Context) (*prezzario.StoreStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &prezzario.StoreStats{TotalPriceLists: len(s.lists)}
	regions := map[string]struct{}{}
	municipalities := map[string]struct{}{}
	for _, pl := range s.lists {
		stats.TotalItems += pl.ItemCount
		regions[pl.Region] = struct{}{}
		if pl.Municipality != "" {
			municipalities[pl.Municipality] = struct{}{}
		}
		if pl.Year > stats.LatestYear {
			stats.LatestYear = pl.Year
		}
	}
	stats.RegionsCount = len(regions)
	stats.MunicipalitiesCount = len(municipalities)
	if len(s.lists) == 0 {
		stats.LatestYear = time.Now().Year()
	}
	return stats, nil
}

// Categories returns the distinct item categories across all lists,
// sorted lexicographically.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]struct{}{}
	for _, pl := range s.lists {
		for _, item := range pl.Items {
			seen[item.Category] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

// save writes the whole collection back to disk. Callers hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.lists, "", "  ")
	if err != nil {
		return err
	}
	if s.lists == nil {
		data = []byte("[]")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0644)
}
