// Package search resolves query text and filters into item lists, either
// through exact substring matching or through AI-assisted keyword
// expansion with relevance scoring.
package search

import (
	"context"
	"strings"

	"github.com/maxsviluppo/prezzario"
)

// Ensure Engine implements prezzario.Searcher at compile time.
var _ prezzario.Searcher = (*Engine)(nil)

// Engine filters and full-text searches the flattened item set of a price
// list store. Results keep insertion order (list order × item order);
// there is no relevance ranking on this path.
type Engine struct {
	store prezzario.PriceListStore
}

// NewEngine creates a new Engine reading from the given store.
func NewEngine(store prezzario.PriceListStore) *Engine {
	return &Engine{store: store}
}

// SearchItems returns the items matching every whitespace-separated query
// term and all filter predicates. An empty query matches everything,
// subject to the filter. The returned slice is fresh; stored items are
// never mutated.
func (e *Engine) SearchItems(ctx context.Context, query string, filter prezzario.ItemFilter) ([]*prezzario.PriceListItem, error) {
	lists, err := e.store.FindPriceLists(ctx)
	if err != nil {
		return nil, err
	}

	terms := strings.Fields(strings.ToLower(query))

	out := []*prezzario.PriceListItem{}
	for _, pl := range lists {
		for _, item := range pl.Items {
			if !matchesFilter(item, filter) {
				continue
			}
			if !matchesTerms(item, terms) {
				continue
			}
			out = append(out, item)
		}
	}
	return out, nil
}

// matchesFilter applies the optional, conjunctive predicates. Region and
// municipality are case-insensitive exact matches; category is a
// case-insensitive substring match, intentionally looser.
func matchesFilter(item *prezzario.PriceListItem, f prezzario.ItemFilter) bool {
	if f.Region != "" && !strings.EqualFold(item.Region, f.Region) {
		return false
	}
	if f.Municipality != "" && !strings.EqualFold(item.Municipality, f.Municipality) {
		return false
	}
	if f.Category != "" && !strings.Contains(strings.ToLower(item.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.MinPrice != nil && item.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && item.Price > *f.MaxPrice {
		return false
	}
	if f.Year != nil && item.Year != *f.Year {
		return false
	}
	return true
}

// matchesTerms reports whether every term appears as a substring of the
// item's code, description and category text.
func matchesTerms(item *prezzario.PriceListItem, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	haystack := strings.ToLower(item.Code + " " + item.Description + " " + item.Category)
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}
