package prezzario

import "context"

// ItemFilter represents optional, conjunctive predicates for item search.
// Zero-value fields are ignored.
type ItemFilter struct {
	// Case-insensitive exact matches.
	Region       string `json:"region,omitempty"`
	Municipality string `json:"municipality,omitempty"`

	// Case-insensitive substring match, intentionally looser than the
	// region and municipality predicates.
	Category string `json:"category,omitempty"`

	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	Year     *int     `json:"year,omitempty"`
}

// Searcher resolves a (query text, filter) pair into an item list.
type Searcher interface {
	// SearchItems returns the items matching every whitespace-separated
	// query term and all filter predicates, in insertion order. An empty
	// query matches everything, subject to the filter.
	SearchItems(ctx context.Context, query string, filter ItemFilter) ([]*PriceListItem, error)
}

// ScoredItem is a semantic search match with its relevance score.
type ScoredItem struct {
	Item  *PriceListItem `json:"item"`
	Score int            `json:"score"`
}

// SemanticSearcher answers queries through keyword expansion and
// relevance scoring.
type SemanticSearcher interface {
	// SearchSemantic returns scored items ordered by descending relevance.
	// When keyword expansion fails the error is returned to the caller,
	// who may fall back to deterministic matching.
	SearchSemantic(ctx context.Context, query string) ([]ScoredItem, error)
}
