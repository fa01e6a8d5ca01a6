package prezzario

import "context"

// KeywordExpander broadens a free-text query into technical keyword
// variants prior to relevance scoring.
type KeywordExpander interface {
	// Expand returns lowercase keywords and synonyms for the query.
	Expand(ctx context.Context, query string) ([]string, error)
}
