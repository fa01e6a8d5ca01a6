package search

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/maxsviluppo/prezzario"
)

// Ensure Semantic implements prezzario.SemanticSearcher at compile time.
var _ prezzario.SemanticSearcher = (*Semantic)(nil)

const (
	// phraseScore is awarded when an expanded keyword matches as a whole
	// phrase; tokenScore for each of its sufficiently long sub-tokens.
	phraseScore = 3
	tokenScore  = 1

	// minTokenRunes is the exclusive length threshold below which
	// sub-tokens are too generic to score (articles, prepositions).
	minTokenRunes = 3

	// semanticLimit caps ranked results; fallbackLimit caps the
	// keyword-free path.
	semanticLimit = 20
	fallbackLimit = 10
)

// Semantic answers natural-language queries by expanding them into
// technical keywords through a KeywordExpander and scoring items against
// the expansion. With a nil expander it degrades to a plain substring
// scan over the query's own terms.
type Semantic struct {
	store    prezzario.PriceListStore
	expander prezzario.KeywordExpander
}

// NewSemantic creates a new Semantic over the given store. The expander
// may be nil, in which case every search takes the fallback path.
func NewSemantic(store prezzario.PriceListStore, expander prezzario.KeywordExpander) *Semantic {
	return &Semantic{store: store, expander: expander}
}

// SearchSemantic expands the query into keywords, scores every stored
// item against them and returns at most the 20 best matches in
// descending score order. Items scoring zero are excluded. Expansion
// failures are returned to the caller, which may retry on a Semantic
// without an expander to get the deterministic fallback.
func (s *Semantic) SearchSemantic(ctx context.Context, query string) ([]prezzario.ScoredItem, error) {
	lists, err := s.store.FindPriceLists(ctx)
	if err != nil {
		return nil, err
	}

	if s.expander == nil {
		return fallbackSearch(lists, query), nil
	}

	keywords, err := s.expander.Expand(ctx, query)
	if err != nil {
		return nil, err
	}

	scored := []prezzario.ScoredItem{}
	for _, pl := range lists {
		for _, item := range pl.Items {
			if score := scoreItem(item, keywords); score > 0 {
				scored = append(scored, prezzario.ScoredItem{Item: item, Score: score})
			}
		}
	}

	// Stable sort keeps enumeration order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > semanticLimit {
		scored = scored[:semanticLimit]
	}
	return scored, nil
}

// scoreItem rates an item against the expanded keywords: each keyword
// matching as a whole phrase scores 3, and each of its space-delimited
// sub-tokens longer than 3 characters scores 1 more per match.
func scoreItem(item *prezzario.PriceListItem, keywords []string) int {
	haystack := strings.ToLower(item.Description + " " + item.Category + " " + item.Code)
	score := 0
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, kw) {
			score += phraseScore
		}
		for _, tok := range strings.Fields(kw) {
			if utf8.RuneCountInString(tok) <= minTokenRunes {
				continue
			}
			if strings.Contains(haystack, tok) {
				score += tokenScore
			}
		}
	}
	return score
}

// fallbackSearch includes any item whose description or category contains
// at least one query term, capped at 10 results in enumeration order.
func fallbackSearch(lists []*prezzario.PriceList, query string) []prezzario.ScoredItem {
	terms := strings.Fields(strings.ToLower(query))

	out := []prezzario.ScoredItem{}
	for _, pl := range lists {
		for _, item := range pl.Items {
			if !matchesAnyTerm(item, terms) {
				continue
			}
			out = append(out, prezzario.ScoredItem{Item: item})
			if len(out) == fallbackLimit {
				return out
			}
		}
	}
	return out
}

func matchesAnyTerm(item *prezzario.PriceListItem, terms []string) bool {
	haystack := strings.ToLower(item.Description + " " + item.Category)
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}
