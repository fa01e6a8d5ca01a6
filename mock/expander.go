package mock

import (
	"context"

	"github.com/maxsviluppo/prezzario"
)

var _ prezzario.KeywordExpander = (*KeywordExpander)(nil)

// KeywordExpander is a mock implementation of prezzario.KeywordExpander.
type KeywordExpander struct {
	ExpandFn func(ctx context.Context, query string) ([]string, error)
}

func (e *KeywordExpander) Expand(ctx context.Context, query string) ([]string, error) {
	return e.ExpandFn(ctx, query)
}
