package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/maxsviluppo/prezzario"
)

// Ensure LoggingCatalog implements prezzario.Catalog.
var _ prezzario.Catalog = (*LoggingCatalog)(nil)

// LoggingCatalog wraps a Catalog with operation logging.
type LoggingCatalog struct {
	next   prezzario.Catalog
	logger *slog.Logger
}

// NewLoggingCatalog creates a new LoggingCatalog.
func NewLoggingCatalog(next prezzario.Catalog, logger *slog.Logger) *LoggingCatalog {
	return &LoggingCatalog{next: next, logger: logger}
}

// SearchDatasets delegates to the wrapped catalog and logs the operation.
func (c *LoggingCatalog) SearchDatasets(ctx context.Context, query string) (datasets []*prezzario.Dataset, err error) {
	defer func(begin time.Time) {
		c.logger.Info("catalog search",
			"query", query,
			"count", len(datasets),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.SearchDatasets(ctx, query)
}

// FindDatasetByID delegates to the wrapped catalog and logs the operation.
func (c *LoggingCatalog) FindDatasetByID(ctx context.Context, id string) (ds *prezzario.Dataset, err error) {
	defer func(begin time.Time) {
		c.logger.Info("catalog dataset",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.FindDatasetByID(ctx, id)
}
