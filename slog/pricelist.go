// Package slog provides logging decorators for the application's service
// interfaces, built on the standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/maxsviluppo/prezzario"
)

// Ensure LoggingPriceListStore implements prezzario.PriceListStore.
var _ prezzario.PriceListStore = (*LoggingPriceListStore)(nil)

// LoggingPriceListStore wraps a PriceListStore with operation logging.
type LoggingPriceListStore struct {
	next   prezzario.PriceListStore
	logger *slog.Logger
}

// NewLoggingPriceListStore creates a new LoggingPriceListStore.
func NewLoggingPriceListStore(next prezzario.PriceListStore, logger *slog.Logger) *LoggingPriceListStore {
	return &LoggingPriceListStore{next: next, logger: logger}
}

// CreatePriceList delegates to the wrapped store and logs the operation.
func (s *LoggingPriceListStore) CreatePriceList(ctx context.Context, pl *prezzario.PriceList) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create price list",
			"name", pl.Name,
			"region", pl.Region,
			"items", pl.ItemCount,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreatePriceList(ctx, pl)
}

// FindPriceListByID delegates to the wrapped store and logs the operation.
func (s *LoggingPriceListStore) FindPriceListByID(ctx context.Context, id string) (pl *prezzario.PriceList, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find price list",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindPriceListByID(ctx, id)
}

// FindPriceLists delegates to the wrapped store and logs the operation.
func (s *LoggingPriceListStore) FindPriceLists(ctx context.Context) (lists []*prezzario.PriceList, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find price lists",
			"count", len(lists),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindPriceLists(ctx)
}

// DeletePriceList delegates to the wrapped store and logs the operation.
func (s *LoggingPriceListStore) DeletePriceList(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete price list",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeletePriceList(ctx, id)
}

// Stats delegates to the wrapped store and logs the operation.
func (s *LoggingPriceListStore) Stats(ctx context.Context) (stats *prezzario.StoreStats, err error) {
	defer func(begin time.Time) {
		s.logger.Info("store stats",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Stats(ctx)
}

// Categories delegates to the wrapped store and logs the operation.
func (s *LoggingPriceListStore) Categories(ctx context.Context) (categories []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("store categories",
			"count", len(categories),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Categories(ctx)
}
