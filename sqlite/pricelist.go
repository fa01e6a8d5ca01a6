package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/maxsviluppo/prezzario"
)

// Compile-time interface verification.
var _ prezzario.PriceListStore = (*PriceListStore)(nil)

// PriceListStore implements prezzario.PriceListStore using SQLite.
type PriceListStore struct {
	db *DB
}

// NewPriceListStore creates a new PriceListStore.
func NewPriceListStore(db *DB) *PriceListStore {
	return &PriceListStore{db: db}
}

// CreatePriceList appends a fully constructed price list. The list and its
// items are written in one transaction; nothing is committed on failure.
func (s *PriceListStore) CreatePriceList(ctx context.Context, pl *prezzario.PriceList) error {
	if err := pl.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO price_lists (id, name, region, municipality, year, source, source_hash, import_date, item_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, pl.ID, pl.Name, pl.Region, pl.Municipality, pl.Year, pl.Source, pl.SourceHash,
		pl.ImportDate.Format(time.RFC3339), pl.ItemCount)
	if err != nil {
		return err
	}

	for i, item := range pl.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO price_list_items (id, price_list_id, code, description, unit, price, category, region, municipality, year, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, item.ID, pl.ID, item.Code, item.Description, item.Unit, item.Price, item.Category,
			item.Region, item.Municipality, item.Year, i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindPriceListByID retrieves a price list with its items.
func (s *PriceListStore) FindPriceListByID(ctx context.Context, id string) (*prezzario.PriceList, error) {
	var pl prezzario.PriceList
	var importDate string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, region, municipality, year, source, source_hash, import_date, item_count
		FROM price_lists
		WHERE id = ?
	`, id).Scan(&pl.ID, &pl.Name, &pl.Region, &pl.Municipality, &pl.Year, &pl.Source, &pl.SourceHash,
		&importDate, &pl.ItemCount)

	if err == sql.ErrNoRows {
		return nil, prezzario.Errorf(prezzario.ENOTFOUND, "price list %q not found", id)
	}
	if err != nil {
		return nil, err
	}

	pl.ImportDate, err = time.Parse(time.RFC3339, importDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse import_date: %w", err)
	}

	items, err := s.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	pl.Items = items

	return &pl, nil
}

// FindPriceLists retrieves all price lists with their items in insertion
// order.
func (s *PriceListStore) FindPriceLists(ctx context.Context) ([]*prezzario.PriceList, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, region, municipality, year, source, source_hash, import_date, item_count
		FROM price_lists
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []*prezzario.PriceList
	index := map[string]*prezzario.PriceList{}
	for rows.Next() {
		var pl prezzario.PriceList
		var importDate string

		if err := rows.Scan(&pl.ID, &pl.Name, &pl.Region, &pl.Municipality, &pl.Year, &pl.Source,
			&pl.SourceHash, &importDate, &pl.ItemCount); err != nil {
			return nil, err
		}
		pl.ImportDate, err = time.Parse(time.RFC3339, importDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse import_date: %w", err)
		}

		lists = append(lists, &pl)
		index[pl.ID] = &pl
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := s.db.QueryContext(ctx, `
		SELECT i.price_list_id, i.id, i.code, i.description, i.unit, i.price, i.category, i.region, i.municipality, i.year
		FROM price_list_items i
		JOIN price_lists p ON p.id = i.price_list_id
		ORDER BY p.rowid, i.position
	`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var listID string
		var item prezzario.PriceListItem
		if err := itemRows.Scan(&listID, &item.ID, &item.Code, &item.Description, &item.Unit,
			&item.Price, &item.Category, &item.Region, &item.Municipality, &item.Year); err != nil {
			return nil, err
		}
		if pl, ok := index[listID]; ok {
			pl.Items = append(pl.Items, &item)
		}
	}
	return lists, itemRows.Err()
}

// DeletePriceList removes a price list and its items.
// Deleting an unknown ID is a no-op.
func (s *PriceListStore) DeletePriceList(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM price_lists WHERE id = ?`, id)
	return err
}

// Stats derives summary statistics over the whole collection.
func (s *PriceListStore) Stats(ctx context.Context) (*prezzario.StoreStats, error) {
	var stats prezzario.StoreStats
	var latest sql.NullInt64

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(item_count), 0),
		       COUNT(DISTINCT region),
		       COUNT(DISTINCT CASE WHEN municipality <> '' THEN municipality END),
		       MAX(year)
		FROM price_lists
	`).Scan(&stats.TotalPriceLists, &stats.TotalItems, &stats.RegionsCount, &stats.MunicipalitiesCount, &latest)
	if err != nil {
		return nil, err
	}

	if latest.Valid {
		stats.LatestYear = int(latest.Int64)
	} else {
		stats.LatestYear = time.Now().Year()
	}
	return &stats, nil
}

// Categories returns the distinct item categories, sorted lexicographically.
func (s *PriceListStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT category FROM price_list_items ORDER BY category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// findItems returns the items of one price list in import order.
func (s *PriceListStore) findItems(ctx context.Context, listID string) ([]*prezzario.PriceListItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, code, description, unit, price, category, region, municipality, year
		FROM price_list_items
		WHERE price_list_id = ?
		ORDER BY position
	`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*prezzario.PriceListItem
	for rows.Next() {
		var item prezzario.PriceListItem
		if err := rows.Scan(&item.ID, &item.Code, &item.Description, &item.Unit, &item.Price,
			&item.Category, &item.Region, &item.Municipality, &item.Year); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
