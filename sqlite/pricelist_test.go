package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxsviluppo/prezzario"
	"github.com/maxsviluppo/prezzario/sqlite"
)

func openStore(t *testing.T) *sqlite.PriceListStore {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewPriceListStore(db)
}

func newList(id, region, municipality string, year int, categories ...string) *prezzario.PriceList {
	items := make([]*prezzario.PriceListItem, len(categories))
	for i, cat := range categories {
		items[i] = &prezzario.PriceListItem{
			ID:           id + "-it-" + cat,
			Code:         "A." + cat,
			Description:  "Voce " + cat,
			Unit:         "cad",
			Price:        float64(i+1) * 2.5,
			Category:     cat,
			Region:       region,
			Municipality: municipality,
			Year:         year,
		}
	}
	return &prezzario.PriceList{
		ID:           id,
		Name:         "Prezzario " + region,
		Region:       region,
		Municipality: municipality,
		Year:         year,
		Source:       "test.csv",
		SourceHash:   "abc123",
		ImportDate:   time.Now().UTC().Truncate(time.Second),
		ItemCount:    len(items),
		Items:        items,
	}
}

func TestPriceListStore_CreateAndFind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	pl := newList("pl-1", "Lazio", "Roma", 2024, "Scavi", "Demolizioni")
	require.NoError(t, store.CreatePriceList(ctx, pl))

	got, err := store.FindPriceListByID(ctx, "pl-1")
	require.NoError(t, err)
	assert.Equal(t, pl.Name, got.Name)
	assert.Equal(t, pl.ImportDate, got.ImportDate)
	assert.Equal(t, "abc123", got.SourceHash)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Scavi", got.Items[0].Category)
	assert.Equal(t, "Demolizioni", got.Items[1].Category)

	_, err = store.FindPriceListByID(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, prezzario.ENOTFOUND, prezzario.ErrorCode(err))
}

func TestPriceListStore_Create_RejectsInvalid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	pl := newList("pl-1", "Lazio", "", 2024, "Scavi")
	pl.ItemCount = 99

	err := store.CreatePriceList(ctx, pl)
	require.Error(t, err)
	assert.Equal(t, prezzario.EINVALID, prezzario.ErrorCode(err))

	lists, err := store.FindPriceLists(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestPriceListStore_FindPriceLists_InsertionOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.CreatePriceList(ctx, newList("pl-b", "Veneto", "", 2023, "Murature")))
	require.NoError(t, store.CreatePriceList(ctx, newList("pl-a", "Lazio", "Roma", 2024, "Scavi")))

	lists, err := store.FindPriceLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "pl-b", lists[0].ID)
	assert.Equal(t, "pl-a", lists[1].ID)
	require.Len(t, lists[0].Items, 1)
}

func TestPriceListStore_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.CreatePriceList(ctx, newList("pl-1", "Lazio", "Roma", 2024, "Scavi")))
	require.NoError(t, store.DeletePriceList(ctx, "pl-1"))

	_, err := store.FindPriceListByID(ctx, "pl-1")
	assert.Equal(t, prezzario.ENOTFOUND, prezzario.ErrorCode(err))

	// Items are removed with the list.
	cats, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestPriceListStore_Delete_UnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	require.NoError(t, openStore(t).DeletePriceList(context.Background(), "does-not-exist"))
}

func TestPriceListStore_Stats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.CreatePriceList(ctx, newList("pl-1", "Lazio", "Roma", 2023, "Scavi", "Demolizioni")))
	require.NoError(t, store.CreatePriceList(ctx, newList("pl-2", "Veneto", "", 2024, "Murature")))
	require.NoError(t, store.CreatePriceList(ctx, newList("pl-3", "Lazio", "Roma", 2022, "Scavi")))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalPriceLists)
	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 2, stats.RegionsCount)
	assert.Equal(t, 1, stats.MunicipalitiesCount)
	assert.Equal(t, 2024, stats.LatestYear)
}

func TestPriceListStore_Stats_Empty(t *testing.T) {
	t.Parallel()

	stats, err := openStore(t).Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalPriceLists)
	assert.Equal(t, time.Now().Year(), stats.LatestYear)
}

func TestPriceListStore_Categories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.CreatePriceList(ctx, newList("pl-1", "Lazio", "", 2024, "Scavi", "Demolizioni")))
	require.NoError(t, store.CreatePriceList(ctx, newList("pl-2", "Veneto", "", 2024, "Scavi")))

	got, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Demolizioni", "Scavi"}, got)
}
