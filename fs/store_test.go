package fs_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxsviluppo/prezzario"
	"github.com/maxsviluppo/prezzario/fs"
)

func newList(id, region, municipality string, year int, categories ...string) *prezzario.PriceList {
	items := make([]*prezzario.PriceListItem, len(categories))
	for i, cat := range categories {
		items[i] = &prezzario.PriceListItem{
			ID:           id + "-it-" + cat,
			Code:         "A.0" + cat,
			Description:  "Voce " + cat,
			Unit:         "cad",
			Price:        float64(i + 1),
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
		ImportDate:   time.Now().UTC(),
		ItemCount:    len(items),
		Items:        items,
	}
}

func openStore(t *testing.T) *fs.Store {
	t.Helper()
	store := fs.NewStore(filepath.Join(t.TempDir(), "pricelists.json"))
	require.NoError(t, store.Open())
	return store
}

func TestStore_CreateAndFind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	pl := newList("pl-1", "Lazio", "Roma", 2024, "Scavi")
	require.NoError(t, store.CreatePriceList(ctx, pl))

	got, err := store.FindPriceListByID(ctx, "pl-1")
	require.NoError(t, err)
	assert.Equal(t, "Prezzario Lazio", got.Name)

	_, err = store.FindPriceListByID(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, prezzario.ENOTFOUND, prezzario.ErrorCode(err))
}

func TestStore_Create_RejectsInvalid(t *testing.T) {
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

func TestStore_Stats(t *testing.T) {
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

func TestStore_Stats_Empty(t *testing.T) {
	t.Parallel()

	stats, err := openStore(t).Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalPriceLists)
	assert.Equal(t, time.Now().Year(), stats.LatestYear)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.CreatePriceList(ctx, newList("pl-1", "Lazio", "Roma", 2024, "Scavi")))
	require.NoError(t, store.CreatePriceList(ctx, newList("pl-2", "Veneto", "", 2024, "Murature")))

	require.NoError(t, store.DeletePriceList(ctx, "pl-1"))

	_, err := store.FindPriceListByID(ctx, "pl-1")
	assert.Equal(t, prezzario.ENOTFOUND, prezzario.ErrorCode(err))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalPriceLists)
	assert.Equal(t, 1, stats.TotalItems)
}

func TestStore_Delete_UnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.CreatePriceList(ctx, newList("pl-1", "Lazio", "Roma", 2024, "Scavi")))
	require.NoError(t, store.DeletePriceList(ctx, "does-not-exist"))

	lists, err := store.FindPriceLists(ctx)
	require.NoError(t, err)
	assert.Len(t, lists, 1)
}

func TestStore_Categories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.CreatePriceList(ctx, newList("pl-1", "Lazio", "", 2024, "Scavi", "Demolizioni")))
	require.NoError(t, store.CreatePriceList(ctx, newList("pl-2", "Veneto", "", 2024, "Scavi")))

	got, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Demolizioni", "Scavi"}, got)

	// Idempotent without intervening mutations.
	again, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestStore_ReloadRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pricelists.json")

	store := fs.NewStore(path)
	require.NoError(t, store.Open())
	require.NoError(t, store.CreatePriceList(ctx, newList("pl-1", "Lazio", "Roma", 2024, "Scavi")))

	reopened := fs.NewStore(path)
	require.NoError(t, reopened.Open())

	got, err := reopened.FindPriceListByID(ctx, "pl-1")
	require.NoError(t, err)
	assert.Equal(t, "Lazio", got.Region)
	assert.Equal(t, 1, got.ItemCount)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Scavi", got.Items[0].Category)
}
