package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/maxsviluppo/prezzario"
	main "github.com/maxsviluppo/prezzario/cmd/prezzario"
	"github.com/maxsviluppo/prezzario/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(store *mock.PriceListStore) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Store:  store,
	}, stdout, stderr
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists price lists with ID, name, region and item count", func(t *testing.T) {
		t.Parallel()

		store := &mock.PriceListStore{
			FindPriceListsFn: func(ctx context.Context) ([]*prezzario.PriceList, error) {
				return []*prezzario.PriceList{
					{ID: "pl-123", Name: "Prezzario Lombardia", Region: "lombardia", Year: 2024, ItemCount: 1200},
					{ID: "pl-456", Name: "Prezzario Lazio", Region: "lazio", Year: 2023, ItemCount: 800},
				}, nil
			},
		}
		deps, stdout, _ := newDeps(store)

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "pl-123")
		assert.Contains(t, output, "Prezzario Lombardia")
		assert.Contains(t, output, "lombardia 2024")
		assert.Contains(t, output, "1200 items")
		assert.Contains(t, output, "pl-456")
	})

	t.Run("empty store prints hint", func(t *testing.T) {
		t.Parallel()

		store := &mock.PriceListStore{
			FindPriceListsFn: func(ctx context.Context) ([]*prezzario.PriceList, error) {
				return nil, nil
			},
		}
		deps, stdout, _ := newDeps(store)

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No price lists found")
	})

	t.Run("store error goes to stderr", func(t *testing.T) {
		t.Parallel()

		store := &mock.PriceListStore{
			FindPriceListsFn: func(ctx context.Context) ([]*prezzario.PriceList, error) {
				return nil, prezzario.Errorf(prezzario.EINTERNAL, "store corrupted")
			},
		}
		deps, _, stderr := newDeps(store)

		cmd := &main.ListCmd{}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "store corrupted")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(&mock.PriceListStore{})

		cmd := &main.DeleteCmd{ID: "pl-123"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, prezzario.EINVALID, prezzario.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes with force", func(t *testing.T) {
		t.Parallel()

		var deleted string
		store := &mock.PriceListStore{
			DeletePriceListFn: func(ctx context.Context, id string) error {
				deleted = id
				return nil
			},
		}
		deps, stdout, _ := newDeps(store)

		cmd := &main.DeleteCmd{ID: "pl-123", Force: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "pl-123", deleted)
		assert.Contains(t, stdout.String(), "Deleted price list")
	})
}

func TestStatsCmd_Run(t *testing.T) {
	t.Parallel()

	store := &mock.PriceListStore{
		StatsFn: func(ctx context.Context) (*prezzario.StoreStats, error) {
			return &prezzario.StoreStats{
				TotalPriceLists:     2,
				TotalItems:          2000,
				RegionsCount:        2,
				MunicipalitiesCount: 1,
				LatestYear:          2024,
			}, nil
		},
	}
	deps, stdout, _ := newDeps(store)

	cmd := &main.StatsCmd{}
	require.NoError(t, cmd.Run(deps))

	output := stdout.String()
	assert.Contains(t, output, "Price lists:    2")
	assert.Contains(t, output, "Items:          2000")
	assert.Contains(t, output, "Latest year:    2024")
}

func TestCategoriesCmd_Run(t *testing.T) {
	t.Parallel()

	store := &mock.PriceListStore{
		CategoriesFn: func(ctx context.Context) ([]string, error) {
			return []string{"Murature", "Scavi"}, nil
		},
	}
	deps, stdout, _ := newDeps(store)

	cmd := &main.CategoriesCmd{}
	require.NoError(t, cmd.Run(deps))

	output := stdout.String()
	assert.Contains(t, output, "Murature")
	assert.Contains(t, output, "Scavi")
}
