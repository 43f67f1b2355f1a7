package postgre_test

import (
	"context"
	"testing"

	"api-scaffold/internal/item/repository"
	"api-scaffold/internal/item/repository/postgre"
	"api-scaffold/internal/model"
	"api-scaffold/pkg/database"
	pkgErrors "api-scaffold/pkg/errors"
	"api-scaffold/pkg/log"
	"api-scaffold/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	ctx := context.Background()

	db, err := database.Connect(ctx, database.Config{Driver: "sqlite", SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Disconnect(db) })
	require.NoError(t, database.Migrate(ctx, db, model.All()...))

	return postgre.New(db, log.NewNop())
}

func create(t *testing.T, r repository.Repository, names ...string) []model.Item {
	t.Helper()
	var out []model.Item
	for _, n := range names {
		it, err := r.CreateItem(context.Background(), repository.CreateItemOptions{Name: n})
		require.NoError(t, err)
		out = append(out, it)
	}
	return out
}

func TestCreateItem_DefaultsToActive(t *testing.T) {
	r := newRepo(t)

	it, err := r.CreateItem(context.Background(), repository.CreateItemOptions{Name: "desk", Description: "oak"})

	require.NoError(t, err)
	assert.NotZero(t, it.ID)
	assert.Equal(t, model.ItemStatusActive, it.Status)
	assert.False(t, it.CreatedAt.IsZero())
}

func TestGetOneItem_IgnoresSoftDeleted(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	items := create(t, r, "chair")

	_, found, err := r.GetOneItem(ctx, repository.GetOneItemOptions{Name: "chair"})
	require.NoError(t, err)
	assert.True(t, found)

	_, found, err = r.GetOneItem(ctx, repository.GetOneItemOptions{Name: "chair", ExcludeID: items[0].ID})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, r.SoftDeleteItem(ctx, items[0].ID))

	_, found, err = r.GetOneItem(ctx, repository.GetOneItemOptions{Name: "chair"})
	require.NoError(t, err)
	assert.False(t, found)

	_, err = r.DetailItem(ctx, items[0].ID)
	assert.True(t, pkgErrors.Is(err, pkgErrors.KindNotFound))
}

func TestListItems(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	items := create(t, r, "a", "b", "c")
	inactive := model.ItemStatusInactive
	_, err := r.UpdateItem(ctx, repository.UpdateItemOptions{ID: items[1].ID, Status: &inactive})
	require.NoError(t, err)
	require.NoError(t, r.SoftDeleteItem(ctx, items[2].ID))

	res, err := r.ListItems(ctx, repository.ListItemsOptions{Pagination: pagination.New(1, 10)})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pagination.Total)
	assert.Len(t, res.Data, 2)

	res, err = r.ListItems(ctx, repository.ListItemsOptions{Status: model.ItemStatusActive})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "a", res.Data[0].Name)
}

func TestUpdateItemsStatus_RollsBackOnMissingID(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	items := create(t, r, "a", "b")

	_, err := r.UpdateItemsStatus(ctx, repository.UpdateItemsStatusOptions{
		IDs:    []int64{items[0].ID, 999, items[1].ID},
		Status: model.ItemStatusInactive,
	})
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.KindNotFound))

	got, err := r.DetailItem(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.ItemStatusActive, got.Status)

	updated, err := r.UpdateItemsStatus(ctx, repository.UpdateItemsStatusOptions{
		IDs:    []int64{items[0].ID, items[1].ID},
		Status: model.ItemStatusInactive,
	})
	require.NoError(t, err)
	require.Len(t, updated, 2)
	assert.Equal(t, model.ItemStatusInactive, updated[1].Status)
}

func TestUpdateItemsStatus_RollsBackOnForeignItem(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	alice, bob := int64(1), int64(2)
	mine, err := r.CreateItem(ctx, repository.CreateItemOptions{OwnerID: &alice, Name: "mine"})
	require.NoError(t, err)
	theirs, err := r.CreateItem(ctx, repository.CreateItemOptions{OwnerID: &bob, Name: "theirs"})
	require.NoError(t, err)

	_, err = r.UpdateItemsStatus(ctx, repository.UpdateItemsStatusOptions{
		IDs:     []int64{mine.ID, theirs.ID},
		Status:  model.ItemStatusInactive,
		OwnerID: &alice,
	})
	require.Error(t, err)
	assert.True(t, pkgErrors.Is(err, pkgErrors.KindAuthorization))
	assert.Equal(t, theirs.ID, pkgErrors.From(err).Context()["id"])

	got, err := r.DetailItem(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ItemStatusActive, got.Status)

	updated, err := r.UpdateItemsStatus(ctx, repository.UpdateItemsStatusOptions{
		IDs:     []int64{mine.ID},
		Status:  model.ItemStatusInactive,
		OwnerID: &alice,
	})
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, model.ItemStatusInactive, updated[0].Status)
}

func TestCreateItems(t *testing.T) {
	r := newRepo(t)

	items, err := r.CreateItems(context.Background(), []repository.CreateItemOptions{{Name: "x"}, {Name: "y", Status: model.ItemStatusInactive}})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.ItemStatusInactive, items[1].Status)
}
