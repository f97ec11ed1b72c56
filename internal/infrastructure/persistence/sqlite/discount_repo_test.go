package sqlite_test

import (
	"context"
	"testing"

	"github.com/merchkit/combobuilder/internal/domain/entity"
	"github.com/merchkit/combobuilder/internal/domain/repository"
	"github.com/merchkit/combobuilder/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountRepo_AddAssignsMaxPlusOne(t *testing.T) {
	repo := sqlite.NewDiscountRepository(setupDB(t))
	ctx := context.Background()

	first := entity.NewDiscount("Launch Promo", entity.DiscountPercentage, 15)
	require.NoError(t, repo.Add(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	second := entity.NewDiscount("Winter Promo", entity.DiscountFixed, 200)
	require.NoError(t, repo.Add(ctx, second))
	assert.Equal(t, int64(2), second.ID)

	// Deleting the newest record frees its slot for the next insert.
	require.NoError(t, repo.Delete(ctx, second.ID))
	next, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), next)
}

func TestDiscountRepo_NewRecordStartsUnlimited(t *testing.T) {
	repo := sqlite.NewDiscountRepository(setupDB(t))
	ctx := context.Background()

	d := entity.NewDiscount("Flash Sale", entity.DiscountPercentage, 30)
	require.NoError(t, repo.Add(ctx, d))

	got, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "0 / Unlimited", got.Usage)
	assert.Equal(t, entity.DiscountActive, got.Status)
}

func TestDiscountRepo_ListActiveFilters(t *testing.T) {
	repo := sqlite.NewDiscountRepository(setupDB(t))
	ctx := context.Background()

	active := entity.NewDiscount("Active", entity.DiscountPercentage, 10)
	require.NoError(t, repo.Add(ctx, active))

	scheduled := entity.NewDiscount("Scheduled", entity.DiscountPercentage, 25)
	scheduled.Status = entity.DiscountScheduled
	require.NoError(t, repo.Add(ctx, scheduled))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	actives, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, actives, 1)
	assert.Equal(t, "Active", actives[0].Title)
}

func TestDiscountRepo_PartialUpdate(t *testing.T) {
	repo := sqlite.NewDiscountRepository(setupDB(t))
	ctx := context.Background()

	d := entity.NewDiscount("Original", entity.DiscountPercentage, 10)
	require.NoError(t, repo.Add(ctx, d))

	status := entity.DiscountInactive
	require.NoError(t, repo.Update(ctx, d.ID, repository.DiscountUpdate{Status: &status}))

	got, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DiscountInactive, got.Status)
	assert.Equal(t, "Original", got.Title, "unset fields stay put")
	assert.Equal(t, float64(10), got.Value)

	title := "Renamed"
	value := 12.5
	require.NoError(t, repo.Update(ctx, d.ID, repository.DiscountUpdate{Title: &title, Value: &value}))

	got, err = repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, 12.5, got.Value)
	assert.Equal(t, entity.DiscountInactive, got.Status)
}

func TestDiscountRepo_UpdateMissing(t *testing.T) {
	repo := sqlite.NewDiscountRepository(setupDB(t))
	title := "Ghost"
	err := repo.Update(context.Background(), 99, repository.DiscountUpdate{Title: &title})
	require.ErrorIs(t, err, entity.ErrDiscountNotFound)
}

func TestDiscountRepo_DeleteMissing(t *testing.T) {
	repo := sqlite.NewDiscountRepository(setupDB(t))
	err := repo.Delete(context.Background(), 99)
	require.ErrorIs(t, err, entity.ErrDiscountNotFound)
}
