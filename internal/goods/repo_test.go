package goods

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/caterstock/caterstock-backend/pkg/db/models"
	"github.com/caterstock/caterstock-backend/pkg/enums"
)

func setupGoodsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	goods := `
CREATE TABLE IF NOT EXISTS goods (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  unit TEXT NOT NULL,
  category TEXT NOT NULL,
  discipline TEXT NOT NULL,
  threshold_low INTEGER,
  threshold_high INTEGER,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(goods).Error)

	return db
}

func createGood(t *testing.T, repo Repository, name string, category enums.GoodCategory) *models.Good {
	t.Helper()
	good := &models.Good{
		ID:         uuid.New(),
		Name:       name,
		Unit:       "pcs",
		Category:   category,
		Discipline: enums.DisciplineNumericThreshold,

		ThresholdLow:  intPtr(5),
		ThresholdHigh: intPtr(50),
	}
	require.NoError(t, repo.Create(context.Background(), good))
	return good
}

func TestGoodsRepositoryRoundTrip(t *testing.T) {
	db := setupGoodsTestDB(t)
	repo := NewRepository(db)

	created := createGood(t, repo, "Eggs-roundtrip", enums.GoodCategoryFood)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Name, got.Name)
	require.NotNil(t, got.ThresholdLow)
	require.Equal(t, 5, *got.ThresholdLow)
	require.Equal(t, enums.DisciplineNumericThreshold, got.Discipline)
}

func TestGoodsRepositoryGetByIDMissing(t *testing.T) {
	db := setupGoodsTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGoodsRepositoryGetByIDs(t *testing.T) {
	db := setupGoodsTestDB(t)
	repo := NewRepository(db)

	a := createGood(t, repo, "Milk-batch", enums.GoodCategoryFood)
	b := createGood(t, repo, "Bread-batch", enums.GoodCategoryFood)

	result, err := repo.GetByIDs(context.Background(), []uuid.UUID{a.ID, b.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, a.Name, result[a.ID].Name)
	require.Equal(t, b.Name, result[b.ID].Name)

	empty, err := repo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestGoodsRepositoryListByCategory(t *testing.T) {
	db := setupGoodsTestDB(t)
	repo := NewRepository(db)

	createGood(t, repo, "Rice-cat", enums.GoodCategoryFood)
	drink := createGood(t, repo, "Tea-cat", enums.GoodCategoryDrink)

	result, err := repo.ListByCategory(context.Background(), enums.GoodCategoryDrink)
	require.NoError(t, err)

	found := false
	for _, good := range result {
		require.Equal(t, enums.GoodCategoryDrink, good.Category)
		if good.ID == drink.ID {
			found = true
		}
	}
	require.True(t, found, "created drink should be listed")
}
