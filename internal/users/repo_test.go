package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/caterstock/caterstock-backend/pkg/db/models"
	"github.com/caterstock/caterstock-backend/pkg/enums"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  role TEXT NOT NULL,
  line_id TEXT UNIQUE,
  last_login_at DATETIME,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(users).Error)

	return db
}

func TestUsersRepositoryRoundTrip(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	lineID := "U-roundtrip"
	user := &models.User{ID: uuid.New(), Name: "Taro", Role: enums.UserRoleWorker, LineID: &lineID}
	require.NoError(t, repo.Create(context.Background(), user))

	byID, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, "Taro", byID.Name)

	byLine, err := repo.GetByLineID(context.Background(), lineID)
	require.NoError(t, err)
	require.Equal(t, user.ID, byLine.ID)
}

func TestUsersRepositoryGetByLineIDMissing(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetByLineID(context.Background(), "U-missing")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUsersRepositoryTouchLastLogin(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	user := &models.User{ID: uuid.New(), Name: "Hana", Role: enums.UserRoleAdmin}
	require.NoError(t, repo.Create(context.Background(), user))
	require.Nil(t, user.LastLoginAt)

	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.TouchLastLogin(context.Background(), user.ID, now))

	got, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
	require.True(t, got.LastLoginAt.Equal(now))
}

func TestUsersRepositoryGetByIDs(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	a := &models.User{ID: uuid.New(), Name: "A", Role: enums.UserRoleWorker}
	b := &models.User{ID: uuid.New(), Name: "B", Role: enums.UserRoleWorker}
	require.NoError(t, repo.Create(context.Background(), a))
	require.NoError(t, repo.Create(context.Background(), b))

	result, err := repo.GetByIDs(context.Background(), []uuid.UUID{a.ID, b.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, "A", result[a.ID].Name)
}
