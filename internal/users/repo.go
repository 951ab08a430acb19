package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caterstock/caterstock-backend/pkg/db/models"
)

// Repository exposes persistence helpers for team members.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error)
	GetByLineID(ctx context.Context, lineID string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, now time.Time) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a users repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repositoryImpl) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error) {
	result := make(map[uuid.UUID]models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, user := range rows {
		result[user.ID] = user
	}
	return result, nil
}

func (r *repositoryImpl) GetByLineID(ctx context.Context, lineID string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "line_id = ?", lineID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repositoryImpl) TouchLastLogin(ctx context.Context, id uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", now).Error
}
