package goods

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caterstock/caterstock-backend/pkg/db/models"
	"github.com/caterstock/caterstock-backend/pkg/enums"
)

// Repository exposes persistence helpers for the tracked-good catalog.
type Repository interface {
	Create(ctx context.Context, good *models.Good) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Good, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Good, error)
	List(ctx context.Context) ([]models.Good, error)
	ListByCategory(ctx context.Context, category enums.GoodCategory) ([]models.Good, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a goods repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Create(ctx context.Context, good *models.Good) error {
	return r.db.WithContext(ctx).Create(good).Error
}

func (r *repositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Good, error) {
	var good models.Good
	if err := r.db.WithContext(ctx).First(&good, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &good, nil
}

func (r *repositoryImpl) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Good, error) {
	result := make(map[uuid.UUID]models.Good, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var goods []models.Good
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&goods).Error; err != nil {
		return nil, err
	}
	for _, good := range goods {
		result[good.ID] = good
	}
	return result, nil
}

func (r *repositoryImpl) List(ctx context.Context) ([]models.Good, error) {
	var goods []models.Good
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&goods).Error; err != nil {
		return nil, err
	}
	return goods, nil
}

func (r *repositoryImpl) ListByCategory(ctx context.Context, category enums.GoodCategory) ([]models.Good, error) {
	var goods []models.Good
	if err := r.db.WithContext(ctx).Where("category = ?", category).Order("name ASC").Find(&goods).Error; err != nil {
		return nil, err
	}
	return goods, nil
}
