package inventory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caterstock/caterstock-backend/pkg/db/models"
)

// Repository exposes the append-only observation store.
type Repository interface {
	Insert(ctx context.Context, observation *models.Observation) error
	LatestPerGood(ctx context.Context) ([]models.Observation, error)
	History(ctx context.Context, params historyQueryParams) ([]models.Observation, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an observation repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

type historyQueryParams struct {
	GoodID *uuid.UUID
	Limit  int
}

func (r *repositoryImpl) Insert(ctx context.Context, observation *models.Observation) error {
	return r.db.WithContext(ctx).Create(observation).Error
}

// LatestPerGood returns the newest observation of every good that has one,
// ordered inside each good by (recorded_at, id) so concurrent writers with
// equal timestamps resolve to the later insert. The correlated subquery runs
// unchanged on Postgres and on the sqlite test driver.
func (r *repositoryImpl) LatestPerGood(ctx context.Context) ([]models.Observation, error) {
	var observations []models.Observation
	err := r.db.WithContext(ctx).
		Where(`observations.id = (
			SELECT o2.id FROM observations o2
			WHERE o2.good_id = observations.good_id
			ORDER BY o2.recorded_at DESC, o2.id DESC
			LIMIT 1
		)`).
		Find(&observations).Error
	if err != nil {
		return nil, err
	}
	return observations, nil
}

func (r *repositoryImpl) History(ctx context.Context, params historyQueryParams) ([]models.Observation, error) {
	query := r.db.WithContext(ctx).Model(&models.Observation{})
	if params.GoodID != nil {
		query = query.Where("good_id = ?", *params.GoodID)
	}

	var observations []models.Observation
	if err := query.Order("recorded_at DESC, id DESC").Limit(params.Limit).Find(&observations).Error; err != nil {
		return nil, err
	}
	return observations, nil
}
