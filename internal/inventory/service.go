package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caterstock/caterstock-backend/internal/alerts"
	"github.com/caterstock/caterstock-backend/pkg/db/models"
	"github.com/caterstock/caterstock-backend/pkg/enums"
	pkgerrors "github.com/caterstock/caterstock-backend/pkg/errors"
	"github.com/caterstock/caterstock-backend/pkg/logger"
	"github.com/caterstock/caterstock-backend/pkg/pagination"
)

type goodsReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Good, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Good, error)
}

type usersReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error)
}

type alertSink interface {
	Enqueue(message string)
}

// Service is the write path and status/history read surface for observations.
type Service interface {
	RecordLevel(ctx context.Context, goodID uuid.UUID, level enums.ObservationLevel, observerID uuid.UUID) (*models.Observation, error)
	RecordQuantity(ctx context.Context, goodID uuid.UUID, quantity int, observerID uuid.UUID) (*models.Observation, error)
	CurrentStatus(ctx context.Context) ([]GoodStatus, error)
	History(ctx context.Context, params HistoryParams) ([]HistoryEntry, error)
}

type service struct {
	repo       Repository
	goods      goodsReader
	users      usersReader
	dispatcher alertSink
	logg       *logger.Logger
}

// ServiceParams wires the inventory service dependencies. Dispatcher may be
// nil when alerting is disabled; the write path then skips alert evaluation.
type ServiceParams struct {
	Repo       Repository
	Goods      goodsReader
	Users      usersReader
	Dispatcher alertSink
	Logger     *logger.Logger
}

// NewService wires inventory dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "observation repository required")
	}
	if params.Goods == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "goods reader required")
	}
	if params.Users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "users reader required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &service{
		repo:       params.Repo,
		goods:      params.Goods,
		users:      params.Users,
		dispatcher: params.Dispatcher,
		logg:       params.Logger,
	}, nil
}

func (s *service) RecordLevel(ctx context.Context, goodID uuid.UUID, level enums.ObservationLevel, observerID uuid.UUID) (*models.Observation, error) {
	if !level.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid observation level")
	}
	return s.record(ctx, goodID, LevelMeasurement(level), observerID)
}

func (s *service) RecordQuantity(ctx context.Context, goodID uuid.UUID, quantity int, observerID uuid.UUID) (*models.Observation, error) {
	if quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}
	return s.record(ctx, goodID, QuantityMeasurement(quantity), observerID)
}

func (s *service) record(ctx context.Context, goodID uuid.UUID, measurement Measurement, observerID uuid.UUID) (*models.Observation, error) {
	good, err := s.goods.GetByID(ctx, goodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "good not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load good")
	}

	observer, err := s.users.GetByID(ctx, observerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "observer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load observer")
	}

	if measurement.Discipline() != good.Discipline {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "measurement kind does not match the good's discipline")
	}

	observation := &models.Observation{
		GoodID:     good.ID,
		RecordedBy: observer.ID,
		RecordedAt: time.Now().UTC(),
	}
	switch measurement.Discipline() {
	case enums.DisciplineThreeLevel:
		level := measurement.Level()
		observation.Level = &level
	case enums.DisciplineNumericThreshold:
		quantity := measurement.Quantity()
		observation.Quantity = &quantity
	}

	if err := s.repo.Insert(ctx, observation); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert observation")
	}

	s.evaluateAlert(ctx, good, observation, observer)

	return observation, nil
}

// evaluateAlert runs the alert decision after a committed write. Nothing here
// may fail the caller: classification problems are logged and dispatch is
// fire-and-forget.
func (s *service) evaluateAlert(ctx context.Context, good *models.Good, observation *models.Observation, observer *models.User) {
	if s.dispatcher == nil {
		return
	}

	status, err := s.classify(good, observation)
	if err != nil {
		ctx = s.logg.WithGoodID(ctx, good.ID.String())
		s.logg.Error(ctx, "alert evaluation skipped: good configuration unusable", err)
		return
	}
	if !status.NeedsAlert() {
		return
	}

	message := alerts.Compose(alerts.ComposeInput{
		Good:        *good,
		Status:      status,
		Level:       observation.Level,
		Quantity:    observation.Quantity,
		ObserverName: observer.Name,
		RecordedAt:  observation.RecordedAt,
	})
	s.dispatcher.Enqueue(message)
}

// classify dispatches on the good's discipline; an explicit switch, not row
// subtyping.
func (s *service) classify(good *models.Good, observation *models.Observation) (enums.StockStatus, error) {
	switch good.Discipline {
	case enums.DisciplineThreeLevel:
		if observation.Level == nil {
			return "", pkgerrors.New(pkgerrors.CodeValidation, "three-level observation missing level")
		}
		return ClassifyThreeLevel(*observation.Level), nil
	case enums.DisciplineNumericThreshold:
		if observation.Quantity == nil {
			return "", pkgerrors.New(pkgerrors.CodeValidation, "numeric observation missing quantity")
		}
		if good.ThresholdLow == nil || good.ThresholdHigh == nil {
			return "", pkgerrors.New(pkgerrors.CodeValidation, "numeric good missing threshold configuration")
		}
		return ClassifyNumeric(*observation.Quantity, *good.ThresholdLow, *good.ThresholdHigh)
	default:
		return "", pkgerrors.New(pkgerrors.CodeValidation, "unknown measurement discipline")
	}
}

// CurrentStatus re-derives the dashboard view from the observation log. Goods
// that have never been observed are omitted; there is no "unknown" status.
func (s *service) CurrentStatus(ctx context.Context) ([]GoodStatus, error) {
	observations, err := s.repo.LatestPerGood(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load latest observations")
	}
	if len(observations) == 0 {
		return []GoodStatus{}, nil
	}

	goodIDs := make([]uuid.UUID, 0, len(observations))
	userIDs := make([]uuid.UUID, 0, len(observations))
	for _, observation := range observations {
		goodIDs = append(goodIDs, observation.GoodID)
		userIDs = append(userIDs, observation.RecordedBy)
	}

	goodsByID, err := s.goods.GetByIDs(ctx, goodIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load goods")
	}
	usersByID, err := s.users.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load observers")
	}

	statuses := make([]GoodStatus, 0, len(observations))
	for _, observation := range observations {
		good, ok := goodsByID[observation.GoodID]
		if !ok {
			continue
		}

		status, err := s.classify(&good, &observation)
		if err != nil {
			return nil, err
		}

		entry := GoodStatus{
			Good:            good,
			CurrentQuantity: observation.Quantity,
			CurrentLevel:    observation.Level,
			Status:          status,
			LastUpdated:     observation.RecordedAt,
		}
		if observer, ok := usersByID[observation.RecordedBy]; ok {
			entry.UpdatedByName = observer.Name
		}
		statuses = append(statuses, entry)
	}

	return statuses, nil
}

func (s *service) History(ctx context.Context, params HistoryParams) ([]HistoryEntry, error) {
	query := historyQueryParams{
		GoodID: params.GoodID,
		Limit:  pagination.NormalizeLimit(params.Limit),
	}

	observations, err := s.repo.History(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load history")
	}
	if len(observations) == 0 {
		return []HistoryEntry{}, nil
	}

	goodIDs := make([]uuid.UUID, 0, len(observations))
	userIDs := make([]uuid.UUID, 0, len(observations))
	for _, observation := range observations {
		goodIDs = append(goodIDs, observation.GoodID)
		userIDs = append(userIDs, observation.RecordedBy)
	}

	goodsByID, err := s.goods.GetByIDs(ctx, goodIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load goods")
	}
	usersByID, err := s.users.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load observers")
	}

	entries := make([]HistoryEntry, 0, len(observations))
	for _, observation := range observations {
		entry := HistoryEntry{Observation: observation}
		if good, ok := goodsByID[observation.GoodID]; ok {
			entry.GoodName = good.Name
		}
		if observer, ok := usersByID[observation.RecordedBy]; ok {
			entry.RecordedBy = observer.Name
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
