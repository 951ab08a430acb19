package goods

import (
	"context"
	"strings"

	"github.com/caterstock/caterstock-backend/pkg/db/models"
	"github.com/caterstock/caterstock-backend/pkg/enums"
	pkgerrors "github.com/caterstock/caterstock-backend/pkg/errors"
)

// CreateInput describes a new tracked good. The threshold pair is required
// for numeric goods and forbidden for three-level ones.
type CreateInput struct {
	Name          string
	Unit          string
	Category      enums.GoodCategory
	Discipline    enums.Discipline
	ThresholdLow  *int
	ThresholdHigh *int
}

// Service manages the tracked-good catalog.
type Service interface {
	Create(ctx context.Context, actorRole enums.UserRole, input CreateInput) (*models.Good, error)
	List(ctx context.Context) ([]models.Good, error)
	ListByCategory(ctx context.Context, category enums.GoodCategory) ([]models.Good, error)
}

type service struct {
	repo Repository
}

// NewService wires catalog dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "goods repository required")
	}
	return &service{repo: repo}, nil
}

// Create inserts a new tracked good. Only admins may extend the catalog.
func (s *service) Create(ctx context.Context, actorRole enums.UserRole, input CreateInput) (*models.Good, error) {
	if actorRole != enums.UserRoleAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only admins may create goods")
	}
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	good := &models.Good{
		Name:          strings.TrimSpace(input.Name),
		Unit:          strings.TrimSpace(input.Unit),
		Category:      input.Category,
		Discipline:    input.Discipline,
		ThresholdLow:  input.ThresholdLow,
		ThresholdHigh: input.ThresholdHigh,
	}
	if err := s.repo.Create(ctx, good); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create good")
	}
	return good, nil
}

func validateCreateInput(input CreateInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if strings.TrimSpace(input.Unit) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "unit is required")
	}
	if !input.Category.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid category")
	}
	if !input.Discipline.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid measurement discipline")
	}

	switch input.Discipline {
	case enums.DisciplineNumericThreshold:
		if input.ThresholdLow == nil || input.ThresholdHigh == nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "numeric goods require both thresholds")
		}
		if *input.ThresholdLow >= *input.ThresholdHigh {
			return pkgerrors.New(pkgerrors.CodeValidation, "low threshold must be strictly below high threshold")
		}
	case enums.DisciplineThreeLevel:
		if input.ThresholdLow != nil || input.ThresholdHigh != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "three-level goods must not carry thresholds")
		}
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]models.Good, error) {
	goods, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list goods")
	}
	return goods, nil
}

func (s *service) ListByCategory(ctx context.Context, category enums.GoodCategory) ([]models.Good, error) {
	if !category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid category")
	}
	goods, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list goods by category")
	}
	return goods, nil
}
