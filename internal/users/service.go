package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caterstock/caterstock-backend/pkg/db"
	"github.com/caterstock/caterstock-backend/pkg/db/models"
	"github.com/caterstock/caterstock-backend/pkg/enums"
	pkgerrors "github.com/caterstock/caterstock-backend/pkg/errors"
)

// Identity is the resolved view of a caller consumed by the rest of the core.
type Identity struct {
	ID          uuid.UUID      `json:"id"`
	DisplayName string         `json:"displayName"`
	Role        enums.UserRole `json:"role"`
}

// Service resolves and links team members.
type Service interface {
	Resolve(ctx context.Context, userID uuid.UUID) (*Identity, error)
	FindOrCreateByLineID(ctx context.Context, lineID, displayName string) (*models.User, error)
}

type service struct {
	repo Repository
}

// NewService wires user dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "users repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Resolve(ctx context.Context, userID uuid.UUID) (*Identity, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return &Identity{ID: user.ID, DisplayName: user.Name, Role: user.Role}, nil
}

// FindOrCreateByLineID links a LINE identity to a local account, creating a
// worker account on first login.
func (s *service) FindOrCreateByLineID(ctx context.Context, lineID, displayName string) (*models.User, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "line id is required")
	}

	now := time.Now().UTC()

	user, err := s.repo.GetByLineID(ctx, lineID)
	if err == nil {
		if touchErr := s.repo.TouchLastLogin(ctx, user.ID, now); touchErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, touchErr, "update last login")
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user by line id")
	}

	name := strings.TrimSpace(displayName)
	if name == "" {
		name = "LINE user"
	}
	user = &models.User{
		Name:        name,
		Role:        enums.UserRoleWorker,
		LineID:      &lineID,
		LastLoginAt: &now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// Two first logins racing on the same LINE account: the loser
		// re-reads the row the winner created.
		if db.IsUniqueViolation(err, "") {
			if existing, findErr := s.repo.GetByLineID(ctx, lineID); findErr == nil {
				return existing, nil
			}
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}
	return user, nil
}
