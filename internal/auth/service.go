package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/caterstock/caterstock-backend/pkg/auth"
	"github.com/caterstock/caterstock-backend/pkg/auth/session"
	"github.com/caterstock/caterstock-backend/pkg/config"
	"github.com/caterstock/caterstock-backend/pkg/db/models"
	"github.com/caterstock/caterstock-backend/pkg/enums"
	pkgerrors "github.com/caterstock/caterstock-backend/pkg/errors"
	"github.com/caterstock/caterstock-backend/pkg/line"
)

type lineClient interface {
	AuthorizeURL(state string) (string, error)
	ExchangeCode(ctx context.Context, code string) (*line.TokenResponse, error)
	GetProfile(ctx context.Context, accessToken string) (*line.Profile, error)
}

type userLinker interface {
	FindOrCreateByLineID(ctx context.Context, lineID, displayName string) (*models.User, error)
}

type sessionRegistrar interface {
	Register(ctx context.Context, accessID string, userID uuid.UUID) error
}

// LoginResult is returned to the HTTP layer after a completed LINE callback.
type LoginResult struct {
	AccessToken string         `json:"accessToken"`
	UserID      uuid.UUID      `json:"userId"`
	Name        string         `json:"name"`
	Role        enums.UserRole `json:"role"`
}

// Service runs the LINE Login flow and mints API tokens.
type Service interface {
	LoginURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*LoginResult, error)
}

type service struct {
	line     lineClient
	users    userLinker
	sessions sessionRegistrar
	jwtCfg   config.JWTConfig
}

// ServiceParams wires the auth service dependencies.
type ServiceParams struct {
	Line      lineClient
	Users     userLinker
	Sessions  sessionRegistrar
	JWTConfig config.JWTConfig
}

// NewService wires auth dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Line == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "line client required")
	}
	if params.Users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "user linker required")
	}
	if params.Sessions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "session registrar required")
	}
	if params.JWTConfig.Secret == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "jwt secret required")
	}
	return &service{
		line:     params.Line,
		users:    params.Users,
		sessions: params.Sessions,
		jwtCfg:   params.JWTConfig,
	}, nil
}

func (s *service) LoginURL(state string) (string, error) {
	url, err := s.line.AuthorizeURL(state)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build line authorize url")
	}
	return url, nil
}

func (s *service) HandleCallback(ctx context.Context, code string) (*LoginResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "authorization code is required")
	}

	token, err := s.line.ExchangeCode(ctx, code)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "exchange authorization code")
	}

	profile, err := s.line.GetProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "fetch line profile")
	}

	user, err := s.users.FindOrCreateByLineID(ctx, profile.UserID, profile.DisplayName)
	if err != nil {
		return nil, err
	}

	accessID := session.NewAccessID()
	signed, err := auth.MintAccessToken(s.jwtCfg, time.Now().UTC(), auth.AccessTokenPayload{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	if err := s.sessions.Register(ctx, accessID, user.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "register session")
	}

	return &LoginResult{
		AccessToken: signed,
		UserID:      user.ID,
		Name:        user.Name,
		Role:        user.Role,
	}, nil
}
