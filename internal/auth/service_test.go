package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	pkgauth "github.com/caterstock/caterstock-backend/pkg/auth"
	"github.com/caterstock/caterstock-backend/pkg/config"
	"github.com/caterstock/caterstock-backend/pkg/db/models"
	"github.com/caterstock/caterstock-backend/pkg/enums"
	pkgerrors "github.com/caterstock/caterstock-backend/pkg/errors"
	"github.com/caterstock/caterstock-backend/pkg/line"
)

type stubLineClient struct {
	authorizeURL string
	exchangeErr  error
	profileErr   error
	profile      line.Profile
}

func (s *stubLineClient) AuthorizeURL(state string) (string, error) {
	return s.authorizeURL + "?state=" + state, nil
}

func (s *stubLineClient) ExchangeCode(ctx context.Context, code string) (*line.TokenResponse, error) {
	if s.exchangeErr != nil {
		return nil, s.exchangeErr
	}
	return &line.TokenResponse{AccessToken: "line-token"}, nil
}

func (s *stubLineClient) GetProfile(ctx context.Context, accessToken string) (*line.Profile, error) {
	if s.profileErr != nil {
		return nil, s.profileErr
	}
	return &s.profile, nil
}

type stubUserLinker struct {
	user *models.User
	err  error
}

func (s *stubUserLinker) FindOrCreateByLineID(ctx context.Context, lineID, displayName string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type stubSessionRegistrar struct {
	registered []string
	err        error
}

func (s *stubSessionRegistrar) Register(ctx context.Context, accessID string, userID uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.registered = append(s.registered, accessID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "caterstock", ExpirationMinutes: 60}
}

func newAuthFixture(t *testing.T, lineStub *stubLineClient, linker *stubUserLinker, sessions *stubSessionRegistrar) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Line:      lineStub,
		Users:     linker,
		Sessions:  sessions,
		JWTConfig: testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("unexpected error building service: %v", err)
	}
	return svc
}

func TestLoginURL(t *testing.T) {
	t.Parallel()

	svc := newAuthFixture(t,
		&stubLineClient{authorizeURL: "https://access.line.me/authorize"},
		&stubUserLinker{},
		&stubSessionRegistrar{},
	)

	url, err := svc.LoginURL("xyz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://access.line.me/authorize?state=xyz" {
		t.Fatalf("unexpected url: %q", url)
	}
}

func TestHandleCallbackHappyPath(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: uuid.New(), Name: "Taro", Role: enums.UserRoleWorker}
	sessions := &stubSessionRegistrar{}
	svc := newAuthFixture(t,
		&stubLineClient{profile: line.Profile{UserID: "U123", DisplayName: "Taro"}},
		&stubUserLinker{user: user},
		sessions,
	)

	result, err := svc.HandleCallback(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UserID != user.ID || result.Role != enums.UserRoleWorker {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.AccessToken == "" {
		t.Fatal("expected a signed access token")
	}
	if len(sessions.registered) != 1 {
		t.Fatalf("expected one registered session, got %d", len(sessions.registered))
	}

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), result.AccessToken)
	if err != nil {
		t.Fatalf("minted token must parse: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatal("token subject must match the linked user")
	}
	if claims.ID != sessions.registered[0] {
		t.Fatal("token jti must match the registered session")
	}
}

func TestHandleCallbackMissingCode(t *testing.T) {
	t.Parallel()

	svc := newAuthFixture(t, &stubLineClient{}, &stubUserLinker{}, &stubSessionRegistrar{})

	_, err := svc.HandleCallback(context.Background(), "  ")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error code: %v", err)
	}
}

func TestHandleCallbackExchangeFailure(t *testing.T) {
	t.Parallel()

	svc := newAuthFixture(t,
		&stubLineClient{exchangeErr: errors.New("invalid_grant")},
		&stubUserLinker{},
		&stubSessionRegistrar{},
	)

	_, err := svc.HandleCallback(context.Background(), "bad-code")
	if err == nil {
		t.Fatal("expected error for failed exchange")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error code: %v", err)
	}
}

func TestHandleCallbackSessionFailure(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: uuid.New(), Name: "Taro", Role: enums.UserRoleWorker}
	svc := newAuthFixture(t,
		&stubLineClient{profile: line.Profile{UserID: "U123", DisplayName: "Taro"}},
		&stubUserLinker{user: user},
		&stubSessionRegistrar{err: errors.New("redis down")},
	)

	_, err := svc.HandleCallback(context.Background(), "auth-code")
	if err == nil {
		t.Fatal("expected error when session registration fails")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("unexpected error code: %v", err)
	}
}
