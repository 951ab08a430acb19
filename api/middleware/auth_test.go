package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgauth "github.com/caterstock/caterstock-backend/pkg/auth"
	"github.com/caterstock/caterstock-backend/pkg/config"
	"github.com/caterstock/caterstock-backend/pkg/enums"
	"github.com/caterstock/caterstock-backend/pkg/logger"
)

type stubSessionChecker struct {
	live bool
	err  error
}

func (s *stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return s.live, s.err
}

func authTestConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "caterstock", ExpirationMinutes: 60}
}

func mintTestToken(t *testing.T, userID uuid.UUID, role enums.UserRole) string {
	t.Helper()
	signed, err := pkgauth.MintAccessToken(authTestConfig(), time.Now().UTC(), pkgauth.AccessTokenPayload{
		UserID: userID,
		Name:   "Tester",
		Role:   role,
		JTI:    "session-1",
	})
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, header string, checker *stubSessionChecker) (*httptest.ResponseRecorder, context.Context) {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	var seen context.Context
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Context()
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/goods", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	Auth(authTestConfig(), checker, logg)(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestAuthSeedsContext(t *testing.T) {
	userID := uuid.New()
	token := mintTestToken(t, userID, enums.UserRoleAdmin)

	rec, ctx := runAuth(t, "Bearer "+token, &stubSessionChecker{live: true})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := UserIDFromContext(ctx); got != userID.String() {
		t.Fatalf("expected user id in context, got %q", got)
	}
	if got := RoleFromContext(ctx); got != "admin" {
		t.Fatalf("expected role in context, got %q", got)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	rec, _ := runAuth(t, "", &stubSessionChecker{live: true})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", rec.Code)
	}
}

func TestAuthMalformedToken(t *testing.T) {
	rec, _ := runAuth(t, "Bearer not-a-jwt", &stubSessionChecker{live: true})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for malformed token, got %d", rec.Code)
	}
}

func TestAuthRevokedSession(t *testing.T) {
	token := mintTestToken(t, uuid.New(), enums.UserRoleWorker)
	rec, _ := runAuth(t, "Bearer "+token, &stubSessionChecker{live: false})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked session, got %d", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("matching role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/goods", nil)
		req = req.WithContext(WithRole(context.Background(), "admin"))
		rec := httptest.NewRecorder()
		RequireRole("admin", logg)(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("other role rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/goods", nil)
		req = req.WithContext(WithRole(context.Background(), "worker"))
		rec := httptest.NewRecorder()
		RequireRole("admin", logg)(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("missing role rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/goods", nil)
		rec := httptest.NewRecorder()
		RequireRole("admin", logg)(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}
