package controllers

import (
	"net/http"
	"strings"

	"github.com/caterstock/caterstock-backend/api/responses"
	"github.com/caterstock/caterstock-backend/internal/auth"
	pkgerrors "github.com/caterstock/caterstock-backend/pkg/errors"
	"github.com/caterstock/caterstock-backend/pkg/logger"
)

// AuthLoginURL hands the frontend the LINE authorize URL to redirect to.
func AuthLoginURL(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		state := strings.TrimSpace(r.URL.Query().Get("state"))
		if state == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "state is required"))
			return
		}

		url, err := svc.LoginURL(state)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"url": url})
	}
}

// AuthCallback completes the LINE login flow and returns an API token.
func AuthCallback(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		code := strings.TrimSpace(r.URL.Query().Get("code"))

		result, err := svc.HandleCallback(ctx, code)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
