package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/caterstock/caterstock-backend/api/middleware"
	"github.com/caterstock/caterstock-backend/api/responses"
	"github.com/caterstock/caterstock-backend/internal/users"
	pkgerrors "github.com/caterstock/caterstock-backend/pkg/errors"
	"github.com/caterstock/caterstock-backend/pkg/logger"
)

// UsersMe returns the resolved identity of the caller.
func UsersMe(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing caller identity"))
			return
		}

		identity, err := svc.Resolve(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, identity)
	}
}
