package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/caterstock/caterstock-backend/api/middleware"
	"github.com/caterstock/caterstock-backend/api/responses"
	"github.com/caterstock/caterstock-backend/api/validators"
	"github.com/caterstock/caterstock-backend/internal/inventory"
	"github.com/caterstock/caterstock-backend/pkg/enums"
	pkgerrors "github.com/caterstock/caterstock-backend/pkg/errors"
	"github.com/caterstock/caterstock-backend/pkg/logger"
)

type recordObservationPayload struct {
	Level    *string `json:"level"`
	Quantity *int    `json:"quantity"`
}

// InventoryRecord appends one observation for the good in the URL. The payload
// must carry exactly one of level or quantity, matching the good's discipline.
func InventoryRecord(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		goodID, err := uuid.Parse(chi.URLParam(r, "goodId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid good id"))
			return
		}

		observerID, err := uuid.Parse(middleware.UserIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing caller identity"))
			return
		}

		var payload recordObservationPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if (payload.Level == nil) == (payload.Quantity == nil) {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "exactly one of level or quantity is required"))
			return
		}

		if logg != nil {
			ctx = logg.WithGoodID(ctx, goodID.String())
		}

		var observation any
		if payload.Level != nil {
			level, parseErr := enums.ParseObservationLevel(*payload.Level)
			if parseErr != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "invalid level"))
				return
			}
			observation, err = svc.RecordLevel(ctx, goodID, level, observerID)
		} else {
			observation, err = svc.RecordQuantity(ctx, goodID, *payload.Quantity, observerID)
		}
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, observation)
	}
}

// InventoryStatus returns the derived current status for every observed good.
func InventoryStatus(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		statuses, err := svc.CurrentStatus(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"statuses": statuses})
	}
}

// InventoryHistory returns the observation audit trail, newest first.
func InventoryHistory(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		params := inventory.HistoryParams{}

		if raw := strings.TrimSpace(r.URL.Query().Get("goodId")); raw != "" {
			goodID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid good id"))
				return
			}
			params.GoodID = &goodID
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid limit"))
				return
			}
			params.Limit = limit
		}

		entries, err := svc.History(ctx, params)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"history": entries})
	}
}
