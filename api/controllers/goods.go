package controllers

import (
	"net/http"
	"strings"

	"github.com/caterstock/caterstock-backend/api/middleware"
	"github.com/caterstock/caterstock-backend/api/responses"
	"github.com/caterstock/caterstock-backend/api/validators"
	"github.com/caterstock/caterstock-backend/internal/goods"
	"github.com/caterstock/caterstock-backend/pkg/enums"
	pkgerrors "github.com/caterstock/caterstock-backend/pkg/errors"
	"github.com/caterstock/caterstock-backend/pkg/logger"
)

type createGoodPayload struct {
	Name          string `json:"name" validate:"required"`
	Unit          string `json:"unit" validate:"required"`
	Category      string `json:"category" validate:"required"`
	Discipline    string `json:"discipline" validate:"required"`
	ThresholdLow  *int   `json:"thresholdLow"`
	ThresholdHigh *int   `json:"thresholdHigh"`
}

// GoodsCreate registers a new tracked good. Admin only.
func GoodsCreate(svc goods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "goods service unavailable"))
			return
		}

		var payload createGoodPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		category, err := enums.ParseGoodCategory(payload.Category)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
			return
		}
		discipline, err := enums.ParseDiscipline(payload.Discipline)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid discipline"))
			return
		}

		role, err := enums.ParseUserRole(middleware.RoleFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing actor role"))
			return
		}

		good, err := svc.Create(ctx, role, goods.CreateInput{
			Name:          payload.Name,
			Unit:          payload.Unit,
			Category:      category,
			Discipline:    discipline,
			ThresholdLow:  payload.ThresholdLow,
			ThresholdHigh: payload.ThresholdHigh,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, good)
	}
}

// GoodsList returns the catalog, optionally filtered by category.
func GoodsList(svc goods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "goods service unavailable"))
			return
		}

		rawCategory := strings.TrimSpace(r.URL.Query().Get("category"))
		if rawCategory == "" {
			list, err := svc.List(ctx)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"goods": list})
			return
		}

		category, err := enums.ParseGoodCategory(rawCategory)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
			return
		}

		list, err := svc.ListByCategory(ctx, category)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"goods": list})
	}
}
