package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/caterstock/caterstock-backend/api/responses"
	"github.com/caterstock/caterstock-backend/pkg/config"
	"github.com/caterstock/caterstock-backend/pkg/db"
	pkgerrors "github.com/caterstock/caterstock-backend/pkg/errors"
	"github.com/caterstock/caterstock-backend/pkg/logger"
	"github.com/caterstock/caterstock-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CaterStock-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks the datasources this service cannot run without.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		w.Header().Set("X-CaterStock-Env", cfg.App.Env)

		checks := map[string]string{}

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
			checks["database"] = "ok"
		}

		if redisClient != nil {
			if err := redisClient.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
			checks["redis"] = "ok"
		}

		checks["status"] = "ready"
		responses.WriteSuccess(w, checks)
	}
}
