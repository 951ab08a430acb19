package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/caterstock/caterstock-backend/api/controllers"
	"github.com/caterstock/caterstock-backend/api/middleware"
	authsvc "github.com/caterstock/caterstock-backend/internal/auth"
	"github.com/caterstock/caterstock-backend/internal/goods"
	"github.com/caterstock/caterstock-backend/internal/inventory"
	"github.com/caterstock/caterstock-backend/internal/users"
	"github.com/caterstock/caterstock-backend/pkg/auth/session"
	"github.com/caterstock/caterstock-backend/pkg/config"
	"github.com/caterstock/caterstock-backend/pkg/db"
	"github.com/caterstock/caterstock-backend/pkg/enums"
	"github.com/caterstock/caterstock-backend/pkg/logger"
	"github.com/caterstock/caterstock-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config           *config.Config
	Logger           *logger.Logger
	DB               db.Pinger
	Redis            *redis.Client
	Sessions         session.AccessSessionChecker
	MetricsGatherer  prometheus.Gatherer
	AuthService      authsvc.Service
	UsersService     users.Service
	GoodsService     goods.Service
	InventoryService inventory.Service
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, params.DB, params.Redis))
	})

	if params.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Get("/login", controllers.AuthLoginURL(params.AuthService, logg))
		r.Get("/callback", controllers.AuthCallback(params.AuthService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, params.Sessions, logg))

		r.Get("/users/me", controllers.UsersMe(params.UsersService, logg))

		r.Route("/goods", func(r chi.Router) {
			r.Get("/", controllers.GoodsList(params.GoodsService, logg))
			r.With(middleware.RequireRole(string(enums.UserRoleAdmin), logg)).
				Post("/", controllers.GoodsCreate(params.GoodsService, logg))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/status", controllers.InventoryStatus(params.InventoryService, logg))
			r.Get("/history", controllers.InventoryHistory(params.InventoryService, logg))
			r.Post("/goods/{goodId}/observations", controllers.InventoryRecord(params.InventoryService, logg))
		})
	})

	return r
}
