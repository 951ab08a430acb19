package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/caterstock/caterstock-backend/api/routes"
	"github.com/caterstock/caterstock-backend/internal/alerts"
	authsvc "github.com/caterstock/caterstock-backend/internal/auth"
	"github.com/caterstock/caterstock-backend/internal/goods"
	"github.com/caterstock/caterstock-backend/internal/inventory"
	"github.com/caterstock/caterstock-backend/internal/users"
	"github.com/caterstock/caterstock-backend/pkg/auth/session"
	"github.com/caterstock/caterstock-backend/pkg/config"
	"github.com/caterstock/caterstock-backend/pkg/db"
	"github.com/caterstock/caterstock-backend/pkg/line"
	"github.com/caterstock/caterstock-backend/pkg/logger"
	"github.com/caterstock/caterstock-backend/pkg/metrics"
	"github.com/caterstock/caterstock-backend/pkg/migrate"
	"github.com/caterstock/caterstock-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	lineClient := line.NewClient(cfg.Line)

	registry := prometheus.NewRegistry()
	alertMetrics := metrics.NewAlertMetrics(registry)

	var notifier alerts.Notifier
	if cfg.Line.NotifyConfigured() {
		notifier = alerts.NotifierFunc(lineClient.Notify)
	} else {
		logg.Warn(context.Background(), "line notify token not configured, alerts will be dropped")
	}

	dispatcher := alerts.NewDispatcher(notifier, logg, alertMetrics, alerts.DispatcherOptions{
		QueueSize: cfg.Alerts.QueueSize,
		Workers:   cfg.Alerts.Workers,
	})
	defer dispatcher.Close()

	usersRepo := users.NewRepository(dbClient.DB())
	goodsRepo := goods.NewRepository(dbClient.DB())

	usersService, err := users.NewService(usersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	goodsService, err := goods.NewService(goodsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create goods service", err)
		os.Exit(1)
	}

	inventoryService, err := inventory.NewService(inventory.ServiceParams{
		Repo:       inventory.NewRepository(dbClient.DB()),
		Goods:      goodsRepo,
		Users:      usersRepo,
		Dispatcher: dispatcher,
		Logger:     logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		Line:      lineClient,
		Users:     usersService,
		Sessions:  sessionManager,
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:           cfg,
			Logger:           logg,
			DB:               dbClient,
			Redis:            redisClient,
			Sessions:         sessionManager,
			MetricsGatherer:  registry,
			AuthService:      authService,
			UsersService:     usersService,
			GoodsService:     goodsService,
			InventoryService: inventoryService,
		}),
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutting down api server")
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
