package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/jalon-pm/jalon/internal/app"
	"github.com/jalon-pm/jalon/internal/me"
	"github.com/jalon-pm/jalon/internal/platform/cache"
	"github.com/jalon-pm/jalon/internal/platform/db"
	"github.com/jalon-pm/jalon/internal/projects"
	"github.com/jalon-pm/jalon/internal/rbac"
	"github.com/jalon-pm/jalon/internal/roles"
	"github.com/jalon-pm/jalon/internal/shared"
	"github.com/jalon-pm/jalon/internal/users"
	"github.com/jalon-pm/jalon/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	identity := shared.NewIdentityStore(redisClient, cfg.IdentityCookie)

	rolesRepo := roles.NewRepository(dbpool)
	rolesService := roles.NewService(rolesRepo)

	usersRepo := users.NewRepository(dbpool)
	usersService := users.NewService(usersRepo, rolesService)

	jobsClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init jobs client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobsClient.Close(); err != nil {
			logger.Warn("jobs client close", slog.Any("error", err))
		}
	}()
	recorder := jobs.NewRecorder(jobsClient, logger)

	projectsRepo := projects.NewRepository(dbpool)
	projectsService := projects.NewService(projectsRepo, rolesService, recorder)

	rbacMiddleware := rbac.Middleware{Memberships: projectsRepo, Logger: logger}

	meHandler := me.NewHandler(logger, projectsService)
	projectsHandler := projects.NewHandler(logger, projectsService)
	rolesHandler := roles.NewHandler(logger, rolesService, rbacMiddleware)

	router := app.NewRouter(app.RouterParams{
		Logger: logger,
		Config: cfg,
		Identity: app.MiddlewareConfig{
			Logger:   logger,
			Config:   cfg,
			Identity: identity,
			Resolver: usersService,
		},
		MeHandler:       meHandler,
		ProjectsHandler: projectsHandler,
		RolesHandler:    rolesHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
