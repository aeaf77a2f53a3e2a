package main

import (
	"context"
	"net/http"
	"os"

	"github.com/davidcastanon/shopmart-backend/api/controllers"
	"github.com/davidcastanon/shopmart-backend/api/routes"
	"github.com/davidcastanon/shopmart-backend/internal/auth"
	"github.com/davidcastanon/shopmart-backend/internal/products"
	"github.com/davidcastanon/shopmart-backend/internal/users"
	"github.com/davidcastanon/shopmart-backend/internal/wishlist"
	"github.com/davidcastanon/shopmart-backend/pkg/auth/session"
	"github.com/davidcastanon/shopmart-backend/pkg/config"
	"github.com/davidcastanon/shopmart-backend/pkg/db"
	"github.com/davidcastanon/shopmart-backend/pkg/logger"
	"github.com/davidcastanon/shopmart-backend/pkg/metrics"
	"github.com/davidcastanon/shopmart-backend/pkg/migrate"
	"github.com/davidcastanon/shopmart-backend/pkg/redis"
	"github.com/joho/godotenv"
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

	if err := migrate.MaybeAutoRun(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run migrations", err)
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

	userService, err := users.NewService(users.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create user service", err)
		os.Exit(1)
	}

	productService, err := products.NewService(products.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlist.NewService(wishlist.NewRepository(dbClient.DB()), productService)
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	var provider auth.Provider
	if cfg.OAuth.GitHubClientID != "" {
		provider, err = auth.NewGitHubProvider(cfg.OAuth)
		if err != nil {
			logg.Error(context.Background(), "failed to configure github oauth", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "github oauth not configured, provider sign-in disabled")
	}

	authService, err := auth.NewService(auth.ServiceParams{
		Users:    userService,
		Sessions: sessionManager,
		Provider: provider,
		JWT:      cfg.JWT,
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
		Handler: routes.NewRouter(routes.Deps{
			Config:   cfg,
			Logger:   logg,
			Metrics:  metrics.NewHTTP(),
			Sessions: sessionManager,
			Ready: map[string]controllers.Pinger{
				"database": dbClient,
				"redis":    redisClient,
			},
			Auth:     authService,
			Products: productService,
			Wishlist: wishlistService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
