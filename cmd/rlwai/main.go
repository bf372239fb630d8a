package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Oleg-Vlasenko/rlwai/internal/app"
	"github.com/Oleg-Vlasenko/rlwai/internal/auth"
	"github.com/Oleg-Vlasenko/rlwai/internal/catalog"
	"github.com/Oleg-Vlasenko/rlwai/internal/orders"
	"github.com/Oleg-Vlasenko/rlwai/internal/platform/cache"
	"github.com/Oleg-Vlasenko/rlwai/internal/platform/db"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	var tokenStore auth.TokenStore
	switch cfg.TokenBackend {
	case app.TokenBackendRedis:
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
		tokenStore = auth.NewRedisStore(redisClient, cfg.TokenTTL)
	default:
		tokenStore = auth.NewMemoryStore(cfg.TokenTTL)
	}

	authService := auth.NewService(cfg.AuthUsers, tokenStore)
	catalogService := catalog.NewService(catalog.NewRepository(pool))
	ordersService := orders.NewService(orders.NewRepository(pool))

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		AuthHandler:    auth.NewHandler(logger, authService),
		AuthMiddleware: auth.NewMiddleware(tokenStore),
		CatalogHandler: catalog.NewHandler(logger, catalogService),
		OrdersHandler:  orders.NewHandler(logger, ordersService),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", slog.String("addr", cfg.AppAddr), slog.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
