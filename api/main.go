package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-app/internal/auth"
	"github.com/rogerio-castellano/inventory-app/internal/config"
	"github.com/rogerio-castellano/inventory-app/internal/db"
	api "github.com/rogerio-castellano/inventory-app/internal/http"
	"github.com/rogerio-castellano/inventory-app/internal/http/ban"
	"github.com/rogerio-castellano/inventory-app/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-app/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-app/internal/logger"
	"github.com/rogerio-castellano/inventory-app/internal/redissvc"
	"github.com/rogerio-castellano/inventory-app/internal/repo"
)

func main() {
	cfg := config.Load()

	zl, err := logger.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("could not initialize logger: %v", err)
	}
	defer zl.Sync()

	auth.Configure(cfg.JWTSecret)
	if cfg.AuthRequired && cfg.JWTSecret == "" {
		zl.Fatal("AUTH_REQUIRED is set but JWT_SECRET is empty")
	}

	database, err := db.Connect(cfg.DB.DSN())
	if err != nil {
		zl.Fatal("could not connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		zl.Fatal("could not run migrations", zap.Error(err))
	}

	if cfg.RedisAddr != "" {
		rs, err := redissvc.Connect(context.Background(), cfg.RedisAddr)
		if err != nil {
			zl.Fatal("could not connect to redis", zap.Error(err))
		}
		defer rs.Close()
		ban.SetRedisService(rs)
	}

	if cfg.RateLimitEnabled {
		go rl.StartVisitorCleanupLoop()
	}

	handlers.SetCategoryRepo(repo.NewPostgresCategoryRepository(database))
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetInventoryLogRepo(repo.NewPostgresInventoryLogRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))

	router := api.NewRouter(api.RouterOptions{
		RequireAuth: cfg.AuthRequired,
		RateLimit:   cfg.RateLimitEnabled,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zl.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("shutdown failed", zap.Error(err))
	}
}
