package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/timekeeper/inventory-system/internal/api"
	"github.com/timekeeper/inventory-system/internal/api/handler"
	"github.com/timekeeper/inventory-system/internal/core/service"
	"github.com/timekeeper/inventory-system/internal/infrastructure/config"
	"github.com/timekeeper/inventory-system/internal/infrastructure/db/mongo"
	"github.com/timekeeper/inventory-system/internal/infrastructure/db/redis"
	"github.com/timekeeper/inventory-system/internal/infrastructure/queue"
	"github.com/timekeeper/inventory-system/internal/pkg/token"
	"github.com/timekeeper/inventory-system/pkg/logger"

	_ "github.com/timekeeper/inventory-system/docs"
)

const shutdownTimeout = 10 * time.Second

// @title Inventory System API
// @version 1.0
// @description REST backend for inventory, catalog and account management.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongo.NewUserRepository(db)
	productRepo := mongo.NewProductRepository(db)
	categoryRepo := mongo.NewCategoryRepository(db)
	brandRepo := mongo.NewBrandRepository(db)
	auditRepo := mongo.NewAuditRepository(db)

	// --- Activity trail dispatcher ---
	dispatcher := queue.NewDispatcher(0, auditRepo, logger.For("audit"))
	dispatcher.Start(ctx)

	// --- Services ---
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL, nil)
	authService := service.NewAuthService(userRepo, issuer)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, categoryRepo, brandRepo, dispatcher)
	categoryService := service.NewCategoryService(categoryRepo, productRepo, dispatcher)
	brandService := service.NewBrandService(brandRepo, productRepo, dispatcher)
	dashboardService := service.NewDashboardService(
		productRepo, categoryRepo, brandRepo, userRepo,
		redis.NewStatsCache(rdb, cfg.Redis.StatsTTL), logger.For("dashboard"),
	)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		AuthHandler:      handler.NewAuthHandler(authService),
		UserHandler:      handler.NewUserHandler(userService),
		ProductHandler:   handler.NewProductHandler(productService),
		CategoryHandler:  handler.NewCategoryHandler(categoryService),
		BrandHandler:     handler.NewBrandHandler(brandService),
		DashboardHandler: handler.NewDashboardHandler(dashboardService),
		Health:           handler.NewHealthHandler(),
		Readiness:        handler.NewReadinessHandler(db, rdb),
		TokenVerifier:    issuer,
		Logger:           logger.For("api"),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
