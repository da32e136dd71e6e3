package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sweetshop/inventory-api/internal/api"
	"github.com/sweetshop/inventory-api/internal/api/handler"
	"github.com/sweetshop/inventory-api/internal/core/ports"
	"github.com/sweetshop/inventory-api/internal/core/service"
	"github.com/sweetshop/inventory-api/internal/infrastructure/config"
	"github.com/sweetshop/inventory-api/internal/infrastructure/db/memory"
	mongodb "github.com/sweetshop/inventory-api/internal/infrastructure/db/mongo"
	"github.com/sweetshop/inventory-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx := context.Background()

	var (
		userRepo  ports.UserRepository
		sweetRepo ports.SweetRepository
		storePing handler.Pinger
	)

	switch cfg.StoreBackend {
	case "memory":
		log.Info().Msg("using in-memory store backend")
		userRepo = memory.NewUserStore()
		sweetRepo = memory.NewSweetStore()
	default:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			if cfg.IsProduction() {
				log.Fatal().Err(err).Msg("mongo unreachable")
			}
			// Degraded mode: keep the service available for local
			// development and tests without a running Mongo.
			log.Warn().Err(err).Msg("mongo unreachable, falling back to in-memory store")
			userRepo = memory.NewUserStore()
			sweetRepo = memory.NewSweetStore()
			break
		}

		users := mongodb.NewUserRepository(db)
		sweets := mongodb.NewSweetRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to create user indexes")
		}
		if err := sweets.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to create sweet indexes")
		}

		userRepo = users
		sweetRepo = sweets
		storePing = mongodb.NewHealthChecker(client)

		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
	}

	tokens := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authService := service.NewAuthService(userRepo, tokens, cfg.AdminKey, log)
	sweetService := service.NewSweetService(sweetRepo, log)

	e := api.NewRouter(api.Dependencies{
		Logger:      log,
		Tokens:      tokens,
		Auth:        authService,
		Sweets:      sweetService,
		StorePing:   storePing,
		CORSOrigins: strings.Split(cfg.CORSOrigins, ","),
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("backend", cfg.StoreBackend).Msg("sweet shop api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
