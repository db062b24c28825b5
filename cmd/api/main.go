package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-management/config"
	_ "inventory-management/docs" // Swagger docs
	"inventory-management/internal/httpserver"
	"inventory-management/internal/middleware"
	"inventory-management/internal/user"
	userMemory "inventory-management/internal/user/repository/memory"
	"inventory-management/pkg/log"
	"inventory-management/pkg/otel"
	"inventory-management/pkg/scope"
)

// @title       Inventory Management API
// @description Inventory item catalog: create, list, update, archive, restore and delete items.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Inventory Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database driver: %s", cfg.Database.Driver)

	// 3. Tracing
	shutdownTracing, err := otel.Setup(ctx, otel.Config{
		Enabled:     cfg.Otel.Enabled,
		Endpoint:    cfg.Otel.Endpoint,
		ServiceName: cfg.Otel.ServiceName,
	})
	if err != nil {
		logger.Warnf(ctx, "Tracing disabled: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warnf(flushCtx, "Failed to flush traces: %v", err)
		}
	}()

	// 4. Storage
	store, err := openStorage(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer func() {
		if err := store.close(context.Background()); err != nil {
			logger.Warnf(context.Background(), "Failed to close storage: %v", err)
		}
	}()

	// 5. Users
	users, err := user.BuildUsers(toSeedInputs(cfg.Auth.Users))
	if err != nil {
		logger.Error(ctx, "Failed to seed users: ", err)
		return
	}
	if len(users) == 0 {
		logger.Warn(ctx, "No users configured under auth.users: sign-in will always fail")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		JWTManager:  scope.New(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL),
		Middleware: middleware.Config{
			Roles:           cfg.Auth.Roles,
			RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		},
		ItemRepository: store.repo,
		UserRepository: userMemory.New(users),
		ReadyCheck:     store.ready,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func toSeedInputs(users []config.UserConfig) []user.SeedInput {
	out := make([]user.SeedInput, 0, len(users))
	for _, u := range users {
		out = append(out, user.SeedInput{
			ID:           u.ID,
			Username:     u.Username,
			Password:     u.Password,
			PasswordHash: u.PasswordHash,
			Role:         u.Role,
		})
	}
	return out
}
