package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/ruislan/ktap-sub003/internal/router"
	"github.com/ruislan/ktap-sub003/pkg/config"
	"github.com/ruislan/ktap-sub003/pkg/logger"
	"github.com/ruislan/ktap-sub003/validators"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := config.InitDB(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize databases", zap.Error(err))
	}
	defer db.CloseDB()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()
	router.SetupMiddleware(e)

	scheduler, err := router.SetupRoutes(e, db.Postgres, db.Mongo, cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to set up routes", zap.Error(err))
	}

	if err := scheduler.Start(); err != nil {
		zlog.Fatal("failed to start janitor", zap.Error(err))
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			zlog.Info("server stopped", zap.Error(err))
		}
	}()
	zlog.Info("server started", zap.String("port", cfg.Port), zap.String("env", cfg.Env))

	<-ctx.Done()

	scheduler.Stop()

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shCtx); err != nil {
		zlog.Error("server shutdown", zap.Error(err))
	}
	zlog.Info("bye")
}
