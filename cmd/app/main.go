package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderhub/cmd"
	httpin "orderhub/internal/adapters/in/http"
	"orderhub/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	gormDB, err := gorm.Open(postgresdriver.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := newEcho(app, config, logger)
	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
	jobManager.StopAll()
	if err = app.Close(shutdownCtx); err != nil {
		logger.Error("Notifier shutdown failed", "error", err)
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
}

func newEcho(app *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Pre(httpin.CORS(config.CORSAllowedOrigins))

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Use(httpin.Metrics(app.Metrics()))

	app.CreateHTTPServer().RegisterRoutes(e)
	return e
}
