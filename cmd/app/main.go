package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ordering/cmd"
	"ordering/docs"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/pkg/logger"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate swag init --generalInfo main.go --dir ./,../../internal/adapters/in/http --parseDependency --parseInternal --outputTypes go --output ../../docs

const shutdownTimeout = 10 * time.Second

// main serves the ordering API until SIGINT or SIGTERM.
//
//	@title			Ordering API
//	@version		1.0
//	@description	Order lifecycle and kitchen synchronization.
//	@BasePath		/
//	@schemes		http
func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zapLogger, err := logger.New(configs.LogLevel, configs.AppEnv)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = docs.Validate(ctx); err != nil {
		log.Fatalf("Error validating API document: %v", err)
	}

	gormDB, err := openStorage(configs)
	if err != nil {
		log.Fatalf("Error opening storage: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, zapLogger, gormDB, clockwork.NewRealClock())
	if err != nil {
		log.Fatalf("Error composing application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app.CreateEcho(), configs.HTTPPort, zapLogger)
}

// openStorage returns nil for in-memory storage.
func openStorage(configs cmd.Config) (*gorm.DB, error) {
	if configs.StorageDriver != cmd.StoragePostgres {
		return nil, nil
	}

	gormDB, err := postgres.Open(postgres.DSN(
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	))
	if err != nil {
		return nil, err
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return nil, err
	}
	return gormDB, nil
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, zapLogger *zap.Logger) {
	go func() {
		zapLogger.Info("HTTP server listening", zap.String("port", port))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}
}
