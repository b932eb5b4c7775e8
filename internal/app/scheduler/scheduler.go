// Package scheduler собирает приложение планировщика: истечение статусов
// и ежемесячная очистка истории.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bikash/portfolio-backend/internal/cache"
	"github.com/bikash/portfolio-backend/internal/config"
	schedulerservice "github.com/bikash/portfolio-backend/internal/services/scheduler"
	statusservice "github.com/bikash/portfolio-backend/internal/services/status"
	"github.com/bikash/portfolio-backend/internal/storage/repository"
)

// App представляет приложение планировщика.
type App struct {
	schedulerService *schedulerservice.SchedulerService
	db               *repository.Storage
	logger           *slog.Logger
}

func waitForDB(db *repository.Storage) error {
	for range 10 {
		err := repository.CheckDatabaseReady(db)
		if err == nil {
			return nil
		}
		time.Sleep(3 * time.Second)
	}
	return fmt.Errorf("database not ready after retries")
}

// New создает новый экземпляр приложения планировщика.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect storage: %w", err)
	}

	if err := waitForDB(db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, fmt.Errorf("cache not initialized: %w", err)
	}

	statusService := statusservice.NewStatusService(db, cacheRedis, logger)
	schedulerService := schedulerservice.NewSchedulerService(statusService, logger)

	return &App{
		schedulerService: schedulerService,
		db:               db,
		logger:           logger,
	}, nil
}

// Run запускает планировщик.
func (a *App) Run(ctx context.Context) error {
	go a.schedulerService.RunExpirySweep(ctx)
	go a.schedulerService.RunMonthlyPurge(ctx)

	<-ctx.Done()

	a.logger.Info("shutting down scheduler service")

	if err := a.db.DB.Close(); err != nil {
		a.logger.Error("failed to close database", slog.Any("err", err))
	}

	return nil
}
