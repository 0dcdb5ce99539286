package components

import (
	"context"
	"fmt"
	"os"
	"time"

	"log/slog"

	"github.com/Hetwork/swachhsathi-cf/internal/api"
	"github.com/Hetwork/swachhsathi-cf/internal/config"
	"github.com/Hetwork/swachhsathi-cf/internal/gemini"
	"github.com/Hetwork/swachhsathi-cf/internal/push"
	"github.com/Hetwork/swachhsathi-cf/internal/redis"
	"github.com/Hetwork/swachhsathi-cf/internal/service"
	"github.com/Hetwork/swachhsathi-cf/internal/storage/postgres"
	"github.com/Hetwork/swachhsathi-cf/internal/vision"
	"github.com/Hetwork/swachhsathi-cf/internal/workers"
	"github.com/Hetwork/swachhsathi-cf/pkg/logger"
)

type Components struct {
	logger        *slog.Logger
	HttpServer    *api.Server
	TriggerWorker *workers.TriggerWorker
	Postgres      *postgres.Postgres
	Redis         *redis.Redis
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("initializing postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("initializing redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	eventQueue := redis.NewEventQueue(redisClient.Client, cfg.Worker.QueueKey)
	ngoCache := redis.NewNGOCache(redisClient, storage.NGOs(), 5*time.Minute)

	visionClient := vision.NewClient(cfg.Vision, logger)
	geminiClient, err := gemini.NewClassifier(ctx, cfg.Gemini)
	if err != nil {
		return nil, fmt.Errorf("failed to init gemini: %w", err)
	}
	pushSender := push.NewSender(logger, cfg.Push)

	classificationSvc := service.NewClassificationService(visionClient, geminiClient, storage.Scans(), logger)
	comparisonSvc := service.NewComparisonService(visionClient, storage.Scans(), logger)
	reportSvc := service.NewReportService(storage.Reports(), comparisonSvc, eventQueue, logger)
	adminSvc := service.NewAdminService(storage.NGOs(), storage.Workers(), eventQueue, logger)
	assignmentSvc := service.NewAssignmentService(storage.Reports(), storage.Workers(), ngoCache, eventQueue, logger)
	dispatcherSvc := service.NewDispatcherService(storage.Workers(), pushSender, logger)

	svc := service.NewService(classificationSvc, comparisonSvc, reportSvc, adminSvc, assignmentSvc, dispatcherSvc)

	httpServer := api.NewServer(cfg, logger, svc)
	triggerWorker := workers.NewTriggerWorker(logger, cfg.Worker, eventQueue, assignmentSvc, dispatcherSvc)
	logger.Info("initialized server")

	return &Components{
		logger:        logger,
		HttpServer:    httpServer,
		TriggerWorker: triggerWorker,
		Postgres:      storage,
		Redis:         redisClient,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
