package service

import (
	"context"

	"log/slog"

	"github.com/google/uuid"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
)

type adminService struct {
	ngos    NGOStore
	workers WorkerStore
	queue   TriggerQueue
	logger  *slog.Logger
}

func NewAdminService(ngos NGOStore, workers WorkerStore, queue TriggerQueue, logger *slog.Logger) AdminService {
	return &adminService{ngos: ngos, workers: workers, queue: queue, logger: logger}
}

func (s *adminService) CreateNGO(ctx context.Context, req domain.CreateNGORequest) (string, error) {
	categories := make([]domain.Category, 0, len(req.Categories))
	for _, c := range req.Categories {
		category, ok := domain.ParseCategory(c)
		if !ok {
			continue // handler validation already rejects these
		}
		categories = append(categories, category)
	}

	ngo := &domain.NGO{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Categories: categories,
	}
	if err := s.ngos.Create(ctx, ngo); err != nil {
		return "", err
	}
	return ngo.ID, nil
}

func (s *adminService) CreateWorker(ctx context.Context, req domain.CreateWorkerRequest) (string, error) {
	worker := &domain.Worker{
		UID:      uuid.New().String(),
		Name:     req.Name,
		Role:     domain.RoleWorker,
		NGOID:    req.NGOID,
		IsActive: true,
		FCMToken: req.FCMToken,
	}
	if err := s.workers.Create(ctx, worker); err != nil {
		return "", err
	}

	event := domain.TriggerEvent{Kind: domain.TriggerWorkerCreated, Worker: worker}
	if err := s.queue.Enqueue(ctx, event); err != nil {
		s.logger.Error("enqueue worker.created failed",
			slog.String("uid", worker.UID),
			slog.Any("error", err),
		)
	}

	return worker.UID, nil
}

func (s *adminService) UpdateWorkerLocation(ctx context.Context, uid string, lat, lng float64) error {
	return s.workers.UpdateLocation(ctx, uid, lat, lng)
}

func (s *adminService) SetWorkerActive(ctx context.Context, uid string, active bool) error {
	return s.workers.SetActive(ctx, uid, active)
}
