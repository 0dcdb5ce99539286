package service

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

type reportService struct {
	reports    ReportStore
	comparison ComparisonService
	queue      TriggerQueue
	logger     *slog.Logger
}

func NewReportService(
	reports ReportStore,
	comparison ComparisonService,
	queue TriggerQueue,
	logger *slog.Logger,
) ReportService {
	return &reportService{
		reports:    reports,
		comparison: comparison,
		queue:      queue,
		logger:     logger,
	}
}

func (s *reportService) Create(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error) {
	category, ok := domain.ParseCategory(req.Category)
	if !ok {
		return uuid.Nil, fmt.Errorf("create report: %w", e.ErrInvalidCategory)
	}

	now := time.Now().UTC()
	report := &domain.Report{
		ID:          uuid.New(),
		Location:    &domain.Location{Latitude: req.Location.Latitude, Longitude: req.Location.Longitude, Address: req.Location.Address},
		Category:    category,
		Severity:    req.Severity,
		Status:      domain.ReportCreated,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		UserID:      req.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return uuid.Nil, err
	}

	entry := &domain.StatusHistory{
		ReportID:  report.ID,
		Status:    domain.ReportCreated,
		Message:   "Report submitted",
		Timestamp: now,
	}
	if err := s.reports.AppendStatus(ctx, entry); err != nil {
		s.logger.Error("initial history append failed",
			slog.String("report_id", report.ID.String()),
			slog.Any("error", err),
		)
	}

	event := domain.TriggerEvent{Kind: domain.TriggerReportCreated, After: report}
	if err := s.queue.Enqueue(ctx, event); err != nil {
		// the report exists either way; assignment just won't fire
		s.logger.Error("enqueue report.created failed",
			slog.String("report_id", report.ID.String()),
			slog.Any("error", err),
		)
	}

	return report.ID, nil
}

func (s *reportService) Get(ctx context.Context, id uuid.UUID) (*domain.Report, []domain.StatusHistory, error) {
	report, err := s.reports.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	history, err := s.reports.History(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return report, history, nil
}

func (s *reportService) List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error) {
	return s.reports.List(ctx, page, limit)
}

// Resolve scores the before/after pair, marks the report resolved and leaves
// a report.updated event for the dispatcher.
func (s *reportService) Resolve(ctx context.Context, id uuid.UUID, req domain.ResolveReportRequest) (domain.ComparisonResult, error) {
	before, err := s.reports.Get(ctx, id)
	if err != nil {
		return domain.ComparisonResult{}, err
	}
	if before.Status == domain.ReportResolved {
		return domain.ComparisonResult{}, fmt.Errorf("resolve report: %w: already resolved", e.ErrConflict)
	}

	result, err := s.comparison.Compare(ctx, req.BeforeRef, req.AfterRef)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	now := time.Now().UTC()
	if err := s.reports.UpdateStatus(ctx, id, domain.ReportResolved, now); err != nil {
		return domain.ComparisonResult{}, err
	}

	entry := &domain.StatusHistory{
		ReportID:  id,
		Status:    domain.ReportResolved,
		WorkerID:  req.WorkerID,
		Message:   fmt.Sprintf("Resolved with cleanliness score %d: %s", result.CleanlinessScore, result.Message),
		Timestamp: now,
	}
	if err := s.reports.AppendStatus(ctx, entry); err != nil {
		s.logger.Error("resolve history append failed",
			slog.String("report_id", id.String()),
			slog.Any("error", err),
		)
	}

	after := *before
	after.Status = domain.ReportResolved
	after.UpdatedAt = now

	event := domain.TriggerEvent{
		Kind:   domain.TriggerReportUpdated,
		Before: before,
		After:  &after,
	}
	if err := s.queue.Enqueue(ctx, event); err != nil {
		s.logger.Error("enqueue report.updated failed",
			slog.String("report_id", id.String()),
			slog.Any("error", err),
		)
	}

	return result, nil
}

func (s *reportService) Stats(ctx context.Context) (*domain.ReportStats, error) {
	return s.reports.CountByStatus(ctx)
}
