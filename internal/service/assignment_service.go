package service

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/pkg/geo"
)

// assignmentService reacts to report.created events: it finds the nearest
// active worker of an NGO that handles the report's category and mutates the
// report accordingly. The read-then-write sequence is NOT guarded against
// concurrent duplicate events; two racing triggers can select the same
// worker. Known gap, see DESIGN.md.
type assignmentService struct {
	reports ReportStore
	workers WorkerStore
	ngos    NGOFinder
	queue   TriggerQueue
	logger  *slog.Logger
}

func NewAssignmentService(
	reports ReportStore,
	workers WorkerStore,
	ngos NGOFinder,
	queue TriggerQueue,
	logger *slog.Logger,
) AssignmentHandler {
	return &assignmentService{
		reports: reports,
		workers: workers,
		ngos:    ngos,
		queue:   queue,
		logger:  logger,
	}
}

func (s *assignmentService) HandleReportCreated(ctx context.Context, report *domain.Report) error {
	if report == nil {
		return nil
	}
	l := s.logger.With(slog.String("report_id", report.ID.String()))

	// Preconditions are no-ops, not errors: the trigger fires for every
	// created report, located and categorized or not.
	if report.Location == nil {
		l.Info("assignment skipped: report has no location")
		return nil
	}
	if report.Category == "" {
		l.Info("assignment skipped: report has no category")
		return nil
	}

	ngoIDs, err := s.ngos.ByCategory(ctx, report.Category)
	if err != nil {
		return fmt.Errorf("assignment: ngo lookup: %w", err)
	}
	if len(ngoIDs) == 0 {
		l.Info("assignment skipped: no NGO handles category", slog.String("category", string(report.Category)))
		return nil
	}

	workers, err := s.workers.ListActiveByNGOs(ctx, ngoIDs)
	if err != nil {
		return fmt.Errorf("assignment: worker lookup: %w", err)
	}

	nearest := nearestWorker(workers, report.Location.Latitude, report.Location.Longitude)
	if nearest == nil {
		l.Info("assignment skipped: no active worker with a known location",
			slog.Int("candidates", len(workers)))
		return nil
	}

	now := time.Now().UTC()
	if err := s.reports.Assign(ctx, report.ID, nearest.UID, nearest.NGOID, now); err != nil {
		return fmt.Errorf("assignment: write: %w", err)
	}

	entry := &domain.StatusHistory{
		ReportID:   report.ID,
		Status:     domain.ReportAssigned,
		WorkerID:   nearest.UID,
		WorkerName: nearest.Name,
		Message:    fmt.Sprintf("Assigned to %s", nearest.Name),
		Timestamp:  now,
	}
	if err := s.reports.AppendStatus(ctx, entry); err != nil {
		return fmt.Errorf("assignment: history append: %w", err)
	}

	l.Info("report assigned",
		slog.String("worker_uid", nearest.UID),
		slog.String("ngo_id", nearest.NGOID),
	)

	after := *report
	after.AssignedTo = nearest.UID
	after.NGOID = nearest.NGOID
	after.Status = domain.ReportAssigned
	after.UpdatedAt = now

	event := domain.TriggerEvent{
		Kind:   domain.TriggerReportUpdated,
		Before: report,
		After:  &after,
	}
	if err := s.queue.Enqueue(ctx, event); err != nil {
		// the assignment itself stands; only the notification is lost
		l.Error("enqueue report.updated failed", slog.Any("error", err))
	}

	return nil
}

// nearestWorker picks the minimum-distance worker among those that carry a
// location. Strict less keeps the first minimum; callers pass workers in
// uid order, so ties break deterministically.
func nearestWorker(workers []*domain.Worker, lat, lng float64) *domain.Worker {
	var best *domain.Worker
	bestDist := 0.0

	for _, w := range workers {
		if w.CurrentLocation == nil {
			continue
		}
		dist := geo.DistanceKm(lat, lng, w.CurrentLocation.Latitude, w.CurrentLocation.Longitude)
		if best == nil || dist < bestDist {
			best = w
			bestDist = dist
		}
	}

	return best
}
