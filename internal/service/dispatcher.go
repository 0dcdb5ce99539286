package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"log/slog"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

// dispatcherService reacts to lifecycle transitions with best-effort pushes.
// Every reaction is independent: a missing record or token is a silent
// no-op, a send failure is logged and swallowed, and one reaction's failure
// never stops the next.
type dispatcherService struct {
	workers WorkerStore
	sender  PushSender
	logger  *slog.Logger
}

func NewDispatcherService(workers WorkerStore, sender PushSender, logger *slog.Logger) DispatchHandler {
	return &dispatcherService{workers: workers, sender: sender, logger: logger}
}

func (s *dispatcherService) HandleWorkerCreated(ctx context.Context, worker *domain.Worker) error {
	if worker == nil || worker.Role != domain.RoleWorker {
		return nil
	}
	if worker.FCMToken == "" {
		s.logger.Debug("welcome skipped: worker has no token", slog.String("uid", worker.UID))
		return nil
	}

	msg := domain.PushMessage{
		Title:  "Welcome to SwachhSathi",
		Body:   fmt.Sprintf("Hi %s, your worker account is ready. You will be notified when a task is assigned to you.", worker.Name),
		Target: worker.FCMToken,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("welcome push failed",
			slog.String("uid", worker.UID),
			slog.Any("error", err),
		)
	}
	return nil
}

func (s *dispatcherService) HandleReportUpdated(ctx context.Context, before, after *domain.Report) error {
	if after == nil {
		return nil
	}

	s.notifyAssigned(ctx, before, after)
	s.notifyResolved(ctx, before, after)

	return nil
}

// notifyAssigned fires iff assignedTo transitions from absent to present.
func (s *dispatcherService) notifyAssigned(ctx context.Context, before, after *domain.Report) {
	if after.AssignedTo == "" {
		return
	}
	if before != nil && before.AssignedTo != "" {
		return
	}

	l := s.logger.With(
		slog.String("report_id", after.ID.String()),
		slog.String("worker_uid", after.AssignedTo),
	)

	worker, err := s.workers.Get(ctx, after.AssignedTo)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			l.Debug("task-assigned skipped: worker record missing")
			return
		}
		l.Error("task-assigned worker lookup failed", slog.Any("error", err))
		return
	}
	if worker.FCMToken == "" {
		l.Debug("task-assigned skipped: worker has no token")
		return
	}

	data := map[string]string{
		"report_id": after.ID.String(),
		"category":  string(after.Category),
		"severity":  string(after.Severity),
	}
	body := "A new waste report has been assigned to you."
	if after.Location != nil {
		data["latitude"] = strconv.FormatFloat(after.Location.Latitude, 'f', -1, 64)
		data["longitude"] = strconv.FormatFloat(after.Location.Longitude, 'f', -1, 64)
		if after.Location.Address != "" {
			data["address"] = after.Location.Address
			body = fmt.Sprintf("A new waste report near %s has been assigned to you.", after.Location.Address)
		}
	}

	msg := domain.PushMessage{
		Title:  "New task assigned",
		Body:   body,
		Data:   data,
		Target: worker.FCMToken,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		l.Error("task-assigned push failed", slog.Any("error", err))
	}
}

// notifyResolved fires when status transitions to resolved and the report
// still knows its reporter.
func (s *dispatcherService) notifyResolved(ctx context.Context, before, after *domain.Report) {
	if after.Status != domain.ReportResolved {
		return
	}
	if before != nil && before.Status == domain.ReportResolved {
		return
	}
	if after.UserID == "" {
		return
	}

	l := s.logger.With(
		slog.String("report_id", after.ID.String()),
		slog.String("user_id", after.UserID),
	)

	reporter, err := s.workers.Get(ctx, after.UserID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			l.Debug("resolved push skipped: reporter record missing")
			return
		}
		l.Error("resolved reporter lookup failed", slog.Any("error", err))
		return
	}
	if reporter.FCMToken == "" {
		l.Debug("resolved push skipped: reporter has no token")
		return
	}

	msg := domain.PushMessage{
		Title: "Your report was resolved",
		Body:  "The waste you reported has been cleaned up. Thank you for keeping your city clean!",
		Data: map[string]string{
			"report_id": after.ID.String(),
			"status":    string(domain.ReportResolved),
		},
		Target: reporter.FCMToken,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		l.Error("resolved push failed", slog.Any("error", err))
	}
}
