package workers

import (
	"context"
	"errors"
	"time"

	"log/slog"

	"github.com/Hetwork/swachhsathi-cf/internal/config"
	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/internal/redis"
	"github.com/Hetwork/swachhsathi-cf/internal/service"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

// TriggerWorker drains the lifecycle event queue and invokes the trigger
// handlers. Handler errors are logged and swallowed: a trigger reaction never
// fails the write that produced the event. Delivery is at-least-once, so
// handlers may run more than once for one event.
type TriggerWorker struct {
	logger     *slog.Logger
	cfg        config.WorkerConfig
	queue      *redis.EventQueue
	assignment service.AssignmentHandler
	dispatcher service.DispatchHandler
}

func NewTriggerWorker(
	logger *slog.Logger,
	cfg config.WorkerConfig,
	queue *redis.EventQueue,
	assignment service.AssignmentHandler,
	dispatcher service.DispatchHandler,
) *TriggerWorker {
	return &TriggerWorker{
		logger:     logger,
		cfg:        cfg,
		queue:      queue,
		assignment: assignment,
		dispatcher: dispatcher,
	}
}

func (w *TriggerWorker) Run(ctx context.Context) {
	w.logger.Info("triggerWorker STARTED", slog.String("queue", w.cfg.QueueKey))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("triggerWorker STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		event, err := w.queue.BRPop(ctx, w.cfg.PopTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			w.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(w.cfg.HandlerWait)
			continue
		}

		w.handle(ctx, event)
	}
}

func (w *TriggerWorker) handle(ctx context.Context, event domain.TriggerEvent) {
	l := w.logger.With(slog.String("kind", string(event.Kind)))
	l.Debug("handling trigger event")

	switch event.Kind {
	case domain.TriggerReportCreated:
		if err := w.assignment.HandleReportCreated(ctx, event.After); err != nil {
			l.Error("assignment handler failed", slog.Any("error", err), reportAttr(event.After))
		}
	case domain.TriggerReportUpdated:
		if err := w.dispatcher.HandleReportUpdated(ctx, event.Before, event.After); err != nil {
			l.Error("dispatch handler failed", slog.Any("error", err), reportAttr(event.After))
		}
	case domain.TriggerWorkerCreated:
		if err := w.dispatcher.HandleWorkerCreated(ctx, event.Worker); err != nil {
			l.Error("worker-created handler failed", slog.Any("error", err))
		}
	default:
		l.Warn("unknown trigger kind, dropping event")
	}
}

func reportAttr(r *domain.Report) slog.Attr {
	if r == nil {
		return slog.String("report_id", "")
	}
	return slog.String("report_id", r.ID.String())
}
