package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/Hetwork/swachhsathi-cf/internal/config"
	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

// Sender posts push notifications to the FCM-style send endpoint. Sends are
// best-effort: a bounded retry, then the error goes back to the caller, who
// logs and moves on.
type Sender struct {
	logger *slog.Logger
	cfg    config.PushConfig
	http   *http.Client
}

func NewSender(logger *slog.Logger, cfg config.PushConfig) *Sender {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Sender{
		logger: logger,
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	Message fcmMessage `json:"message"`
}

type fcmMessage struct {
	Token        string            `json:"token"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (s *Sender) Send(ctx context.Context, msg domain.PushMessage) error {
	const op = "push.Send"
	const maxRetries = 3

	if msg.Target == "" {
		return fmt.Errorf("%s: %w: empty target", op, e.ErrInvalidInput)
	}
	if s.cfg.Disabled {
		s.logger.Debug("push disabled, dropping message", slog.String("title", msg.Title))
		return nil
	}

	body, err := json.Marshal(sendRequest{Message: fcmMessage{
		Token:        msg.Target,
		Notification: fcmNotification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
	}})
	if err != nil {
		return e.Wrap(op, err)
	}

	var lastReason string
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return fmt.Errorf("%s: %w", op, ctx.Err())
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			return e.Wrap(op, err)
		}
		req.Header.Set("Content-Type", "application/json")
		if s.cfg.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
		}

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return nil
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		lastReason = "unknown"
		if err != nil {
			lastReason = err.Error()
		} else if resp != nil {
			lastReason = resp.Status
		}

		s.logger.Warn("push send failed",
			slog.Int("attempt", attempt),
			slog.String("reason", lastReason),
		)

		time.Sleep(time.Duration(attempt) * 200 * time.Millisecond)
	}

	return fmt.Errorf("%s: %w: %s", op, e.ErrExternalService, lastReason)
}
