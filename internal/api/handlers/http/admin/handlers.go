package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Roster interface {
	CreateNGO(ctx context.Context, req domain.CreateNGORequest) (string, error)
	CreateWorker(ctx context.Context, req domain.CreateWorkerRequest) (string, error)
	UpdateWorkerLocation(ctx context.Context, uid string, lat, lng float64) error
	SetWorkerActive(ctx context.Context, uid string, active bool) error
}

type StatsGetter interface {
	Stats(ctx context.Context) (*domain.ReportStats, error)
}

type Handler struct {
	logger *slog.Logger
	Roster Roster
	Stats  StatsGetter
}

func NewHandler(logger *slog.Logger, roster Roster, stats StatsGetter) *Handler {
	return &Handler{
		logger: logger,
		Roster: roster,
		Stats:  stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminNGOCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminNGOCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateNGORequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id, err := h.Roster.CreateNGO(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("ngo created", slog.String("id", id), slog.String("name", req.Name))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) AdminWorkerCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminWorkerCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	uid, err := h.Roster.CreateWorker(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("worker created", slog.String("uid", uid), slog.String("ngo_id", req.NGOID))
	h.writeJSON(w, http.StatusCreated, map[string]string{"uid": uid})
}

func (h *Handler) AdminWorkerLocation(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	uid := chi.URLParam(r, "uid")
	if uid == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing uid"})
		return
	}

	var req domain.UpdateWorkerLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Roster.UpdateWorkerLocation(r.Context(), uid, req.Latitude, req.Longitude); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminWorkerActive(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	uid := chi.URLParam(r, "uid")
	if uid == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing uid"})
		return
	}

	var req domain.UpdateWorkerActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Roster.SetWorkerActive(r.Context(), uid, req.IsActive); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("remote", r.RemoteAddr))

	stats, err := h.Stats.Stats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("stats served", slog.Int64("total", stats.Total))
	h.writeJSON(w, http.StatusOK, stats)
}
