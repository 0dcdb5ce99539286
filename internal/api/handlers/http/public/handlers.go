package public

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Classifier interface {
	Classify(ctx context.Context, imageRef string) (domain.ClassificationResult, error)
}

type Comparer interface {
	Compare(ctx context.Context, beforeRef, afterRef string) (domain.ComparisonResult, error)
}

type Reports interface {
	Create(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, []domain.StatusHistory, error)
	List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error)
	Resolve(ctx context.Context, id uuid.UUID, req domain.ResolveReportRequest) (domain.ComparisonResult, error)
}

type Handler struct {
	logger     *slog.Logger
	Classifier Classifier
	Comparer   Comparer
	Reports    Reports
}

func NewHandler(logger *slog.Logger, classifier Classifier, comparer Comparer, reports Reports) *Handler {
	return &Handler{
		logger:     logger,
		Classifier: classifier,
		Comparer:   comparer,
		Reports:    reports,
	}
}

func (h *Handler) ScanClassify(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ScanClassify", slog.String("remote", r.RemoteAddr))

	var req domain.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result, err := h.Classifier.Classify(r.Context(), req.ImageRef)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("image classified",
		slog.Bool("is_garbage", result.IsGarbage),
		slog.String("category", string(result.Category)),
		slog.String("analyzed_by", result.AnalyzedBy),
	)
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) ScanCompare(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ScanCompare", slog.String("remote", r.RemoteAddr))

	var req domain.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result, err := h.Comparer.Compare(r.Context(), req.BeforeRef, req.AfterRef)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("images compared",
		slog.Bool("is_clean", result.IsClean),
		slog.Int("score", result.CleanlinessScore),
	)
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) ReportCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReportCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("creating report",
		slog.Float64("lat", req.Location.Latitude),
		slog.Float64("lng", req.Location.Longitude),
		slog.String("category", req.Category),
	)

	id, err := h.Reports.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) ReportGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	report, history, err := h.Reports.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"report":  report,
		"history": history,
	})
}

func (h *Handler) ReportList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReportList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	reports, total, err := h.Reports.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("reports listed", slog.Int("count", len(reports)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"reports": reports,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (h *Handler) ReportResolve(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReportResolve", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.ResolveReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result, err := h.Reports.Resolve(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report resolved",
		slog.String("id", id.String()),
		slog.Int("score", result.CleanlinessScore),
	)
	h.writeJSON(w, http.StatusOK, result)
}
