package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"github.com/Hetwork/swachhsathi-cf/internal/api/handlers/http/admin"
	mock_admin "github.com/Hetwork/swachhsathi-cf/internal/api/handlers/http/admin/mocks"
	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAdminNGOCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roster := mock_admin.NewMockRoster(ctrl)
	h := admin.NewHandler(newTestLogger(), roster, mock_admin.NewMockStatsGetter(ctrl))

	wantReq := domain.CreateNGORequest{
		Name:       "Green City",
		Categories: []string{"Plastic Waste", "Drain Cleaning"},
	}
	roster.EXPECT().CreateNGO(gomock.Any(), wantReq).Return("ngo-1", nil).Times(1)

	body := `{"name":"Green City","categories":["Plastic Waste","Drain Cleaning"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/ngos", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.AdminNGOCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestAdminNGOCreate_UnknownCategory_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockRoster(ctrl), mock_admin.NewMockStatsGetter(ctrl))

	body := `{"name":"Green City","categories":["Space Debris"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/ngos", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.AdminNGOCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminWorkerCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roster := mock_admin.NewMockRoster(ctrl)
	h := admin.NewHandler(newTestLogger(), roster, mock_admin.NewMockStatsGetter(ctrl))

	wantReq := domain.CreateWorkerRequest{Name: "Asha", NGOID: "ngo-1", FCMToken: "tok-1"}
	roster.EXPECT().CreateWorker(gomock.Any(), wantReq).Return("worker-1", nil).Times(1)

	body := `{"name":"Asha","ngo_id":"ngo-1","fcm_token":"tok-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/workers", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.AdminWorkerCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	var got map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["uid"] != "worker-1" {
		t.Fatalf("unexpected uid: %q", got["uid"])
	}
}

func TestAdminWorkerLocation_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roster := mock_admin.NewMockRoster(ctrl)
	h := admin.NewHandler(newTestLogger(), roster, mock_admin.NewMockStatsGetter(ctrl))

	roster.EXPECT().UpdateWorkerLocation(gomock.Any(), "worker-1", 12.97, 77.59).Return(nil).Times(1)

	body := `{"latitude":12.97,"longitude":77.59}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/workers/worker-1/location", bytes.NewBufferString(body))
	req = withURLParam(req, "uid", "worker-1")
	rr := httptest.NewRecorder()

	h.AdminWorkerLocation(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestAdminWorkerLocation_OutOfRange_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockRoster(ctrl), mock_admin.NewMockStatsGetter(ctrl))

	body := `{"latitude":123.0,"longitude":77.59}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/workers/worker-1/location", bytes.NewBufferString(body))
	req = withURLParam(req, "uid", "worker-1")
	rr := httptest.NewRecorder()

	h.AdminWorkerLocation(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminWorkerActive_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roster := mock_admin.NewMockRoster(ctrl)
	h := admin.NewHandler(newTestLogger(), roster, mock_admin.NewMockStatsGetter(ctrl))

	roster.EXPECT().SetWorkerActive(gomock.Any(), "ghost", false).Return(e.ErrNotFound).Times(1)

	body := `{"is_active":false}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/workers/ghost/active", bytes.NewBufferString(body))
	req = withURLParam(req, "uid", "ghost")
	rr := httptest.NewRecorder()

	h.AdminWorkerActive(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestAdminStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStatsGetter(ctrl)
	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockRoster(ctrl), stats)

	want := &domain.ReportStats{Total: 12, Created: 5, Assigned: 4, InProgress: 1, Resolved: 2}
	stats.EXPECT().Stats(gomock.Any()).Return(want, nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()

	h.AdminStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	var got domain.ReportStats
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !reflect.DeepEqual(&got, want) {
		t.Fatalf("unexpected stats: got=%+v want=%+v", got, want)
	}
}
