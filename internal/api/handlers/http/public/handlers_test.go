package public_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Hetwork/swachhsathi-cf/internal/api/handlers/http/public"
	mock_public "github.com/Hetwork/swachhsathi-cf/internal/api/handlers/http/public/mocks"
	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

// withURLParam injects a chi route parameter for direct handler invocation.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestScanClassify_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mock_public.NewMockClassifier(ctrl)
	h := public.NewHandler(newTestLogger(), classifier, mock_public.NewMockComparer(ctrl), mock_public.NewMockReports(ctrl))

	want := domain.ClassificationResult{
		IsGarbage:      true,
		Category:       domain.CategoryPlasticWaste,
		Severity:       domain.SeverityHigh,
		Confidence:     0.91,
		Description:    "Detected: Plastic, Bottle (6 objects identified)",
		DetectedLabels: []string{"Plastic", "Bottle"},
		ObjectCount:    6,
		AnalyzedBy:     domain.AnalyzedByPrimary,
	}
	classifier.EXPECT().Classify(gomock.Any(), "https://img/1.jpg").Return(want, nil).Times(1)

	body := `{"image_ref":"https://img/1.jpg"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scans/classify", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.ScanClassify(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.ClassificationResult](t, rr)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestScanClassify_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := public.NewHandler(newTestLogger(), mock_public.NewMockClassifier(ctrl), mock_public.NewMockComparer(ctrl), mock_public.NewMockReports(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scans/classify", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.ScanClassify(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestScanClassify_MissingRef_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := public.NewHandler(newTestLogger(), mock_public.NewMockClassifier(ctrl), mock_public.NewMockComparer(ctrl), mock_public.NewMockReports(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scans/classify", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	h.ScanClassify(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestScanClassify_BothClassifiersDown_502(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mock_public.NewMockClassifier(ctrl)
	h := public.NewHandler(newTestLogger(), classifier, mock_public.NewMockComparer(ctrl), mock_public.NewMockReports(ctrl))

	classifier.EXPECT().Classify(gomock.Any(), "ref").Return(domain.ClassificationResult{}, e.ErrClassification).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scans/classify", bytes.NewBufferString(`{"image_ref":"ref"}`))
	rr := httptest.NewRecorder()

	h.ScanClassify(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadGateway, rr.Code, rr.Body.String())
	}
}

func TestScanCompare_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comparer := mock_public.NewMockComparer(ctrl)
	h := public.NewHandler(newTestLogger(), mock_public.NewMockClassifier(ctrl), comparer, mock_public.NewMockReports(ctrl))

	want := domain.ComparisonResult{
		IsClean:            true,
		CleanlinessScore:   100,
		Message:            "Area successfully cleaned! Great work.",
		BeforeLabels:       []string{"Garbage"},
		AfterLabels:        []string{"Clean street"},
		GarbageReduction:   1,
		BeforeGarbageCount: 1,
	}
	comparer.EXPECT().Compare(gomock.Any(), "b.jpg", "a.jpg").Return(want, nil).Times(1)

	body := `{"before_ref":"b.jpg","after_ref":"a.jpg"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scans/compare", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.ScanCompare(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.ComparisonResult](t, rr)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestReportCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_public.NewMockReports(ctrl)
	h := public.NewHandler(newTestLogger(), mock_public.NewMockClassifier(ctrl), mock_public.NewMockComparer(ctrl), reports)

	id := uuid.New()
	wantReq := domain.CreateReportRequest{
		Location: domain.Location{Latitude: 12.97, Longitude: 77.59, Address: "MG Road"},
		Category: "Plastic Waste",
		Severity: domain.SeverityHigh,
		ImageURL: "https://img/1.jpg",
		UserID:   "citizen-1",
	}
	reports.EXPECT().Create(gomock.Any(), wantReq).Return(id, nil).Times(1)

	body := `{"location":{"latitude":12.97,"longitude":77.59,"address":"MG Road"},"category":"Plastic Waste","severity":"High","image_url":"https://img/1.jpg","user_id":"citizen-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.ReportCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]string](t, rr)
	if got["id"] != id.String() {
		t.Fatalf("unexpected id: %q", got["id"])
	}
}

func TestReportCreate_UnknownCategory_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := public.NewHandler(newTestLogger(), mock_public.NewMockClassifier(ctrl), mock_public.NewMockComparer(ctrl), mock_public.NewMockReports(ctrl))

	body := `{"location":{"latitude":12.97,"longitude":77.59},"category":"Space Debris","user_id":"citizen-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.ReportCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestReportGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_public.NewMockReports(ctrl)
	h := public.NewHandler(newTestLogger(), mock_public.NewMockClassifier(ctrl), mock_public.NewMockComparer(ctrl), reports)

	id := uuid.New()
	reports.EXPECT().Get(gomock.Any(), id).Return(nil, nil, e.ErrNotFound).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/"+id.String(), nil)
	req = withURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ReportGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestReportGet_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := public.NewHandler(newTestLogger(), mock_public.NewMockClassifier(ctrl), mock_public.NewMockComparer(ctrl), mock_public.NewMockReports(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/not-a-uuid", nil)
	req = withURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.ReportGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReportList_CapsLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_public.NewMockReports(ctrl)
	h := public.NewHandler(newTestLogger(), mock_public.NewMockClassifier(ctrl), mock_public.NewMockComparer(ctrl), reports)

	reports.EXPECT().List(gomock.Any(), 3, 100).Return([]*domain.Report{}, int64(0), nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports?page=3&limit=500", nil)
	rr := httptest.NewRecorder()

	h.ReportList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestReportResolve_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_public.NewMockReports(ctrl)
	h := public.NewHandler(newTestLogger(), mock_public.NewMockClassifier(ctrl), mock_public.NewMockComparer(ctrl), reports)

	id := uuid.New()
	wantReq := domain.ResolveReportRequest{WorkerID: "w1", BeforeRef: "b.jpg", AfterRef: "a.jpg"}
	want := domain.ComparisonResult{IsClean: true, CleanlinessScore: 90, Message: "Area successfully cleaned! Great work."}
	reports.EXPECT().Resolve(gomock.Any(), id, wantReq).Return(want, nil).Times(1)

	body := `{"worker_id":"w1","before_ref":"b.jpg","after_ref":"a.jpg"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/"+id.String()+"/resolve", bytes.NewBufferString(body))
	req = withURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ReportResolve(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.ComparisonResult](t, rr)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestReportResolve_AlreadyResolved_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_public.NewMockReports(ctrl)
	h := public.NewHandler(newTestLogger(), mock_public.NewMockClassifier(ctrl), mock_public.NewMockComparer(ctrl), reports)

	id := uuid.New()
	reports.EXPECT().
		Resolve(gomock.Any(), id, gomock.Any()).
		Return(domain.ComparisonResult{}, fmt.Errorf("resolve report: %w: already resolved", e.ErrConflict)).
		Times(1)

	body := `{"before_ref":"b.jpg","after_ref":"a.jpg"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/"+id.String()+"/resolve", bytes.NewBufferString(body))
	req = withURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ReportResolve(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}
