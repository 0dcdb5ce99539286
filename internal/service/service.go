package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/internal/vision"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ClassificationService turns an image reference into a typed result via the
// primary labeler with a generative fallback.
type ClassificationService interface {
	Classify(ctx context.Context, imageRef string) (domain.ClassificationResult, error)
}

// ComparisonService scores the cleanliness delta of a before/after pair.
type ComparisonService interface {
	Compare(ctx context.Context, beforeRef, afterRef string) (domain.ComparisonResult, error)
}

type ReportService interface {
	Create(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, []domain.StatusHistory, error)
	List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error)
	Resolve(ctx context.Context, id uuid.UUID, req domain.ResolveReportRequest) (domain.ComparisonResult, error)
	Stats(ctx context.Context) (*domain.ReportStats, error)
}

type AdminService interface {
	CreateNGO(ctx context.Context, req domain.CreateNGORequest) (string, error)
	CreateWorker(ctx context.Context, req domain.CreateWorkerRequest) (string, error)
	UpdateWorkerLocation(ctx context.Context, uid string, lat, lng float64) error
	SetWorkerActive(ctx context.Context, uid string, active bool) error
}

// Trigger handlers. Invoked by the queue consumer with at-least-once
// semantics; returned errors are logged there, never surfaced further.
type AssignmentHandler interface {
	HandleReportCreated(ctx context.Context, report *domain.Report) error
}

type DispatchHandler interface {
	HandleReportUpdated(ctx context.Context, before, after *domain.Report) error
	HandleWorkerCreated(ctx context.Context, worker *domain.Worker) error
}

// Collaborator contracts, mocked in tests.

type LabelDetector interface {
	AnnotateImage(ctx context.Context, imageRef string) (*vision.Annotation, error)
}

type GenerativeClassifier interface {
	Classify(ctx context.Context, imageB64, prompt string) (string, error)
}

type PushSender interface {
	Send(ctx context.Context, msg domain.PushMessage) error
}

type TriggerQueue interface {
	Enqueue(ctx context.Context, event domain.TriggerEvent) error
}

type NGOFinder interface {
	ByCategory(ctx context.Context, category domain.Category) ([]string, error)
}

type ReportStore interface {
	Create(ctx context.Context, report *domain.Report) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error)
	Assign(ctx context.Context, id uuid.UUID, workerUID, ngoID string, at time.Time) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus, at time.Time) error
	AppendStatus(ctx context.Context, entry *domain.StatusHistory) error
	History(ctx context.Context, reportID uuid.UUID) ([]domain.StatusHistory, error)
	CountByStatus(ctx context.Context) (*domain.ReportStats, error)
}

type WorkerStore interface {
	Create(ctx context.Context, worker *domain.Worker) error
	Get(ctx context.Context, uid string) (*domain.Worker, error)
	ListActiveByNGOs(ctx context.Context, ngoIDs []string) ([]*domain.Worker, error)
	UpdateLocation(ctx context.Context, uid string, lat, lng float64) error
	SetActive(ctx context.Context, uid string, active bool) error
}

type NGOStore interface {
	Create(ctx context.Context, ngo *domain.NGO) error
	ListNGOs(ctx context.Context) ([]domain.NGO, error)
	ListIDsByCategory(ctx context.Context, category domain.Category) ([]string, error)
}

type ScanStore interface {
	SaveClassification(ctx context.Context, imageRef string, res domain.ClassificationResult) error
	SaveComparison(ctx context.Context, beforeRef, afterRef string, res domain.ComparisonResult) error
}

type Service struct {
	Classification ClassificationService
	Comparison     ComparisonService
	Reports        ReportService
	Admin          AdminService
	Assignment     AssignmentHandler
	Dispatcher     DispatchHandler
}

func NewService(
	classification ClassificationService,
	comparison ComparisonService,
	reports ReportService,
	admin AdminService,
	assignment AssignmentHandler,
	dispatcher DispatchHandler,
) *Service {
	return &Service{
		Classification: classification,
		Comparison:     comparison,
		Reports:        reports,
		Admin:          admin,
		Assignment:     assignment,
		Dispatcher:     dispatcher,
	}
}
