package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error)
	// Assign is a plain update, not a compare-and-swap: concurrent duplicate
	// report.created events can both match and both write.
	Assign(ctx context.Context, id uuid.UUID, workerUID, ngoID string, at time.Time) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus, at time.Time) error
	AppendStatus(ctx context.Context, entry *domain.StatusHistory) error
	History(ctx context.Context, reportID uuid.UUID) ([]domain.StatusHistory, error)
	CountByStatus(ctx context.Context) (*domain.ReportStats, error)
}

type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) error
	Get(ctx context.Context, uid string) (*domain.Worker, error)
	// ListActiveByNGOs returns role=worker, is_active=true workers ordered by
	// uid so the nearest-match tie-break is deterministic.
	ListActiveByNGOs(ctx context.Context, ngoIDs []string) ([]*domain.Worker, error)
	UpdateLocation(ctx context.Context, uid string, lat, lng float64) error
	SetActive(ctx context.Context, uid string, active bool) error
}

type NGORepository interface {
	Create(ctx context.Context, ngo *domain.NGO) error
	ListNGOs(ctx context.Context) ([]domain.NGO, error)
	ListIDsByCategory(ctx context.Context, category domain.Category) ([]string, error)
}

type ScanRepository interface {
	SaveClassification(ctx context.Context, imageRef string, res domain.ClassificationResult) error
	SaveComparison(ctx context.Context, beforeRef, afterRef string, res domain.ComparisonResult) error
}

func (p *Postgres) Reports() ReportRepository { return p.Report }
func (p *Postgres) Workers() WorkerRepository { return p.Worker }
func (p *Postgres) NGOs() NGORepository       { return p.NGO }
func (p *Postgres) Scans() ScanRepository     { return p.Scan }
