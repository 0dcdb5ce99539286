package postgres

import (
	"context"
	"encoding/json"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

// ScanRepo keeps the waste_scans audit trail. Rows are write-only from the
// core's point of view.
type ScanRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewScanRepo(pool *pgxpool.Pool, logger *slog.Logger) *ScanRepo {
	return &ScanRepo{pool: pool, logger: logger}
}

func (p *ScanRepo) SaveClassification(ctx context.Context, imageRef string, res domain.ClassificationResult) error {
	const op = "postgres.Scan.SaveClassification"

	payload, err := json.Marshal(res)
	if err != nil {
		return e.Wrap(op, err)
	}

	const query = `
		INSERT INTO waste_scans (id, kind, image_ref, payload, analyzed_by, created_at)
		VALUES ($1, 'classification', $2, $3, $4, $5)
	`

	_, err = p.pool.Exec(ctx, query, uuid.New(), imageRef, payload, res.AnalyzedBy, time.Now().UTC())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ScanRepo) SaveComparison(ctx context.Context, beforeRef, afterRef string, res domain.ComparisonResult) error {
	const op = "postgres.Scan.SaveComparison"

	payload, err := json.Marshal(res)
	if err != nil {
		return e.Wrap(op, err)
	}

	const query = `
		INSERT INTO waste_scans (id, kind, image_ref, after_ref, payload, created_at)
		VALUES ($1, 'comparison', $2, $3, $4, $5)
	`

	_, err = p.pool.Exec(ctx, query, uuid.New(), beforeRef, afterRef, payload, time.Now().UTC())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}
