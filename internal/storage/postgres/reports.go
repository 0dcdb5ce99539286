package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

const reportColumns = `id, lat, lng, address, category, severity, status,
	   description, image_url, assigned_to, ngo_id, user_id, created_at, updated_at`

func (p *ReportRepo) Create(ctx context.Context, report *domain.Report) error {
	const op = "postgres.Report.Create"

	if report == nil || report.UserID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	now := time.Now().UTC()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = now
	}
	if report.UpdatedAt.IsZero() {
		report.UpdatedAt = report.CreatedAt
	}
	if report.Status == "" {
		report.Status = domain.ReportCreated
	}

	const query = `
		INSERT INTO reports (id, lat, lng, address, category, severity, status,
		                     description, image_url, assigned_to, ngo_id, user_id,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	var lat, lng *float64
	var address string
	if report.Location != nil {
		lat, lng = &report.Location.Latitude, &report.Location.Longitude
		address = report.Location.Address
	}

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		lat,
		lng,
		nullable(address),
		string(report.Category),
		nullable(string(report.Severity)),
		string(report.Status),
		nullable(report.Description),
		nullable(report.ImageURL),
		nullable(report.AssignedTo),
		nullable(report.NGOID),
		report.UserID,
		report.CreatedAt,
		report.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	const op = "postgres.Report.Get"

	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

	row := p.pool.QueryRow(ctx, query, id)
	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return report, nil
}

func (p *ReportRepo) List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error) {
	const op = "postgres.Report.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM reports`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	query := `SELECT ` + reportColumns + `
		FROM reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := p.pool.Query(ctx, query, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return reports, total, nil
}

func (p *ReportRepo) Assign(ctx context.Context, id uuid.UUID, workerUID, ngoID string, at time.Time) error {
	const op = "postgres.Report.Assign"

	if workerUID == "" || ngoID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		UPDATE reports
		SET assigned_to = $2,
			ngo_id      = $3,
			status      = $4,
			updated_at  = $5
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, workerUID, ngoID, string(domain.ReportAssigned), at)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *ReportRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus, at time.Time) error {
	const op = "postgres.Report.UpdateStatus"

	const query = `
		UPDATE reports
		SET status     = $2,
			updated_at = $3
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, string(status), at)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *ReportRepo) AppendStatus(ctx context.Context, entry *domain.StatusHistory) error {
	const op = "postgres.Report.AppendStatus"

	if entry == nil || entry.ReportID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	const query = `
		INSERT INTO report_status (id, report_id, status, worker_id, worker_name, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := p.pool.Exec(ctx, query,
		entry.ID,
		entry.ReportID,
		string(entry.Status),
		nullable(entry.WorkerID),
		nullable(entry.WorkerName),
		nullable(entry.Message),
		entry.Timestamp,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("report_id", entry.ReportID.String()))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ReportRepo) History(ctx context.Context, reportID uuid.UUID) ([]domain.StatusHistory, error) {
	const op = "postgres.Report.History"

	const query = `
		SELECT id, report_id, status, worker_id, worker_name, message, created_at
		FROM report_status
		WHERE report_id = $1
		ORDER BY created_at ASC
	`

	rows, err := p.pool.Query(ctx, query, reportID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var entries []domain.StatusHistory
	for rows.Next() {
		var entry domain.StatusHistory
		var status string
		var workerID, workerName, message *string
		if err := rows.Scan(
			&entry.ID,
			&entry.ReportID,
			&status,
			&workerID,
			&workerName,
			&message,
			&entry.Timestamp,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		entry.Status = domain.ReportStatus(status)
		entry.WorkerID = deref(workerID)
		entry.WorkerName = deref(workerName)
		entry.Message = deref(message)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return entries, nil
}

func (p *ReportRepo) CountByStatus(ctx context.Context) (*domain.ReportStats, error) {
	const op = "postgres.Report.CountByStatus"

	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'created'),
			COUNT(*) FILTER (WHERE status = 'assigned'),
			COUNT(*) FILTER (WHERE status = 'in_progress'),
			COUNT(*) FILTER (WHERE status = 'resolved')
		FROM reports
	`

	var stats domain.ReportStats
	if err := p.pool.QueryRow(ctx, query).Scan(
		&stats.Total,
		&stats.Created,
		&stats.Assigned,
		&stats.InProgress,
		&stats.Resolved,
	); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*domain.Report, error) {
	var r domain.Report
	var lat, lng *float64
	var address, severity, description, imageURL, assignedTo, ngoID *string
	var category, status string

	if err := row.Scan(
		&r.ID,
		&lat,
		&lng,
		&address,
		&category,
		&severity,
		&status,
		&description,
		&imageURL,
		&assignedTo,
		&ngoID,
		&r.UserID,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if lat != nil && lng != nil {
		r.Location = &domain.Location{Latitude: *lat, Longitude: *lng, Address: deref(address)}
	}
	r.Category = domain.Category(category)
	r.Severity = domain.Severity(deref(severity))
	r.Status = domain.ReportStatus(status)
	r.Description = deref(description)
	r.ImageURL = deref(imageURL)
	r.AssignedTo = deref(assignedTo)
	r.NGOID = deref(ngoID)

	return &r, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
