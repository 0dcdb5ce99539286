package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

// WorkerRepo reads and writes the users table. Worker accounts and citizen
// reporters share it; the role column tells them apart.
type WorkerRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewWorkerRepo(pool *pgxpool.Pool, logger *slog.Logger) *WorkerRepo {
	return &WorkerRepo{pool: pool, logger: logger}
}

func (p *WorkerRepo) Create(ctx context.Context, worker *domain.Worker) error {
	const op = "postgres.Worker.Create"

	if worker == nil || worker.UID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if worker.CreatedAt.IsZero() {
		worker.CreatedAt = time.Now().UTC()
	}
	if worker.Role == "" {
		worker.Role = domain.RoleWorker
	}

	const query = `
		INSERT INTO users (uid, name, role, ngo_id, is_active, lat, lng, fcm_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	var lat, lng *float64
	if worker.CurrentLocation != nil {
		lat, lng = &worker.CurrentLocation.Latitude, &worker.CurrentLocation.Longitude
	}

	_, err := p.pool.Exec(ctx, query,
		worker.UID,
		worker.Name,
		worker.Role,
		nullable(worker.NGOID),
		worker.IsActive,
		lat,
		lng,
		nullable(worker.FCMToken),
		worker.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("uid", worker.UID))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *WorkerRepo) Get(ctx context.Context, uid string) (*domain.Worker, error) {
	const op = "postgres.Worker.Get"

	const query = `
		SELECT uid, name, role, ngo_id, is_active, lat, lng, fcm_token, created_at
		FROM users
		WHERE uid = $1
	`

	row := p.pool.QueryRow(ctx, query, uid)
	worker, err := scanWorker(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("uid", uid))
		return nil, e.WrapError(ctx, op, err)
	}

	return worker, nil
}

func (p *WorkerRepo) ListActiveByNGOs(ctx context.Context, ngoIDs []string) ([]*domain.Worker, error) {
	const op = "postgres.Worker.ListActiveByNGOs"

	if len(ngoIDs) == 0 {
		return nil, nil
	}

	// ORDER BY uid pins the enumeration order; nearest-match ties then
	// resolve to the lowest uid instead of incidental row order.
	const query = `
		SELECT uid, name, role, ngo_id, is_active, lat, lng, fcm_token, created_at
		FROM users
		WHERE role = 'worker'
		  AND is_active = TRUE
		  AND ngo_id = ANY($1)
		ORDER BY uid
	`

	rows, err := p.pool.Query(ctx, query, ngoIDs)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var workers []*domain.Worker
	for rows.Next() {
		worker, err := scanWorker(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		workers = append(workers, worker)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return workers, nil
}

func (p *WorkerRepo) UpdateLocation(ctx context.Context, uid string, lat, lng float64) error {
	const op = "postgres.Worker.UpdateLocation"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `UPDATE users SET lat = $2, lng = $3 WHERE uid = $1`

	cmd, err := p.pool.Exec(ctx, query, uid, lat, lng)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("uid", uid))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *WorkerRepo) SetActive(ctx context.Context, uid string, active bool) error {
	const op = "postgres.Worker.SetActive"

	const query = `UPDATE users SET is_active = $2 WHERE uid = $1`

	cmd, err := p.pool.Exec(ctx, query, uid, active)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("uid", uid))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func scanWorker(row rowScanner) (*domain.Worker, error) {
	var w domain.Worker
	var ngoID, fcmToken *string
	var lat, lng *float64

	if err := row.Scan(
		&w.UID,
		&w.Name,
		&w.Role,
		&ngoID,
		&w.IsActive,
		&lat,
		&lng,
		&fcmToken,
		&w.CreatedAt,
	); err != nil {
		return nil, err
	}

	w.NGOID = deref(ngoID)
	w.FCMToken = deref(fcmToken)
	if lat != nil && lng != nil {
		w.CurrentLocation = &domain.Location{Latitude: *lat, Longitude: *lng}
	}

	return &w, nil
}
