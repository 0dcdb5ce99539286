package postgres

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

type NGORepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNGORepo(pool *pgxpool.Pool, logger *slog.Logger) *NGORepo {
	return &NGORepo{pool: pool, logger: logger}
}

func (p *NGORepo) Create(ctx context.Context, ngo *domain.NGO) error {
	const op = "postgres.NGO.Create"

	if ngo == nil || ngo.ID == "" || len(ngo.Categories) == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if ngo.CreatedAt.IsZero() {
		ngo.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO ngos (id, name, categories, created_at)
		VALUES ($1, $2, $3, $4)
	`

	categories := make([]string, len(ngo.Categories))
	for i, c := range ngo.Categories {
		categories[i] = string(c)
	}

	_, err := p.pool.Exec(ctx, query, ngo.ID, ngo.Name, categories, ngo.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", ngo.ID))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *NGORepo) ListNGOs(ctx context.Context) ([]domain.NGO, error) {
	const op = "postgres.NGO.ListNGOs"

	const query = `SELECT id, name, categories, created_at FROM ngos ORDER BY id`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var ngos []domain.NGO
	for rows.Next() {
		var ngo domain.NGO
		var categories []string
		if err := rows.Scan(&ngo.ID, &ngo.Name, &categories, &ngo.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		ngo.Categories = make([]domain.Category, len(categories))
		for i, c := range categories {
			ngo.Categories[i] = domain.Category(c)
		}
		ngos = append(ngos, ngo)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return ngos, nil
}

// ListIDsByCategory is the array-containment lookup: NGOs whose categories
// set contains the given category, ordered by id.
func (p *NGORepo) ListIDsByCategory(ctx context.Context, category domain.Category) ([]string, error) {
	const op = "postgres.NGO.ListIDsByCategory"

	if !category.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCategory)
	}

	const query = `
		SELECT id
		FROM ngos
		WHERE categories @> ARRAY[$1]::text[]
		ORDER BY id
	`

	rows, err := p.pool.Query(ctx, query, string(category))
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	ids := make([]string, 0, 4)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return ids, nil
}
