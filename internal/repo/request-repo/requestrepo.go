package requestrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
)

// Repository is the request ledger: deposit and withdrawal requests and
// their single transition out of pending.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const requestColumns = `id, account_id, kind, amount, state,
        COALESCE(payout_card, ''), COALESCE(idempotency_key, ''),
        created_at, decided_at, decided_by, COALESCE(note, '')`

type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(row scanner) (*domain.Request, error) {
	var req domain.Request
	var kind, state string
	err := row.Scan(
		&req.ID, &req.AccountID, &kind, &req.Amount, &state,
		&req.PayoutCard, &req.IdempotencyKey,
		&req.CreatedAt, &req.DecidedAt, &req.DecidedBy, &req.Note,
	)
	if err != nil {
		return nil, err
	}
	req.Kind = domain.Kind(kind)
	req.State = domain.State(state)
	return &req, nil
}

func (r *Repository) Create(ctx context.Context, req *domain.Request) error {
	query := `
        INSERT INTO requests (id, account_id, kind, amount, state, payout_card, idempotency_key, created_at)
        VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8)
    `
	_, err := r.db.Exec(ctx, query,
		req.ID, req.AccountID, string(req.Kind), req.Amount, string(req.State),
		req.PayoutCard, req.IdempotencyKey, req.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save request", zap.String("requestID", req.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) getOne(ctx context.Context, query string, args ...any) (*domain.Request, error) {
	req, err := scanRequest(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("can't get request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	return r.getOne(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)
}

// GetForUpdate locks the request row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	return r.getOne(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1 FOR UPDATE`, id)
}

// FindByIdempotencyKey returns nil, nil when no request carries the key.
func (r *Repository) FindByIdempotencyKey(ctx context.Context, accountID int, key string) (*domain.Request, error) {
	req, err := r.getOne(ctx, `SELECT `+requestColumns+` FROM requests WHERE account_id = $1 AND idempotency_key = $2`, accountID, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return req, err
}

// MarkDecided writes the terminal state. The pending guard in the WHERE
// clause makes a second decision fail even without the row lock.
func (r *Repository) MarkDecided(ctx context.Context, req *domain.Request) error {
	query := `
        UPDATE requests
        SET state = $2, decided_at = $3, decided_by = $4, note = NULLIF($5, '')
        WHERE id = $1 AND state = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, req.ID, string(req.State), req.DecidedAt, req.DecidedBy, req.Note)
	if err != nil {
		zap.L().Error("failed to update request", zap.String("requestID", req.ID.String()), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyDecided
	}
	return nil
}

func (r *Repository) List(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.AccountID != 0 {
		args = append(args, filter.AccountID)
		conditions = append(conditions, fmt.Sprintf("account_id = $%d", len(args)))
	}
	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)))
	}
	if filter.State != "" {
		args = append(args, string(filter.State))
		conditions = append(conditions, fmt.Sprintf("state = $%d", len(args)))
	}

	query := `SELECT ` + requestColumns + ` FROM requests`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d`, len(args))
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	return r.list(ctx, query, args...)
}

// FindStalePending returns the oldest pending requests created before cutoff.
func (r *Repository) FindStalePending(ctx context.Context, cutoff time.Time, limit int) ([]domain.Request, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM requests
        WHERE state = 'pending' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	return r.list(ctx, query, cutoff, limit)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Request, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("failed to scan request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}
