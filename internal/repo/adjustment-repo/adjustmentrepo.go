package adjustmentrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, adj *domain.Adjustment) error {
	query := `
        INSERT INTO adjustments (id, account_id, amount, note, created_by, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, adj.ID, adj.AccountID, adj.Amount, adj.Note, adj.CreatedBy, adj.CreatedAt)
	if err != nil {
		zap.L().Error("can't save adjustment", zap.Int("accountID", adj.AccountID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int) ([]domain.Adjustment, error) {
	query := `
        SELECT id, account_id, amount, note, created_by, created_at
        FROM adjustments
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch adjustments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var adjustments []domain.Adjustment
	for rows.Next() {
		var adj domain.Adjustment
		if err := rows.Scan(&adj.ID, &adj.AccountID, &adj.Amount, &adj.Note, &adj.CreatedBy, &adj.CreatedAt); err != nil {
			zap.L().Error("failed to scan adjustment row", zap.Error(err))
			return nil, err
		}
		adjustments = append(adjustments, adj)
	}
	return adjustments, rows.Err()
}
