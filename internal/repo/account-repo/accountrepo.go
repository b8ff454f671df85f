package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
)

// Repository is the account store. Balance changes are single conditional
// statements, so a debit can never drive a balance below zero.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const accountColumns = `id, balance, disabled, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(&account.ID, &account.Balance, &account.Disabled, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *Repository) CreateAccount(ctx context.Context, userID int) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (id, balance)
        VALUES ($1, 0)
        RETURNING ` + accountColumns
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create account", zap.Int("accountID", userID), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		zap.L().Error("failed to get account", zap.Int("accountID", id), zap.Error(err))
	}
	return account, err
}

// GetForUpdate locks the account row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		zap.L().Error("failed to lock account", zap.Int("accountID", id), zap.Error(err))
	}
	return account, err
}

func (r *Repository) Credit(ctx context.Context, id int, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	query := `
        UPDATE accounts
        SET balance = balance + $1, updated_at = NOW()
        WHERE id = $2
        RETURNING balance
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, amount, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		zap.L().Error("failed to credit account", zap.Int("accountID", id), zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) Debit(ctx context.Context, id int, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	query := `
        UPDATE accounts
        SET balance = balance - $1, updated_at = NOW()
        WHERE id = $2 AND balance >= $1
        RETURNING balance
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, amount, id).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("failed to debit account", zap.Int("accountID", id), zap.Error(err))
		return 0, err
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, id).Scan(&exists); err != nil {
		zap.L().Error("failed to check account", zap.Int("accountID", id), zap.Error(err))
		return 0, err
	}
	if !exists {
		return 0, domain.ErrNotFound
	}
	return 0, domain.ErrInsufficientFunds
}

func (r *Repository) SetDisabled(ctx context.Context, id int, disabled bool) error {
	query := `
        UPDATE accounts
        SET disabled = $1, updated_at = NOW()
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, disabled, id)
	if err != nil {
		zap.L().Error("failed to update account status", zap.Int("accountID", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// A single statement reads one snapshot, so the totals agree with the balance.
const summaryQuery = `
        SELECT a.id, a.balance,
            COALESCE((SELECT SUM(amount) FROM requests WHERE account_id = a.id AND kind = 'deposit' AND state = 'approved'), 0),
            COALESCE((SELECT SUM(amount) FROM requests WHERE account_id = a.id AND kind = 'withdrawal' AND state = 'approved'), 0),
            COALESCE((SELECT SUM(amount) FROM requests WHERE account_id = a.id AND kind = 'withdrawal' AND state = 'pending'), 0),
            COALESCE((SELECT SUM(amount) FROM adjustments WHERE account_id = a.id), 0)
        FROM accounts a
    `

func scanSummary(row pgx.Row) (*domain.Summary, error) {
	var s domain.Summary
	err := row.Scan(&s.AccountID, &s.Balance, &s.TotalApprovedDeposits, &s.TotalApprovedWithdrawals, &s.PendingWithdrawals, &s.TotalAdjustments)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) GetSummary(ctx context.Context, id int) (*domain.Summary, error) {
	summary, err := scanSummary(r.db.QueryRow(ctx, summaryQuery+`WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("failed to get account summary", zap.Int("accountID", id), zap.Error(err))
		return nil, err
	}
	return summary, nil
}

func (r *Repository) ListSummaries(ctx context.Context) ([]domain.Summary, error) {
	rows, err := r.db.Query(ctx, summaryQuery+`ORDER BY a.id`)
	if err != nil {
		zap.L().Error("failed to list account summaries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.Summary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			zap.L().Error("failed to scan account summary", zap.Error(err))
			return nil, err
		}
		summaries = append(summaries, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}
	return summaries, nil
}
