package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// Account holds the spendable balance of one user in minor currency units.
// Its ID is the owning user's ID.
type Account struct {
	ID        int       `db:"id"`
	Balance   int64     `db:"balance"`
	Disabled  bool      `db:"disabled"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Request struct {
	ID             uuid.UUID  `db:"id"`
	AccountID      int        `db:"account_id"`
	Kind           Kind       `db:"kind"`
	Amount         int64      `db:"amount"`
	State          State      `db:"state"`
	PayoutCard     string     `db:"payout_card"`
	IdempotencyKey string     `db:"idempotency_key"`
	CreatedAt      time.Time  `db:"created_at"`
	DecidedAt      *time.Time `db:"decided_at"`
	DecidedBy      *int       `db:"decided_by"`
	Note           string     `db:"note"`
}

// Adjustment is a signed manual balance correction made by an operator.
type Adjustment struct {
	ID        uuid.UUID `db:"id"`
	AccountID int       `db:"account_id"`
	Amount    int64     `db:"amount"`
	Note      string    `db:"note"`
	CreatedBy *int      `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

type Summary struct {
	AccountID                int
	Balance                  int64
	TotalApprovedDeposits    int64
	TotalApprovedWithdrawals int64
	PendingWithdrawals       int64
	TotalAdjustments         int64
}

// Reconciled reports whether the balance equals the sum of every effective
// movement: approved deposits, approved and reserved withdrawals, adjustments.
func (s Summary) Reconciled() bool {
	return s.Balance == s.TotalApprovedDeposits-s.TotalApprovedWithdrawals-s.PendingWithdrawals+s.TotalAdjustments
}

type SubmitOptions struct {
	PayoutCard     string
	IdempotencyKey string
}

type SubmitResult struct {
	Request  Request
	Balance  int64
	Replayed bool
}

type DecisionResult struct {
	Request Request
	Balance int64
}

type AdjustmentResult struct {
	Adjustment Adjustment
	Balance    int64
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// RequestFilter narrows a request listing. Zero values mean "any".
type RequestFilter struct {
	AccountID int
	Kind      Kind
	State     State
	Limit     int
	// Offset skips that many newest matches; with Limit it pages the history.
	Offset int
}
