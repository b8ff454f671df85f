package domain

import "errors"

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrNotFound            = errors.New("not found")
	ErrAlreadyDecided      = errors.New("request already processed")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrAccountDisabled     = errors.New("account disabled")
	ErrInvalidKind         = errors.New("unknown request kind")
	ErrInvalidDecision     = errors.New("unknown decision")
	ErrInvalidFilter       = errors.New("invalid filter")
	ErrIdempotencyMismatch = errors.New("idempotency key reused with different parameters")
	ErrUserExists          = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

var businessErrors = []error{
	ErrInvalidAmount,
	ErrInsufficientFunds,
	ErrNotFound,
	ErrAlreadyDecided,
	ErrAccountDisabled,
	ErrInvalidKind,
	ErrInvalidDecision,
	ErrInvalidFilter,
	ErrIdempotencyMismatch,
	ErrUserExists,
	ErrInvalidCredentials,
}

// IsBusiness reports whether err carries one of the ledger's own outcomes
// rather than an infrastructure failure.
func IsBusiness(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
