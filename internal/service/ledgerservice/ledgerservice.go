package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/metrics"
	"github.com/GlebRadaev/investledger/internal/pg"
)

type AccountRepo interface {
	GetForUpdate(ctx context.Context, id int) (*domain.Account, error)
	Credit(ctx context.Context, id int, amount int64) (int64, error)
	Debit(ctx context.Context, id int, amount int64) (int64, error)
	SetDisabled(ctx context.Context, id int, disabled bool) error
}

type RequestRepo interface {
	Create(ctx context.Context, req *domain.Request) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	FindByIdempotencyKey(ctx context.Context, accountID int, key string) (*domain.Request, error)
	MarkDecided(ctx context.Context, req *domain.Request) error
}

type AdjustmentRepo interface {
	Create(ctx context.Context, adj *domain.Adjustment) error
}

// Notifier receives committed decisions. It must not block.
type Notifier interface {
	RequestDecided(result domain.DecisionResult)
}

// Service applies every balance-changing operation inside one transaction,
// so a request transition and its balance effect commit or roll back together.
type Service struct {
	txManager      pg.TXManager
	accountRepo    AccountRepo
	requestRepo    RequestRepo
	adjustmentRepo AdjustmentRepo
	notifier       Notifier
	metrics        *metrics.Metrics

	now   func() time.Time
	newID func() uuid.UUID
}

func New(
	txManager pg.TXManager,
	accountRepo AccountRepo,
	requestRepo RequestRepo,
	adjustmentRepo AdjustmentRepo,
	notifier Notifier,
	m *metrics.Metrics,
) *Service {
	return &Service{
		txManager:      txManager,
		accountRepo:    accountRepo,
		requestRepo:    requestRepo,
		adjustmentRepo: adjustmentRepo,
		notifier:       notifier,
		metrics:        m,
		now:            func() time.Time { return time.Now().UTC() },
		newID:          uuid.New,
	}
}

// Submit records a pending request. A withdrawal reserves its amount
// immediately; a deposit leaves the balance untouched until approval.
func (s *Service) Submit(ctx context.Context, accountID int, kind domain.Kind, amount int64, opts domain.SubmitOptions) (*domain.SubmitResult, error) {
	if !kind.Valid() {
		return nil, s.fail("submit", fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind))
	}
	if amount <= 0 {
		return nil, s.fail("submit", domain.ErrInvalidAmount)
	}
	if kind == domain.KindDeposit {
		opts.PayoutCard = ""
	}

	var result domain.SubmitResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}

		if opts.IdempotencyKey != "" {
			existing, err := s.requestRepo.FindByIdempotencyKey(ctx, accountID, opts.IdempotencyKey)
			if err != nil {
				return err
			}
			if existing != nil {
				if existing.Kind != kind || existing.Amount != amount {
					return domain.ErrIdempotencyMismatch
				}
				result = domain.SubmitResult{Request: *existing, Balance: account.Balance, Replayed: true}
				return nil
			}
		}

		if account.Disabled {
			return domain.ErrAccountDisabled
		}

		balance := account.Balance
		if kind == domain.KindWithdrawal {
			balance, err = s.accountRepo.Debit(ctx, accountID, amount)
			if err != nil {
				return err
			}
		}

		req := domain.Request{
			ID:             s.newID(),
			AccountID:      accountID,
			Kind:           kind,
			Amount:         amount,
			State:          domain.StatePending,
			PayoutCard:     opts.PayoutCard,
			IdempotencyKey: opts.IdempotencyKey,
			CreatedAt:      s.now(),
		}
		if err := s.requestRepo.Create(ctx, &req); err != nil {
			return err
		}
		result = domain.SubmitResult{Request: req, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, s.fail("submit", err)
	}

	if result.Replayed {
		zap.L().Info("submission replayed",
			zap.String("requestID", result.Request.ID.String()),
			zap.String("idempotencyKey", opts.IdempotencyKey))
		return &result, nil
	}
	s.metrics.RequestSubmitted(kind)
	zap.L().Info("request submitted",
		zap.String("requestID", result.Request.ID.String()),
		zap.Int("accountID", accountID),
		zap.String("kind", string(kind)),
		zap.Int64("amount", amount),
		zap.Int64("balance", result.Balance))
	return &result, nil
}

// Decide moves a pending request to its terminal state. decidedBy is nil
// when the system decides, e.g. on expiry.
func (s *Service) Decide(ctx context.Context, requestID uuid.UUID, decision domain.Decision, note string, decidedBy *int) (*domain.DecisionResult, error) {
	if !decision.Valid() {
		return nil, s.fail("decide", fmt.Errorf("%w: %q", domain.ErrInvalidDecision, decision))
	}

	var result domain.DecisionResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.requestRepo.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		tr, err := domain.NextState(req.State, req.Kind, decision)
		if err != nil {
			return err
		}

		var balance int64
		switch tr.Effect {
		case domain.EffectCredit:
			balance, err = s.accountRepo.Credit(ctx, req.AccountID, req.Amount)
			if err != nil {
				return err
			}
		default:
			account, err := s.accountRepo.GetForUpdate(ctx, req.AccountID)
			if err != nil {
				return err
			}
			balance = account.Balance
		}

		decidedAt := s.now()
		req.State = tr.Next
		req.DecidedAt = &decidedAt
		req.DecidedBy = decidedBy
		req.Note = note
		if err := s.requestRepo.MarkDecided(ctx, req); err != nil {
			return err
		}
		result = domain.DecisionResult{Request: *req, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, s.fail("decide", err)
	}

	s.metrics.RequestDecided(result.Request.Kind, decision)
	zap.L().Info("request decided",
		zap.String("requestID", requestID.String()),
		zap.String("kind", string(result.Request.Kind)),
		zap.String("state", string(result.Request.State)),
		zap.Int64("balance", result.Balance))
	if s.notifier != nil {
		s.notifier.RequestDecided(result)
	}
	return &result, nil
}

func (s *Service) Approve(ctx context.Context, requestID uuid.UUID, note string, decidedBy *int) (*domain.DecisionResult, error) {
	return s.Decide(ctx, requestID, domain.DecisionApprove, note, decidedBy)
}

func (s *Service) Reject(ctx context.Context, requestID uuid.UUID, note string, decidedBy *int) (*domain.DecisionResult, error) {
	return s.Decide(ctx, requestID, domain.DecisionReject, note, decidedBy)
}

// Adjust applies a signed operator correction. A negative amount may not
// take the balance below zero.
func (s *Service) Adjust(ctx context.Context, accountID int, amount int64, note string, createdBy *int) (*domain.AdjustmentResult, error) {
	if amount == 0 {
		return nil, s.fail("adjust", domain.ErrInvalidAmount)
	}

	var result domain.AdjustmentResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.accountRepo.GetForUpdate(ctx, accountID); err != nil {
			return err
		}

		var (
			balance int64
			err     error
		)
		if amount > 0 {
			balance, err = s.accountRepo.Credit(ctx, accountID, amount)
		} else {
			balance, err = s.accountRepo.Debit(ctx, accountID, -amount)
		}
		if err != nil {
			return err
		}

		adj := domain.Adjustment{
			ID:        s.newID(),
			AccountID: accountID,
			Amount:    amount,
			Note:      note,
			CreatedBy: createdBy,
			CreatedAt: s.now(),
		}
		if err := s.adjustmentRepo.Create(ctx, &adj); err != nil {
			return err
		}
		result = domain.AdjustmentResult{Adjustment: adj, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, s.fail("adjust", err)
	}

	zap.L().Info("balance adjusted",
		zap.Int("accountID", accountID),
		zap.Int64("amount", amount),
		zap.Int64("balance", result.Balance))
	return &result, nil
}

// SetAccountDisabled blocks or unblocks new submissions. Pending requests
// of a disabled account can still be decided.
func (s *Service) SetAccountDisabled(ctx context.Context, accountID int, disabled bool) error {
	if err := s.accountRepo.SetDisabled(ctx, accountID, disabled); err != nil {
		return s.fail("set_account_status", err)
	}
	zap.L().Info("account status changed", zap.Int("accountID", accountID), zap.Bool("disabled", disabled))
	return nil
}

func (s *Service) fail(operation string, err error) error {
	if !domain.IsBusiness(err) && !errors.Is(err, domain.ErrStorageUnavailable) {
		err = fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	s.metrics.OperationFailed(operation, err)
	if errors.Is(err, domain.ErrStorageUnavailable) {
		zap.L().Error("ledger operation failed", zap.String("operation", operation), zap.Error(err))
	} else {
		zap.L().Info("ledger operation refused", zap.String("operation", operation), zap.Error(err))
	}
	return err
}
