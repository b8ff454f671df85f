package balanceservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
)

type AccountRepo interface {
	CreateAccount(ctx context.Context, userID int) (*domain.Account, error)
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	GetSummary(ctx context.Context, id int) (*domain.Summary, error)
}

type RequestRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	List(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error)
}

type AdjustmentRepo interface {
	ListByAccount(ctx context.Context, accountID int) ([]domain.Adjustment, error)
}

// Service answers read-only questions about accounts and their requests.
type Service struct {
	accountRepo    AccountRepo
	requestRepo    RequestRepo
	adjustmentRepo AdjustmentRepo
}

func New(accountRepo AccountRepo, requestRepo RequestRepo, adjustmentRepo AdjustmentRepo) *Service {
	return &Service{
		accountRepo:    accountRepo,
		requestRepo:    requestRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

func (s *Service) CreateAccount(ctx context.Context, userID int) (*domain.Account, error) {
	account, err := s.accountRepo.CreateAccount(ctx, userID)
	if err != nil {
		zap.L().Error("can't create account", zap.Int("userID", userID), zap.Error(err))
		return nil, storageErr(err)
	}
	return account, nil
}

func (s *Service) GetBalance(ctx context.Context, accountID int) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, storageErr(err)
	}
	return account, nil
}

func (s *Service) GetSummary(ctx context.Context, accountID int) (*domain.Summary, error) {
	summary, err := s.accountRepo.GetSummary(ctx, accountID)
	if err != nil {
		return nil, storageErr(err)
	}
	if !summary.Reconciled() {
		zap.L().Warn("account does not reconcile", zap.Int("accountID", accountID), zap.Any("summary", summary))
	}
	return summary, nil
}

// ListRequests returns the requests of one account, newest first.
func (s *Service) ListRequests(ctx context.Context, accountID int, filter domain.RequestFilter) ([]domain.Request, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, storageErr(err)
	}
	filter.AccountID = accountID
	return s.list(ctx, filter)
}

// ListAllRequests is the operator view across accounts. A zero AccountID
// in filter means every account.
func (s *Service) ListAllRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error) {
	return s.list(ctx, filter)
}

func (s *Service) GetRequest(ctx context.Context, requestID uuid.UUID) (*domain.Request, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, storageErr(err)
	}
	return req, nil
}

// ListAdjustments returns the operator corrections of one account, newest first.
func (s *Service) ListAdjustments(ctx context.Context, accountID int) ([]domain.Adjustment, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, storageErr(err)
	}
	adjustments, err := s.adjustmentRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, storageErr(err)
	}
	if adjustments == nil {
		adjustments = []domain.Adjustment{}
	}
	return adjustments, nil
}

func (s *Service) list(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, storageErr(err)
	}
	if requests == nil {
		requests = []domain.Request{}
	}
	return requests, nil
}

func normalizeFilter(filter domain.RequestFilter) (domain.RequestFilter, error) {
	if filter.Kind != "" && !filter.Kind.Valid() {
		return filter, fmt.Errorf("%w: kind %q", domain.ErrInvalidFilter, filter.Kind)
	}
	if filter.State != "" && !filter.State.Valid() {
		return filter, fmt.Errorf("%w: state %q", domain.ErrInvalidFilter, filter.State)
	}
	if filter.Limit < 0 || filter.Limit > domain.MaxListLimit {
		return filter, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidFilter, domain.MaxListLimit)
	}
	if filter.Offset < 0 {
		return filter, fmt.Errorf("%w: offset must not be negative", domain.ErrInvalidFilter)
	}
	if filter.Limit == 0 {
		filter.Limit = domain.DefaultListLimit
	}
	return filter, nil
}

func storageErr(err error) error {
	if domain.IsBusiness(err) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}
