package ledgerservice

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
)

// fakeStore is an in-memory ledger. Begin serialises transactions on one
// mutex and restores a snapshot when fn fails.
type fakeStore struct {
	mu          sync.Mutex
	accounts    map[int]domain.Account
	requests    map[uuid.UUID]domain.Request
	adjustments []domain.Adjustment

	// Injected write failures, returned after the balance has already moved.
	failRequestCreate    error
	failMarkDecided      error
	failAdjustmentCreate error
}

// accountStore, requestStore and adjustmentStore are the repository views
// of one fakeStore. Their methods run inside Begin and do not lock.
type (
	accountStore    struct{ *fakeStore }
	requestStore    struct{ *fakeStore }
	adjustmentStore struct{ *fakeStore }
)

var (
	_ pg.TXManager   = (*fakeStore)(nil)
	_ AccountRepo    = accountStore{}
	_ RequestRepo    = requestStore{}
	_ AdjustmentRepo = adjustmentStore{}
)

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: make(map[int]domain.Account),
		requests: make(map[uuid.UUID]domain.Request),
	}
}

func newFakeService(store *fakeStore) *Service {
	return New(store, accountStore{store}, requestStore{store}, adjustmentStore{store}, nil, nil)
}

func (f *fakeStore) addAccount(id int, balance int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[id] = domain.Account{ID: id, Balance: balance}
	if balance > 0 {
		f.adjustments = append(f.adjustments, domain.Adjustment{ID: uuid.New(), AccountID: id, Amount: balance, Note: "opening"})
	}
}

func (f *fakeStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	accounts := make(map[int]domain.Account, len(f.accounts))
	for k, v := range f.accounts {
		accounts[k] = v
	}
	requests := make(map[uuid.UUID]domain.Request, len(f.requests))
	for k, v := range f.requests {
		requests[k] = v
	}
	adjustments := append([]domain.Adjustment(nil), f.adjustments...)

	if err := fn(ctx); err != nil {
		f.accounts, f.requests, f.adjustments = accounts, requests, adjustments
		return err
	}
	return nil
}

func (f accountStore) GetForUpdate(_ context.Context, id int) (*domain.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &account, nil
}

func (f accountStore) Credit(_ context.Context, id int, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	account, ok := f.accounts[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	account.Balance += amount
	f.accounts[id] = account
	return account.Balance, nil
}

func (f accountStore) Debit(_ context.Context, id int, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	account, ok := f.accounts[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if account.Balance < amount {
		return 0, domain.ErrInsufficientFunds
	}
	account.Balance -= amount
	f.accounts[id] = account
	return account.Balance, nil
}

// SetDisabled runs outside Begin, so it takes the lock itself.
func (f accountStore) SetDisabled(_ context.Context, id int, disabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	account.Disabled = disabled
	f.accounts[id] = account
	return nil
}

func (f requestStore) Create(_ context.Context, req *domain.Request) error {
	if f.failRequestCreate != nil {
		return f.failRequestCreate
	}
	f.requests[req.ID] = *req
	return nil
}

func (f requestStore) GetForUpdate(_ context.Context, id uuid.UUID) (*domain.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &req, nil
}

func (f requestStore) FindByIdempotencyKey(_ context.Context, accountID int, key string) (*domain.Request, error) {
	for _, req := range f.requests {
		if req.AccountID == accountID && req.IdempotencyKey == key {
			req := req
			return &req, nil
		}
	}
	return nil, nil
}

func (f requestStore) MarkDecided(_ context.Context, req *domain.Request) error {
	if f.failMarkDecided != nil {
		return f.failMarkDecided
	}
	current, ok := f.requests[req.ID]
	if !ok || current.State != domain.StatePending {
		return domain.ErrAlreadyDecided
	}
	f.requests[req.ID] = *req
	return nil
}

func (f *fakeStore) summary(accountID int) domain.Summary {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := domain.Summary{AccountID: accountID, Balance: f.accounts[accountID].Balance}
	for _, req := range f.requests {
		if req.AccountID != accountID {
			continue
		}
		switch {
		case req.Kind == domain.KindDeposit && req.State == domain.StateApproved:
			s.TotalApprovedDeposits += req.Amount
		case req.Kind == domain.KindWithdrawal && req.State == domain.StateApproved:
			s.TotalApprovedWithdrawals += req.Amount
		case req.Kind == domain.KindWithdrawal && req.State == domain.StatePending:
			s.PendingWithdrawals += req.Amount
		}
	}
	for _, adj := range f.adjustments {
		if adj.AccountID == accountID {
			s.TotalAdjustments += adj.Amount
		}
	}
	return s
}

func (f *fakeStore) pendingIDs() []uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []uuid.UUID
	for id, req := range f.requests {
		if req.State == domain.StatePending {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func (f *fakeStore) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeStore) request(id uuid.UUID) domain.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[id]
}

func (f *fakeStore) balance(accountID int) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accounts[accountID].Balance
}

func (f adjustmentStore) Create(_ context.Context, adj *domain.Adjustment) error {
	if f.failAdjustmentCreate != nil {
		return f.failAdjustmentCreate
	}
	f.adjustments = append(f.adjustments, *adj)
	return nil
}
