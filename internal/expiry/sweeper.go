package expiry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/metrics"
)

const (
	defaultInterval = time.Minute

	batchLimit = 100
	workers    = 4
	expiryNote = "expired"
)

type RequestRepo interface {
	FindStalePending(ctx context.Context, cutoff time.Time, limit int) ([]domain.Request, error)
}

type Decider interface {
	Reject(ctx context.Context, requestID uuid.UUID, note string, decidedBy *int) (*domain.DecisionResult, error)
}

// Sweeper rejects requests that stayed pending longer than ttl. Rejection
// goes through the regular decision path, so a withdrawal is refunded.
type Sweeper struct {
	requestRepo RequestRepo
	decider     Decider
	workerPool  WorkerPoolI
	metrics     *metrics.Metrics
	ttl         time.Duration
	interval    time.Duration
	limit       int
	inflight    sync.Map
	now         func() time.Time
}

// New falls back to defaultInterval when interval is not positive.
func New(requestRepo RequestRepo, decider Decider, ttl, interval time.Duration, m *metrics.Metrics) *Sweeper {
	if interval <= 0 {
		zap.L().Warn("Non-positive sweep interval, using default",
			zap.Duration("interval", interval), zap.Duration("default", defaultInterval))
		interval = defaultInterval
	}
	return &Sweeper{
		requestRepo: requestRepo,
		decider:     decider,
		workerPool:  NewWorkerPool(workers),
		metrics:     m,
		ttl:         ttl,
		interval:    interval,
		limit:       batchLimit,
		now:         time.Now,
	}
}

// Start returns immediately. With a non-positive ttl the sweeper stays off.
func (s *Sweeper) Start(ctx context.Context) {
	if s.ttl <= 0 {
		zap.L().Info("Expiry sweeper disabled")
		return
	}
	zap.L().Info("Expiry sweeper started", zap.Duration("ttl", s.ttl), zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping expiry sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	cutoff := s.now().Add(-s.ttl)
	requests, err := s.requestRepo.FindStalePending(ctx, cutoff, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch stale requests", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, req := range requests {
		req := req

		if _, loaded := s.inflight.LoadOrStore(req.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inflight.Delete(req.ID)
				return s.expire(ctx, req)
			})
			if err != nil {
				s.inflight.Delete(req.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling expiry", zap.Error(err))
	}
}

func (s *Sweeper) expire(ctx context.Context, req domain.Request) error {
	_, err := s.decider.Reject(ctx, req.ID, expiryNote, nil)
	switch {
	case errors.Is(err, domain.ErrAlreadyDecided):
		return nil
	case err != nil:
		return fmt.Errorf("failed to expire request %s: %w", req.ID, err)
	}
	s.metrics.RequestExpired()
	zap.L().Info("Request expired",
		zap.String("requestID", req.ID.String()),
		zap.String("kind", string(req.Kind)),
		zap.Time("createdAt", req.CreatedAt))
	return nil
}
