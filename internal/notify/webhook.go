package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	queueSize     = 256
)

type Client interface {
	Post(ctx context.Context, url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

type Event struct {
	RequestID string    `json:"request_id"`
	AccountID int       `json:"account_id"`
	Kind      string    `json:"kind"`
	Amount    int64     `json:"amount"`
	State     string    `json:"state"`
	Balance   int64     `json:"balance"`
	Note      string    `json:"note,omitempty"`
	DecidedAt time.Time `json:"decided_at"`
}

func NewEvent(result domain.DecisionResult) Event {
	event := Event{
		RequestID: result.Request.ID.String(),
		AccountID: result.Request.AccountID,
		Kind:      string(result.Request.Kind),
		Amount:    result.Request.Amount,
		State:     string(result.Request.State),
		Balance:   result.Balance,
		Note:      result.Request.Note,
	}
	if result.Request.DecidedAt != nil {
		event.DecidedAt = *result.Request.DecidedAt
	}
	return event
}

// Webhook posts committed decisions to an external URL. Delivery happens
// off the decision path; a full queue drops the event.
type Webhook struct {
	url           string
	client        Client
	queue         chan Event
	retryInterval time.Duration
}

func New(url string, client Client) *Webhook {
	return &Webhook{
		url:           url,
		client:        client,
		queue:         make(chan Event, queueSize),
		retryInterval: retryInterval,
	}
}

func (w *Webhook) RequestDecided(result domain.DecisionResult) {
	event := NewEvent(result)
	select {
	case w.queue <- event:
	default:
		zap.L().Warn("Webhook queue is full, dropping event", zap.String("requestID", event.RequestID))
	}
}

func (w *Webhook) Start(ctx context.Context) {
	zap.L().Info("Webhook notifier started", zap.String("url", w.url))
	go w.run(ctx)
}

func (w *Webhook) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping webhook notifier")
			return
		case event := <-w.queue:
			if err := w.deliver(ctx, event); err != nil {
				zap.L().Error("Webhook delivery failed", zap.String("requestID", event.RequestID), zap.Error(err))
			}
		}
	}
}

func (w *Webhook) deliver(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	headers := http.Header{"Content-Type": []string{"application/json"}}

	for attempt := 1; ; attempt++ {
		statusCode, _, err := w.client.Post(ctx, w.url, headers, body)
		switch {
		case err == nil && statusCode < http.StatusInternalServerError:
			if statusCode >= http.StatusBadRequest {
				return fmt.Errorf("webhook refused event with status %d", statusCode)
			}
			return nil
		case err == nil:
			err = fmt.Errorf("unexpected status code %d", statusCode)
		}
		if attempt == maxRetries {
			return fmt.Errorf("failed to deliver event after %d retries: %w", maxRetries, err)
		}

		zap.L().Warn("Webhook delivery failed, retrying",
			zap.String("requestID", event.RequestID), zap.Int("attempt", attempt), zap.Error(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.retryInterval * time.Duration(attempt)):
		}
	}
}
