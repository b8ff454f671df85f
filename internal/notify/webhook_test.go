package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/pkg/clients"
)

func NewMock(t *testing.T) (*Webhook, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	webhook := New("http://hooks.local/ledger", client)
	webhook.retryInterval = time.Millisecond
	return webhook, client
}

func decision() domain.DecisionResult {
	decidedAt := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	return domain.DecisionResult{
		Request: domain.Request{
			ID: uuid.MustParse("4f1c2a7e-8d35-4a56-9a1e-2b9f0c6d7e81"), AccountID: 1,
			Kind: domain.KindWithdrawal, Amount: 200, State: domain.StateRejected,
			DecidedAt: &decidedAt, Note: "card blocked",
		},
		Balance: 500,
	}
}

func TestNewEvent(t *testing.T) {
	event := NewEvent(decision())
	body, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"request_id": "4f1c2a7e-8d35-4a56-9a1e-2b9f0c6d7e81",
		"account_id": 1,
		"kind": "withdrawal",
		"amount": 200,
		"state": "rejected",
		"balance": 500,
		"note": "card blocked",
		"decided_at": "2024-11-01T12:00:00Z"
	}`, string(body))
}

func TestWebhook_deliver(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(client *clients.MockHTTPClientI)
		expectErr   bool
	}{
		{
			name: "Delivered on first attempt",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), "http://hooks.local/ledger", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, nil, nil)
			},
		},
		{
			name: "Retries server errors",
			prepareMock: func(client *clients.MockHTTPClientI) {
				gomock.InOrder(
					client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusBadGateway, nil, nil),
					client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil, errors.New("connection reset")),
					client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusNoContent, nil, nil),
				)
			},
		},
		{
			name: "Gives up after max retries",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusServiceUnavailable, nil, nil).Times(maxRetries)
			},
			expectErr: true,
		},
		{
			name: "Client errors are not retried",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusBadRequest, nil, nil)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			webhook, client := NewMock(t)
			tt.prepareMock(client)

			err := webhook.deliver(context.Background(), NewEvent(decision()))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWebhook_Start(t *testing.T) {
	webhook, client := NewMock(t)
	delivered := make(chan []byte, 1)
	client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ http.Header, body []byte) (int, []byte, error) {
			delivered <- body
			return http.StatusOK, nil, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	webhook.Start(ctx)
	webhook.RequestDecided(decision())

	select {
	case body := <-delivered:
		assert.Contains(t, string(body), `"state":"rejected"`)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestWebhook_RequestDecidedDropsWhenFull(t *testing.T) {
	webhook, _ := NewMock(t)
	for i := 0; i < queueSize+10; i++ {
		webhook.RequestDecided(decision())
	}
	assert.Len(t, webhook.queue, queueSize)
}
