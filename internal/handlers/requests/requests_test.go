package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/utils"
)

func NewMock(t *testing.T) (*RequestHandler, *MockLedgerService, *MockQueryService) {
	ctrl := gomock.NewController(t)
	ledger := NewMockLedgerService(ctrl)
	query := NewMockQueryService(ctrl)
	return New(ledger, query), ledger, query
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
}

func TestSubmitWithdrawalHandler(t *testing.T) {
	created := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	request := domain.Request{
		ID:         uuid.MustParse("4f1c2a7e-8d35-4a56-9a1e-2b9f0c6d7e81"),
		AccountID:  1,
		Kind:       domain.KindWithdrawal,
		Amount:     200,
		State:      domain.StatePending,
		PayoutCard: "4561261212345467",
		CreatedAt:  created,
	}

	tests := []struct {
		name          string
		body          string
		key           string
		prepareMock   func(ledger *MockLedgerService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Accepted",
			body: `{"amount":200,"payout_card":"4561 2612 1234 5467"}`,
			prepareMock: func(ledger *MockLedgerService) {
				ledger.EXPECT().
					Submit(gomock.Any(), 1, domain.KindWithdrawal, int64(200), domain.SubmitOptions{PayoutCard: "4561261212345467"}).
					Return(&domain.SubmitResult{Request: request, Balance: 300}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Idempotent replay",
			body: `{"amount":200}`,
			key:  "payout-42",
			prepareMock: func(ledger *MockLedgerService) {
				ledger.EXPECT().
					Submit(gomock.Any(), 1, domain.KindWithdrawal, int64(200), domain.SubmitOptions{IdempotencyKey: "payout-42"}).
					Return(&domain.SubmitResult{Request: request, Balance: 300, Replayed: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Malformed body",
			body:          `{"amount":`,
			prepareMock:   func(ledger *MockLedgerService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Fractional amount",
			body:          `{"amount":1.5}`,
			prepareMock:   func(ledger *MockLedgerService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid payout card",
			body:          `{"amount":200,"payout_card":"4561261212345464"}`,
			prepareMock:   func(ledger *MockLedgerService) {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid payout card",
		},
		{
			name: "Insufficient funds",
			body: `{"amount":600}`,
			prepareMock: func(ledger *MockLedgerService) {
				ledger.EXPECT().Submit(gomock.Any(), 1, domain.KindWithdrawal, int64(600), domain.SubmitOptions{}).
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient funds",
		},
		{
			name: "Non-positive amount",
			body: `{"amount":0}`,
			prepareMock: func(ledger *MockLedgerService) {
				ledger.EXPECT().Submit(gomock.Any(), 1, domain.KindWithdrawal, int64(0), domain.SubmitOptions{}).
					Return(nil, domain.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "amount must be positive",
		},
		{
			name: "Disabled account",
			body: `{"amount":100}`,
			prepareMock: func(ledger *MockLedgerService) {
				ledger.EXPECT().Submit(gomock.Any(), 1, domain.KindWithdrawal, int64(100), domain.SubmitOptions{}).
					Return(nil, domain.ErrAccountDisabled)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "account disabled",
		},
		{
			name: "Idempotency key reused",
			body: `{"amount":300}`,
			key:  "payout-42",
			prepareMock: func(ledger *MockLedgerService) {
				ledger.EXPECT().Submit(gomock.Any(), 1, domain.KindWithdrawal, int64(300), domain.SubmitOptions{IdempotencyKey: "payout-42"}).
					Return(nil, domain.ErrIdempotencyMismatch)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "idempotency key reused with different parameters",
		},
		{
			name:          "Idempotency key too long",
			body:          `{"amount":100}`,
			key:           strings.Repeat("k", maxIdempotencyKeyLength+1),
			prepareMock:   func(ledger *MockLedgerService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Idempotency key is too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, ledger, _ := NewMock(t)
			tt.prepareMock(ledger)

			req := authedRequest(http.MethodPost, "/api/user/requests/withdrawal", tt.body)
			if tt.key != "" {
				req.Header.Set(idempotencyHeader, tt.key)
			}
			rr := httptest.NewRecorder()

			handler.SubmitWithdrawal(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.SubmitResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, request.ID.String(), resp.Request.ID)
			assert.Equal(t, "pending", resp.Request.State)
			assert.Equal(t, int64(300), resp.Balance)
		})
	}
}

func TestSubmitDepositHandler_IgnoresPayoutCard(t *testing.T) {
	handler, ledger, _ := NewMock(t)
	ledger.EXPECT().
		Submit(gomock.Any(), 1, domain.KindDeposit, int64(500), domain.SubmitOptions{}).
		Return(&domain.SubmitResult{Request: domain.Request{ID: uuid.New(), Kind: domain.KindDeposit, Amount: 500, State: domain.StatePending}}, nil)

	rr := httptest.NewRecorder()
	handler.SubmitDeposit(rr, authedRequest(http.MethodPost, "/api/user/requests/deposit", `{"amount":500,"payout_card":"bogus"}`))

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestSubmitHandler_Unauthorized(t *testing.T) {
	handler, _, _ := NewMock(t)
	rr := httptest.NewRecorder()

	handler.SubmitDeposit(rr, httptest.NewRequest(http.MethodPost, "/api/user/requests/deposit", strings.NewReader(`{"amount":1}`)))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListRequestsHandler(t *testing.T) {
	requests := []domain.Request{
		{ID: uuid.New(), AccountID: 1, Kind: domain.KindDeposit, Amount: 500, State: domain.StateApproved},
	}

	tests := []struct {
		name         string
		target       string
		prepareMock  func(query *MockQueryService)
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "Filtered listing",
			target: "/api/user/requests?kind=deposit&state=approved&limit=10",
			prepareMock: func(query *MockQueryService) {
				query.EXPECT().
					ListRequests(gomock.Any(), 1, domain.RequestFilter{Kind: domain.KindDeposit, State: domain.StateApproved, Limit: 10}).
					Return(requests, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "Empty history",
			target: "/api/user/requests",
			prepareMock: func(query *MockQueryService) {
				query.EXPECT().ListRequests(gomock.Any(), 1, domain.RequestFilter{}).Return([]domain.Request{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Next page",
			target: "/api/user/requests?limit=50&offset=50",
			prepareMock: func(query *MockQueryService) {
				query.EXPECT().ListRequests(gomock.Any(), 1, domain.RequestFilter{Limit: 50, Offset: 50}).Return(requests, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:         "Negative offset",
			target:       "/api/user/requests?offset=-5",
			prepareMock:  func(query *MockQueryService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Limit is not a number",
			target:       "/api/user/requests?limit=ten",
			prepareMock:  func(query *MockQueryService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Unknown state",
			target: "/api/user/requests?state=cancelled",
			prepareMock: func(query *MockQueryService) {
				query.EXPECT().ListRequests(gomock.Any(), 1, domain.RequestFilter{State: "cancelled"}).
					Return(nil, domain.ErrInvalidFilter)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Storage unavailable",
			target: "/api/user/requests",
			prepareMock: func(query *MockQueryService) {
				query.EXPECT().ListRequests(gomock.Any(), 1, gomock.Any()).
					Return(nil, errors.Join(domain.ErrStorageUnavailable, errors.New("timeout")))
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, query := NewMock(t)
			tt.prepareMock(query)

			rr := httptest.NewRecorder()
			handler.ListRequests(rr, authedRequest(http.MethodGet, tt.target, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.RequestResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	filter, err := ParseFilter(httptest.NewRequest(http.MethodGet, "/?account_id=7&kind=withdrawal&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, domain.RequestFilter{AccountID: 7, Kind: domain.KindWithdrawal, Limit: 5}, filter)

	filter, err = ParseFilter(httptest.NewRequest(http.MethodGet, "/?offset=100", nil))
	require.NoError(t, err)
	assert.Equal(t, domain.RequestFilter{Offset: 100}, filter)

	_, err = ParseFilter(httptest.NewRequest(http.MethodGet, "/?account_id=-1", nil))
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)

	_, err = ParseFilter(httptest.NewRequest(http.MethodGet, "/?offset=next", nil))
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}
