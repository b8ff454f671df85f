package balance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/utils"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
}

func TestGetBalanceHandler(t *testing.T) {
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)
	tests := []struct {
		name          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
		expectedBody  dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBalance(ctx, 1).Return(&domain.Account{ID: 1, Balance: 30000}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{AccountID: 1, Balance: 30000},
		},
		{
			name: "Account not found",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBalance(ctx, 1).Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "not found",
		},
		{
			name: "Storage unavailable",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBalance(ctx, 1).
					Return(nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, errors.New("dial tcp")))
			},
			expectedCode:  http.StatusServiceUnavailable,
			expectedError: "storage unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.GetBalance(rr, authedRequest(http.MethodGet, "/api/user/balance"))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var body dto.BalanceResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestGetBalanceHandler_Unauthorized(t *testing.T) {
	handler, _ := NewMock(t)
	rr := httptest.NewRecorder()

	handler.GetBalance(rr, httptest.NewRequest(http.MethodGet, "/api/user/balance", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetSummaryHandler(t *testing.T) {
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)
	summary := &domain.Summary{
		AccountID:             1,
		Balance:               30000,
		TotalApprovedDeposits: 50000,
		PendingWithdrawals:    20000,
	}

	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody *dto.SummaryResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetSummary(ctx, 1).Return(summary, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.SummaryResponseDTO{
				AccountID:             1,
				Balance:               30000,
				TotalApprovedDeposits: 50000,
				PendingWithdrawals:    20000,
			},
		},
		{
			name: "Unexpected error",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetSummary(ctx, 1).Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.GetSummary(rr, authedRequest(http.MethodGet, "/api/user/balance/summary"))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var body dto.SummaryResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}
