package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	user := &domain.User{ID: 1, Login: "newuser", PasswordHash: "hashedpassword", Role: domain.RoleUser}

	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
		expectToken   bool
	}{
		{
			name: "Successful registration",
			body: `{"login":"newuser","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(context.Background(), "newuser", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
			expectToken:  true,
		},
		{
			name: "User already exists",
			body: `{"login":"existinguser","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(context.Background(), "existinguser", "password123").Return(nil, domain.ErrUserExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username already taken",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing password",
			body:          `{"login":"newuser"}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Storage unavailable",
			body: `{"login":"newuser","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(context.Background(), "newuser", "password123").
					Return(nil, errors.Join(domain.ErrStorageUnavailable, errors.New("dial tcp")))
			},
			expectedCode:  http.StatusServiceUnavailable,
			expectedError: "storage unavailable",
		},
		{
			name: "Error generating token",
			body: `{"login":"newuser","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(context.Background(), "newuser", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectToken {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	user := &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword", Role: domain.RoleAdmin}

	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"testuser","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(context.Background(), "testuser", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"testuser","password":"wrongpassword"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(context.Background(), "testuser", "wrongpassword").
					Return(nil, domain.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"login":"testuser","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(context.Background(), "testuser", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
