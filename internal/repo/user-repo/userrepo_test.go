package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/investledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT id, login, password_hash, role FROM users WHERE login = $1")

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			login: "test_user",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "role"}).
					AddRow(1, "test_user", "hashed_password", "admin")
				mock.ExpectQuery(query).
					WithArgs("test_user").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Login:        "test_user",
				PasswordHash: "hashed_password",
				Role:         domain.RoleAdmin,
			},
		},
		{
			name:  "User not found",
			login: "non_existing_user",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("non_existing_user").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "error_user",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("error_user").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, user)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("INSERT INTO users (login, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at")

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup     func()
		expectErr     bool
		expectedError error
		expected      *domain.User
	}{
		{
			name: "User created",
			user: &domain.User{Login: "new_user", PasswordHash: "hashed_password", Role: domain.RoleUser},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("new_user", "hashed_password", "user").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
			},
			expected: &domain.User{ID: 1, Login: "new_user", PasswordHash: "hashed_password", Role: domain.RoleUser, CreatedAt: now},
		},
		{
			name: "Login taken concurrently",
			user: &domain.User{Login: "new_user", PasswordHash: "hashed_password", Role: domain.RoleUser},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("new_user", "hashed_password", "user").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr:     true,
			expectedError: domain.ErrUserExists,
		},
		{
			name: "Database error",
			user: &domain.User{Login: "error_user", PasswordHash: "hashed_password", Role: domain.RoleUser},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("error_user", "hashed_password", "user").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, user)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetRole(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("UPDATE users SET role = $2 WHERE login = $1 RETURNING id")
	errDB := errors.New("connection reset")

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr error
		result    *domain.User
	}{
		{
			name:  "Role updated",
			login: "ops",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("ops", "admin").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))
			},
			result: &domain.User{ID: 7, Login: "ops", Role: domain.RoleAdmin},
		},
		{
			name:  "Unknown login",
			login: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("ghost", "admin").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrNotFound,
		},
		{
			name:  "Database error",
			login: "ops",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("ops", "admin").
					WillReturnError(errDB)
			},
			expectErr: errDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := repo.SetRole(context.Background(), tt.login, domain.RoleAdmin)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
