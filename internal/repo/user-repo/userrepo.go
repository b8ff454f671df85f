package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	var role string
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, role FROM users WHERE login = $1", login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, string(user.Role)).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrUserExists
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) SetRole(ctx context.Context, login string, role domain.Role) (*domain.User, error) {
	user := domain.User{Login: login, Role: role}
	err := repo.db.QueryRow(ctx, "UPDATE users SET role = $2 WHERE login = $1 RETURNING id", login, string(role)).
		Scan(&user.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("can't update user role", zap.String("login", login), zap.Error(err))
		return nil, err
	}
	return &user, nil
}
