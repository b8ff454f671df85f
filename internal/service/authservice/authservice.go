package authservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/pkg/auth"
)

const defaultTokenTTL = 15 * time.Minute

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type AccountCreator interface {
	CreateAccount(ctx context.Context, userID int) (*domain.Account, error)
}

type Options struct {
	TokenTTL time.Duration
}

type Service struct {
	txManager   pg.TXManager
	userRepo    Repo
	accounts    AccountCreator
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	opts        Options
}

func New(
	txManager pg.TXManager,
	repo Repo,
	accounts AccountCreator,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	opts Options,
) *Service {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = defaultTokenTTL
	}
	return &Service{
		txManager:   txManager,
		userRepo:    repo,
		accounts:    accounts,
		hashService: hashService,
		jwtService:  jwtService,
		opts:        opts,
	}
}

// Register creates the user and its empty account in one transaction.
// Registered users always get the user role; operators are promoted
// out of band with ledgerctl grant-admin.
func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         domain.RoleUser,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		existingUser, err := s.userRepo.FindByLogin(ctx, login)
		if err != nil {
			return err
		}
		if existingUser != nil {
			return domain.ErrUserExists
		}
		if _, err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		_, err = s.accounts.CreateAccount(ctx, user.ID)
		return err
	})
	if err != nil {
		if domain.IsBusiness(err) {
			zap.L().Info("user already exists", zap.String("login", login))
			return nil, err
		}
		zap.L().Error("can't register user", zap.String("login", login), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}

	zap.L().Info("user successfully registered", zap.String("login", login), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.opts.TokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, string(user.Role), expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
