package service

import (
	"github.com/GlebRadaev/investledger/internal/handlers/admin"
	"github.com/GlebRadaev/investledger/internal/handlers/auth"
	"github.com/GlebRadaev/investledger/internal/handlers/balance"
	"github.com/GlebRadaev/investledger/internal/handlers/requests"
	"github.com/GlebRadaev/investledger/internal/metrics"
	"github.com/GlebRadaev/investledger/internal/repo"
	"github.com/GlebRadaev/investledger/internal/service/authservice"
	"github.com/GlebRadaev/investledger/internal/service/balanceservice"
	"github.com/GlebRadaev/investledger/internal/service/ledgerservice"
	pkgauth "github.com/GlebRadaev/investledger/pkg/auth"
)

type LedgerService interface {
	requests.LedgerService
	admin.LedgerService
}

type QueryService interface {
	balance.Service
	requests.QueryService
	admin.QueryService
}

// Options carries what the services need beyond repositories.
type Options struct {
	JWT      pkgauth.JWTServiceInterface
	Hash     pkgauth.HashServiceInterface
	Notifier ledgerservice.Notifier
	Metrics  *metrics.Metrics
	Auth     authservice.Options
}

type Services struct {
	AuthService    auth.Service
	LedgerService  LedgerService
	BalanceService QueryService
}

func New(repo *repo.Repositories, opts Options) *Services {
	if opts.Hash == nil {
		opts.Hash = &pkgauth.HashService{}
	}
	balanceService := balanceservice.New(repo.AccountRepo, repo.RequestRepo, repo.AdjustmentRepo)
	ledgerService := ledgerservice.New(
		repo.TXManager,
		repo.AccountRepo,
		repo.RequestRepo,
		repo.AdjustmentRepo,
		opts.Notifier,
		opts.Metrics,
	)
	authService := authservice.New(repo.TXManager, repo.UserRepo, balanceService, opts.Hash, opts.JWT, opts.Auth)

	return &Services{
		AuthService:    authService,
		LedgerService:  ledgerService,
		BalanceService: balanceService,
	}
}
