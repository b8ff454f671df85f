package repo

import (
	"github.com/GlebRadaev/investledger/internal/expiry"
	"github.com/GlebRadaev/investledger/internal/pg"
	accountrepo "github.com/GlebRadaev/investledger/internal/repo/account-repo"
	adjustmentrepo "github.com/GlebRadaev/investledger/internal/repo/adjustment-repo"
	requestrepo "github.com/GlebRadaev/investledger/internal/repo/request-repo"
	userrepo "github.com/GlebRadaev/investledger/internal/repo/user-repo"
	"github.com/GlebRadaev/investledger/internal/service/authservice"
	"github.com/GlebRadaev/investledger/internal/service/balanceservice"
	"github.com/GlebRadaev/investledger/internal/service/ledgerservice"
)

type AccountRepo interface {
	ledgerservice.AccountRepo
	balanceservice.AccountRepo
}

type RequestRepo interface {
	ledgerservice.RequestRepo
	balanceservice.RequestRepo
	expiry.RequestRepo
}

type AdjustmentRepo interface {
	ledgerservice.AdjustmentRepo
	balanceservice.AdjustmentRepo
}

type Repositories struct {
	TXManager      pg.TXManager
	UserRepo       authservice.Repo
	AccountRepo    AccountRepo
	RequestRepo    RequestRepo
	AdjustmentRepo AdjustmentRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	db := pg.New(conn)

	return &Repositories{
		TXManager:      txManager,
		UserRepo:       userrepo.New(db),
		AccountRepo:    accountrepo.New(db),
		RequestRepo:    requestrepo.New(db),
		AdjustmentRepo: adjustmentrepo.New(db),
	}
}
