package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/investledger/internal/expiry"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/internal/repo"
	"github.com/GlebRadaev/investledger/internal/service/authservice"
	"github.com/GlebRadaev/investledger/internal/service/balanceservice"
	"github.com/GlebRadaev/investledger/internal/service/ledgerservice"
	pkgauth "github.com/GlebRadaev/investledger/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	services := New(repos, Options{JWT: pkgauth.NewMockJWTServiceInterface(ctrl)})

	assert.IsType(t, &authservice.Service{}, services.AuthService)
	assert.IsType(t, &ledgerservice.Service{}, services.LedgerService)
	assert.IsType(t, &balanceservice.Service{}, services.BalanceService)

	var _ expiry.Decider = services.LedgerService
}
