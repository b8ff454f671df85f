package balance

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/internal/handlers/httperr"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, accountID int) (*domain.Account, error)
	GetSummary(ctx context.Context, accountID int) (*domain.Summary, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current balance
//	@Description	Spendable balance of the authenticated user's account in minor units. Pending withdrawals are already deducted.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		503	{object}	utils.Response			"Storage unavailable"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	account, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		AccountID: account.ID,
		Balance:   account.Balance,
		Disabled:  account.Disabled,
	})
}

// GetSummary godoc
//
//	@Summary		Get reconciliation summary
//	@Description	Balance next to the totals it is derived from.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SummaryResponseDTO	"Account summary"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		503	{object}	utils.Response			"Storage unavailable"
//	@Router			/api/user/balance/summary [get]
func (h *BalanceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.balanceService.GetSummary(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSummaryResponse(*summary))
}
