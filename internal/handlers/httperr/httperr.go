package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/pkg/utils"
)

var statuses = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{domain.ErrInvalidKind, http.StatusUnprocessableEntity},
	{domain.ErrInvalidDecision, http.StatusUnprocessableEntity},
	{domain.ErrIdempotencyMismatch, http.StatusUnprocessableEntity},
	{domain.ErrInvalidFilter, http.StatusBadRequest},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrAccountDisabled, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrAlreadyDecided, http.StatusConflict},
	{domain.ErrUserExists, http.StatusConflict},
	{domain.ErrStorageUnavailable, http.StatusServiceUnavailable},
}

func Status(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// Respond writes err with its mapped status. Infrastructure details stay in
// the log.
func Respond(w http.ResponseWriter, err error) {
	status := Status(err)
	switch status {
	case http.StatusServiceUnavailable:
		w.Header().Set("Retry-After", "1")
		utils.RespondWithError(w, status, domain.ErrStorageUnavailable.Error())
	case http.StatusInternalServerError:
		zap.L().Error("unexpected handler error", zap.Error(err))
		utils.RespondWithError(w, status, "Internal server error")
	default:
		utils.RespondWithError(w, status, err.Error())
	}
}
