package requests

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/internal/handlers/httperr"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/utils"
	"github.com/GlebRadaev/investledger/pkg/validate"
)

const idempotencyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 128

type LedgerService interface {
	Submit(ctx context.Context, accountID int, kind domain.Kind, amount int64, opts domain.SubmitOptions) (*domain.SubmitResult, error)
}

type QueryService interface {
	ListRequests(ctx context.Context, accountID int, filter domain.RequestFilter) ([]domain.Request, error)
}

type RequestHandler struct {
	ledgerService LedgerService
	queryService  QueryService
}

func New(ledgerService LedgerService, queryService QueryService) *RequestHandler {
	return &RequestHandler{
		ledgerService: ledgerService,
		queryService:  queryService,
	}
}

// SubmitDeposit godoc
//
//	@Summary		Submit a deposit request
//	@Description	Record a pending deposit. The balance changes only when an operator approves it.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string					false	"Replays the original request when reused"
//	@Param			request			body		dto.SubmitRequestDTO	true	"Amount in minor units"
//	@Success		201				{object}	dto.SubmitResponseDTO	"Request recorded"
//	@Success		200				{object}	dto.SubmitResponseDTO	"Idempotent replay"
//	@Failure		400				{object}	utils.Response			"Invalid request body"
//	@Failure		401				{object}	utils.Response			"User not authorized"
//	@Failure		403				{object}	utils.Response			"Account disabled"
//	@Failure		422				{object}	utils.Response			"Invalid amount"
//	@Failure		503				{object}	utils.Response			"Storage unavailable"
//	@Router			/api/user/requests/deposit [post]
func (h *RequestHandler) SubmitDeposit(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.KindDeposit)
}

// SubmitWithdrawal godoc
//
//	@Summary		Submit a withdrawal request
//	@Description	Record a pending withdrawal and reserve its amount. A rejection refunds it.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string					false	"Replays the original request when reused"
//	@Param			request			body		dto.SubmitRequestDTO	true	"Amount in minor units and optional payout card"
//	@Success		201				{object}	dto.SubmitResponseDTO	"Request recorded"
//	@Success		200				{object}	dto.SubmitResponseDTO	"Idempotent replay"
//	@Failure		400				{object}	utils.Response			"Invalid request body"
//	@Failure		401				{object}	utils.Response			"User not authorized"
//	@Failure		402				{object}	utils.Response			"Insufficient funds"
//	@Failure		403				{object}	utils.Response			"Account disabled"
//	@Failure		422				{object}	utils.Response			"Invalid amount or payout card"
//	@Failure		503				{object}	utils.Response			"Storage unavailable"
//	@Router			/api/user/requests/withdrawal [post]
func (h *RequestHandler) SubmitWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.KindWithdrawal)
}

func (h *RequestHandler) submit(w http.ResponseWriter, r *http.Request, kind domain.Kind) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	opts := domain.SubmitOptions{IdempotencyKey: r.Header.Get(idempotencyHeader)}
	if len(opts.IdempotencyKey) > maxIdempotencyKeyLength {
		utils.RespondWithError(w, http.StatusBadRequest, "Idempotency key is too long")
		return
	}
	if kind == domain.KindWithdrawal && req.PayoutCard != "" {
		if !validate.IsPayoutCard(req.PayoutCard) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid payout card")
			return
		}
		opts.PayoutCard = validate.NormalizeCard(req.PayoutCard)
	}

	result, err := h.ledgerService.Submit(r.Context(), userID, kind, req.Amount, opts)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	utils.RespondWithJSON(w, status, dto.SubmitResponseDTO{
		Request: dto.NewRequestResponse(result.Request),
		Balance: result.Balance,
	})
}

// ListRequests godoc
//
//	@Summary		List own requests
//	@Description	Requests of the authenticated user's account, newest first.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			kind	query		string	false	"deposit or withdrawal"
//	@Param			state	query		string	false	"pending, approved or rejected"
//	@Param			limit	query		int		false	"Page size, 1 to 500, default 50"
//	@Param			offset	query		int		false	"Newest matches to skip, default 0"
//	@Success		200		{array}		dto.RequestResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid filter"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		503		{object}	utils.Response	"Storage unavailable"
//	@Router			/api/user/requests [get]
func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filter, err := ParseFilter(r)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	requests, err := h.queryService.ListRequests(r.Context(), userID, filter)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRequestList(requests))
}

// ParseFilter reads kind, state, limit and account_id from the query string.
// Values are checked for enum membership by the query service.
func ParseFilter(r *http.Request) (domain.RequestFilter, error) {
	q := r.URL.Query()
	filter := domain.RequestFilter{
		Kind:  domain.Kind(q.Get("kind")),
		State: domain.State(q.Get("state")),
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return filter, domain.ErrInvalidFilter
		}
		filter.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return filter, domain.ErrInvalidFilter
		}
		filter.Offset = offset
	}
	if v := q.Get("account_id"); v != "" {
		accountID, err := strconv.Atoi(v)
		if err != nil || accountID <= 0 {
			return filter, domain.ErrInvalidFilter
		}
		filter.AccountID = accountID
	}
	return filter, nil
}
