package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/internal/handlers/httperr"
	"github.com/GlebRadaev/investledger/internal/handlers/requests"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/utils"
)

type LedgerService interface {
	Approve(ctx context.Context, requestID uuid.UUID, note string, decidedBy *int) (*domain.DecisionResult, error)
	Reject(ctx context.Context, requestID uuid.UUID, note string, decidedBy *int) (*domain.DecisionResult, error)
	Adjust(ctx context.Context, accountID int, amount int64, note string, createdBy *int) (*domain.AdjustmentResult, error)
	SetAccountDisabled(ctx context.Context, accountID int, disabled bool) error
}

type QueryService interface {
	ListAllRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error)
	GetRequest(ctx context.Context, requestID uuid.UUID) (*domain.Request, error)
	ListAdjustments(ctx context.Context, accountID int) ([]domain.Adjustment, error)
}

type decideFunc func(ctx context.Context, requestID uuid.UUID, note string, decidedBy *int) (*domain.DecisionResult, error)

type AdminHandler struct {
	ledgerService LedgerService
	queryService  QueryService
}

func New(ledgerService LedgerService, queryService QueryService) *AdminHandler {
	return &AdminHandler{
		ledgerService: ledgerService,
		queryService:  queryService,
	}
}

// ListRequests godoc
//
//	@Summary		List requests across accounts
//	@Description	Operator view of the request ledger, newest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			state		query		string	false	"pending, approved or rejected"
//	@Param			kind		query		string	false	"deposit or withdrawal"
//	@Param			account_id	query		int		false	"Restrict to one account"
//	@Param			limit		query		int		false	"Page size, 1 to 500, default 50"
//	@Param			offset		query		int		false	"Newest matches to skip, default 0"
//	@Success		200			{array}		dto.RequestResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid filter"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Not an operator"
//	@Failure		503			{object}	utils.Response	"Storage unavailable"
//	@Router			/api/admin/requests [get]
func (h *AdminHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter, err := requests.ParseFilter(r)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	list, err := h.queryService.ListAllRequests(r.Context(), filter)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRequestList(list))
}

// GetRequest godoc
//
//	@Summary		Get one request
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Request ID"
//	@Success		200	{object}	dto.RequestResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request ID"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		503	{object}	utils.Response	"Storage unavailable"
//	@Router			/api/admin/requests/{id} [get]
func (h *AdminHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}
	req, err := h.queryService.GetRequest(r.Context(), requestID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRequestResponse(*req))
}

// Approve godoc
//
//	@Summary		Approve a pending request
//	@Description	A deposit credits the account. A withdrawal keeps its reservation.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Request ID"
//	@Param			request	body		dto.DecisionRequestDTO	false	"Optional note"
//	@Success		200		{object}	dto.DecisionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request ID"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Request already processed"
//	@Failure		503		{object}	utils.Response	"Storage unavailable"
//	@Router			/api/admin/requests/{id}/approve [post]
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.ledgerService.Approve)
}

// Reject godoc
//
//	@Summary		Reject a pending request
//	@Description	A withdrawal refunds its reservation. A deposit leaves the balance untouched.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Request ID"
//	@Param			request	body		dto.DecisionRequestDTO	false	"Optional note"
//	@Success		200		{object}	dto.DecisionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request ID"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Request already processed"
//	@Failure		503		{object}	utils.Response	"Storage unavailable"
//	@Router			/api/admin/requests/{id}/reject [post]
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.ledgerService.Reject)
}

func (h *AdminHandler) decide(w http.ResponseWriter, r *http.Request, decide decideFunc) {
	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req dto.DecisionRequestDTO
	if err := decodeOptional(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := decide(r.Context(), requestID, req.Note, operator(r))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DecisionResponseDTO{
		Request: dto.NewRequestResponse(result.Request),
		Balance: result.Balance,
	})
}

// Adjust godoc
//
//	@Summary		Apply a manual adjustment
//	@Description	Signed correction of an account balance. A debit may not overdraw the account.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Account ID"
//	@Param			request	body		dto.AdjustmentRequestDTO	true	"Signed amount in minor units"
//	@Success		201		{object}	dto.AdjustmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		422		{object}	utils.Response	"Zero amount"
//	@Failure		503		{object}	utils.Response	"Storage unavailable"
//	@Router			/api/admin/accounts/{id}/adjustments [post]
func (h *AdminHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountParam(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	var req dto.AdjustmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.ledgerService.Adjust(r.Context(), accountID, req.Amount, req.Note, operator(r))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewAdjustmentResponse(*result))
}

// ListAdjustments godoc
//
//	@Summary		List manual adjustments of an account
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Account ID"
//	@Success		200	{array}		dto.AdjustmentDTO
//	@Failure		400	{object}	utils.Response	"Invalid account ID"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		503	{object}	utils.Response	"Storage unavailable"
//	@Router			/api/admin/accounts/{id}/adjustments [get]
func (h *AdminHandler) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountParam(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}
	adjustments, err := h.queryService.ListAdjustments(r.Context(), accountID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAdjustmentList(adjustments))
}

// SetAccountStatus godoc
//
//	@Summary		Enable or disable an account
//	@Description	A disabled account accepts no new requests. Its pending requests can still be decided.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Account ID"
//	@Param			request	body		dto.AccountStatusRequestDTO	true	"New status"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		503		{object}	utils.Response	"Storage unavailable"
//	@Router			/api/admin/accounts/{id}/status [put]
func (h *AdminHandler) SetAccountStatus(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountParam(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	var req dto.AccountStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Disabled == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.ledgerService.SetAccountDisabled(r.Context(), accountID, *req.Disabled); err != nil {
		httperr.Respond(w, err)
		return
	}
	message := "Account enabled"
	if *req.Disabled {
		message = "Account disabled"
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

func accountParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

// operator is the admin making the call, recorded as decided_by / created_by.
func operator(r *http.Request) *int {
	id, ok := auth.UserID(r.Context())
	if !ok {
		return nil
	}
	return &id
}

// decodeOptional accepts an empty body.
func decodeOptional(body io.Reader, v any) error {
	err := json.NewDecoder(body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
