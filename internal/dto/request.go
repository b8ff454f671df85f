package dto

import (
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
)

type SubmitRequestDTO struct {
	Amount     int64  `json:"amount" example:"50000"`
	PayoutCard string `json:"payout_card,omitempty" example:"4561261212345467"`
}

type RequestResponseDTO struct {
	ID         string     `json:"id" example:"4f1c2a7e-8d35-4a56-9a1e-2b9f0c6d7e81"`
	AccountID  int        `json:"account_id" example:"1"`
	Kind       string     `json:"kind" example:"withdrawal"`
	Amount     int64      `json:"amount" example:"20000"`
	State      string     `json:"state" example:"pending"`
	PayoutCard string     `json:"payout_card,omitempty" example:"4561261212345467"`
	CreatedAt  time.Time  `json:"created_at" example:"2024-11-01T12:00:00Z"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
	DecidedBy  *int       `json:"decided_by,omitempty"`
	Note       string     `json:"note,omitempty"`
}

func NewRequestResponse(req domain.Request) RequestResponseDTO {
	return RequestResponseDTO{
		ID:         req.ID.String(),
		AccountID:  req.AccountID,
		Kind:       string(req.Kind),
		Amount:     req.Amount,
		State:      string(req.State),
		PayoutCard: req.PayoutCard,
		CreatedAt:  req.CreatedAt,
		DecidedAt:  req.DecidedAt,
		DecidedBy:  req.DecidedBy,
		Note:       req.Note,
	}
}

func NewRequestList(requests []domain.Request) []RequestResponseDTO {
	response := make([]RequestResponseDTO, len(requests))
	for i, req := range requests {
		response[i] = NewRequestResponse(req)
	}
	return response
}

// SubmitResponseDTO and DecisionResponseDTO carry the balance as it stood
// when the operation committed.
type SubmitResponseDTO struct {
	Request RequestResponseDTO `json:"request"`
	Balance int64              `json:"balance" example:"30000"`
}

type DecisionRequestDTO struct {
	Note string `json:"note,omitempty" example:"verified by compliance"`
}

type DecisionResponseDTO struct {
	Request RequestResponseDTO `json:"request"`
	Balance int64              `json:"balance" example:"50000"`
}
