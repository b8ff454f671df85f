package dto

import (
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
)

type AdjustmentRequestDTO struct {
	Amount int64  `json:"amount" example:"-1500"`
	Note   string `json:"note" example:"fee refund reversal"`
}

type AdjustmentResponseDTO struct {
	ID        string    `json:"id" example:"9b2d0c2e-5a1f-4f0e-8d1c-3e6a7b8c9d0e"`
	AccountID int       `json:"account_id" example:"1"`
	Amount    int64     `json:"amount" example:"-1500"`
	Note      string    `json:"note" example:"fee refund reversal"`
	CreatedAt time.Time `json:"created_at" example:"2024-11-01T12:00:00Z"`
	Balance   int64     `json:"balance" example:"48500"`
}

func NewAdjustmentResponse(result domain.AdjustmentResult) AdjustmentResponseDTO {
	return AdjustmentResponseDTO{
		ID:        result.Adjustment.ID.String(),
		AccountID: result.Adjustment.AccountID,
		Amount:    result.Adjustment.Amount,
		Note:      result.Adjustment.Note,
		CreatedAt: result.Adjustment.CreatedAt,
		Balance:   result.Balance,
	}
}

type AdjustmentDTO struct {
	ID        string    `json:"id" example:"9b2d0c2e-5a1f-4f0e-8d1c-3e6a7b8c9d0e"`
	AccountID int       `json:"account_id" example:"1"`
	Amount    int64     `json:"amount" example:"-1500"`
	Note      string    `json:"note" example:"fee refund reversal"`
	CreatedBy *int      `json:"created_by,omitempty" example:"99"`
	CreatedAt time.Time `json:"created_at" example:"2024-11-01T12:00:00Z"`
}

func NewAdjustmentList(adjustments []domain.Adjustment) []AdjustmentDTO {
	response := make([]AdjustmentDTO, len(adjustments))
	for i, adj := range adjustments {
		response[i] = AdjustmentDTO{
			ID:        adj.ID.String(),
			AccountID: adj.AccountID,
			Amount:    adj.Amount,
			Note:      adj.Note,
			CreatedBy: adj.CreatedBy,
			CreatedAt: adj.CreatedAt,
		}
	}
	return response
}

type AccountStatusRequestDTO struct {
	Disabled *bool `json:"disabled" example:"true"`
}
