package dto

import "github.com/GlebRadaev/investledger/internal/domain"

type BalanceResponseDTO struct {
	AccountID int   `json:"account_id" example:"1"`
	Balance   int64 `json:"balance" example:"50000"`
	Disabled  bool  `json:"disabled" example:"false"`
}

type SummaryResponseDTO struct {
	AccountID                int   `json:"account_id" example:"1"`
	Balance                  int64 `json:"balance" example:"30000"`
	TotalApprovedDeposits    int64 `json:"total_approved_deposits" example:"50000"`
	TotalApprovedWithdrawals int64 `json:"total_approved_withdrawals" example:"0"`
	PendingWithdrawals       int64 `json:"pending_withdrawals" example:"20000"`
	TotalAdjustments         int64 `json:"total_adjustments" example:"0"`
}

func NewSummaryResponse(s domain.Summary) SummaryResponseDTO {
	return SummaryResponseDTO{
		AccountID:                s.AccountID,
		Balance:                  s.Balance,
		TotalApprovedDeposits:    s.TotalApprovedDeposits,
		TotalApprovedWithdrawals: s.TotalApprovedWithdrawals,
		PendingWithdrawals:       s.PendingWithdrawals,
		TotalAdjustments:         s.TotalAdjustments,
	}
}
