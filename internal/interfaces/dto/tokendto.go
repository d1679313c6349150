package dto

import (
	"time"

	"sips/internal/domain/ledger"
)

type BalanceResponse struct {
	Balance int `json:"balance"`
}

type TransactionResponse struct {
	ID          uint      `json:"id"`
	Amount      int       `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTransactionListResponse(transactions []*ledger.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, TransactionResponse{
			ID:          tx.ID(),
			Amount:      tx.Amount(),
			Type:        string(tx.Type()),
			Description: tx.Description(),
			CreatedAt:   tx.CreatedAt(),
		})
	}
	return result
}

type GrantTokensRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	Amount      int    `json:"amount" binding:"required"`
	Description string `json:"description"`
}
