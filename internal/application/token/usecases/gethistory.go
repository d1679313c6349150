package usecases

import (
	"context"

	"sips/internal/domain/ledger"
	"sips/internal/shared/constants"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type GetHistoryUseCase struct {
	ledgerRepo ledger.LedgerRepository
	logger     logger.Interface
}

func NewGetHistoryUseCase(
	ledgerRepo ledger.LedgerRepository,
	logger logger.Interface,
) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

func (uc *GetHistoryUseCase) Execute(ctx context.Context, userID uint) ([]*ledger.Transaction, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	transactions, err := uc.ledgerRepo.ListByUser(ctx, userID, constants.TokenHistoryLimit)
	if err != nil {
		uc.logger.Errorw("failed to list token history", "user_id", userID, "error", err)
		return nil, err
	}

	return transactions, nil
}
