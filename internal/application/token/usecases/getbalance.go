package usecases

import (
	"context"

	"sips/internal/domain/user"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type GetBalanceResult struct {
	Balance int
}

type GetBalanceUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetBalanceUseCase(
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetBalanceUseCase) Execute(ctx context.Context, userID uint) (*GetBalanceResult, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &GetBalanceResult{Balance: u.Tokens()}, nil
}
