package usecases

import (
	"context"

	"sips/internal/domain/user"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type GetProfileUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetProfileUseCase(
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*user.User, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	return uc.userRepo.GetByID(ctx, userID)
}
