package usecases

import (
	"context"

	"sips/internal/domain/aigen"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

const defaultCreationsLimit = 20

type ListCreationsUseCase struct {
	creationRepo aigen.CreationRepository
	logger       logger.Interface
}

func NewListCreationsUseCase(
	creationRepo aigen.CreationRepository,
	logger logger.Interface,
) *ListCreationsUseCase {
	return &ListCreationsUseCase{
		creationRepo: creationRepo,
		logger:       logger,
	}
}

func (uc *ListCreationsUseCase) Execute(ctx context.Context, userID uint, limit int) ([]*aigen.Creation, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if limit <= 0 || limit > defaultCreationsLimit {
		limit = defaultCreationsLimit
	}

	creations, err := uc.creationRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list creations", "user_id", userID, "error", err)
		return nil, err
	}

	return creations, nil
}
