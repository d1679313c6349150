package usecases

import (
	"context"

	"sips/internal/domain/engagement"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type GetEngagementStatusQuery struct {
	UserID   uint
	RecipeID uint
}

// EngagementStatus is a user's standing engagement with one recipe, used to
// render the vote and favorite controls.
type EngagementStatus struct {
	UserVote    *engagement.VoteType
	IsFavorited bool
}

type GetEngagementStatusUseCase struct {
	voteRepo     engagement.VoteRepository
	favoriteRepo engagement.FavoriteRepository
	logger       logger.Interface
}

func NewGetEngagementStatusUseCase(
	voteRepo engagement.VoteRepository,
	favoriteRepo engagement.FavoriteRepository,
	logger logger.Interface,
) *GetEngagementStatusUseCase {
	return &GetEngagementStatusUseCase{
		voteRepo:     voteRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (uc *GetEngagementStatusUseCase) Execute(ctx context.Context, query GetEngagementStatusQuery) (*EngagementStatus, error) {
	if query.UserID == 0 || query.RecipeID == 0 {
		return nil, errors.NewValidationError("user ID and recipe ID are required")
	}

	status := &EngagementStatus{}

	vote, err := uc.voteRepo.GetByUserAndRecipe(ctx, query.UserID, query.RecipeID)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	if vote != nil {
		voteType := vote.Type()
		status.UserVote = &voteType
	}

	favorite, err := uc.favoriteRepo.GetByUserAndRecipe(ctx, query.UserID, query.RecipeID)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	status.IsFavorited = favorite != nil

	return status, nil
}
