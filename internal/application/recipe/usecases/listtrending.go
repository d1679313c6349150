package usecases

import (
	"context"

	"sips/internal/domain/recipe"
	"sips/internal/shared/constants"
	"sips/internal/shared/logger"
)

type ListTrendingUseCase struct {
	recipeRepo recipe.RecipeRepository
	logger     logger.Interface
}

func NewListTrendingUseCase(
	recipeRepo recipe.RecipeRepository,
	logger logger.Interface,
) *ListTrendingUseCase {
	return &ListTrendingUseCase{
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

func (uc *ListTrendingUseCase) Execute(ctx context.Context, limit int) ([]*recipe.Recipe, error) {
	if limit <= 0 || limit > constants.MaxPageSize {
		limit = constants.DefaultTrendingLimit
	}

	recipes, err := uc.recipeRepo.ListTrending(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list trending recipes", "error", err)
		return nil, err
	}
	return recipes, nil
}
