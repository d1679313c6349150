package usecases

import (
	"context"

	"sips/internal/domain/recipe"
	"sips/internal/shared/logger"
)

type ListCategoriesUseCase struct {
	recipeRepo recipe.RecipeRepository
	logger     logger.Interface
}

func NewListCategoriesUseCase(
	recipeRepo recipe.RecipeRepository,
	logger logger.Interface,
) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]recipe.CategoryCount, error) {
	counts, err := uc.recipeRepo.ListCategories(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}
	return counts, nil
}
