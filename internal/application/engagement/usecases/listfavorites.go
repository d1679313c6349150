package usecases

import (
	"context"

	"sips/internal/domain/engagement"
	"sips/internal/domain/recipe"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

type ListFavoritesQuery struct {
	UserID   uint
	Page     int
	PageSize int
}

type ListFavoritesResult struct {
	Recipes []*recipe.Recipe
	Total   int64
}

type ListFavoritesUseCase struct {
	favoriteRepo engagement.FavoriteRepository
	recipeRepo   recipe.RecipeRepository
	logger       logger.Interface
}

func NewListFavoritesUseCase(
	favoriteRepo engagement.FavoriteRepository,
	recipeRepo recipe.RecipeRepository,
	logger logger.Interface,
) *ListFavoritesUseCase {
	return &ListFavoritesUseCase{
		favoriteRepo: favoriteRepo,
		recipeRepo:   recipeRepo,
		logger:       logger,
	}
}

func (uc *ListFavoritesUseCase) Execute(ctx context.Context, query ListFavoritesQuery) (*ListFavoritesResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	recipeIDs, total, err := uc.favoriteRepo.ListByUser(ctx, query.UserID, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list favorites", "user_id", query.UserID, "error", err)
		return nil, err
	}

	recipes := make([]*recipe.Recipe, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		rec, err := uc.recipeRepo.GetByID(ctx, id)
		if err != nil {
			if errors.IsNotFoundError(err) {
				// Favorites may point at recipes deleted since.
				continue
			}
			return nil, err
		}
		recipes = append(recipes, rec)
	}

	return &ListFavoritesResult{Recipes: recipes, Total: total}, nil
}
