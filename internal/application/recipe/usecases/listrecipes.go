package usecases

import (
	"context"

	"sips/internal/domain/recipe"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

type ListRecipesQuery struct {
	Category string
	Search   string
	SortBy   string
	// UserID narrows the listing to one author's recipes.
	UserID *uint
	// IncludePrivate is only honored when the viewer lists their own
	// recipes or is an admin; handlers set it accordingly.
	IncludePrivate bool
	Page           int
	PageSize       int
}

type ListRecipesResult struct {
	Recipes []*recipe.Recipe
	Total   int64
}

type ListRecipesUseCase struct {
	recipeRepo recipe.RecipeRepository
	logger     logger.Interface
}

func NewListRecipesUseCase(
	recipeRepo recipe.RecipeRepository,
	logger logger.Interface,
) *ListRecipesUseCase {
	return &ListRecipesUseCase{
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

func (uc *ListRecipesUseCase) Execute(ctx context.Context, query ListRecipesQuery) (*ListRecipesResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	recipes, total, err := uc.recipeRepo.List(ctx, recipe.RecipeFilter{
		Category:       query.Category,
		Search:         query.Search,
		UserID:         query.UserID,
		IncludePrivate: query.IncludePrivate,
		SortBy:         query.SortBy,
		Page:           pagination.Page,
		PageSize:       pagination.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list recipes", "error", err)
		return nil, err
	}

	return &ListRecipesResult{Recipes: recipes, Total: total}, nil
}
