package usecases

import (
	"context"

	"sips/internal/domain/recipe"
	"sips/internal/shared/authorization"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type GetRecipeQuery struct {
	RecipeID   uint
	ViewerID   uint
	ViewerRole authorization.UserRole
	// CountView bumps the view counter; detail page loads set it, internal
	// lookups do not.
	CountView bool
}

type GetRecipeUseCase struct {
	recipeRepo recipe.RecipeRepository
	logger     logger.Interface
}

func NewGetRecipeUseCase(
	recipeRepo recipe.RecipeRepository,
	logger logger.Interface,
) *GetRecipeUseCase {
	return &GetRecipeUseCase{
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

func (uc *GetRecipeUseCase) Execute(ctx context.Context, query GetRecipeQuery) (*recipe.Recipe, error) {
	if query.RecipeID == 0 {
		return nil, errors.NewValidationError("recipe ID is required")
	}

	rec, err := uc.recipeRepo.GetByID(ctx, query.RecipeID)
	if err != nil {
		return nil, err
	}

	if !rec.CanBeViewedBy(query.ViewerID, query.ViewerRole.IsAdmin()) {
		// Hide the existence of private recipes from other users.
		return nil, errors.NewNotFoundError("recipe not found")
	}

	if query.CountView {
		if err := uc.recipeRepo.IncrementViewCount(ctx, rec.ID()); err != nil {
			// A lost view count never blocks the read.
			uc.logger.Warnw("failed to increment view count", "recipe_id", rec.ID(), "error", err)
		}
	}

	return rec, nil
}
