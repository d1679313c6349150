package usecases

import (
	"context"

	"sips/internal/domain/aigen"
	"sips/internal/domain/recipe"
	"sips/internal/shared/authorization"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type EstimatePriceQuery struct {
	RecipeID   uint
	ViewerID   uint
	ViewerRole authorization.UserRole
}

// EstimatePriceUseCase asks the model what a café would charge for a drink.
// Estimates are free; owners get the price stored on the recipe.
type EstimatePriceUseCase struct {
	recipeRepo  recipe.RecipeRepository
	modelClient ModelClient
	logger      logger.Interface
}

func NewEstimatePriceUseCase(
	recipeRepo recipe.RecipeRepository,
	modelClient ModelClient,
	logger logger.Interface,
) *EstimatePriceUseCase {
	return &EstimatePriceUseCase{
		recipeRepo:  recipeRepo,
		modelClient: modelClient,
		logger:      logger,
	}
}

func (uc *EstimatePriceUseCase) Execute(ctx context.Context, query EstimatePriceQuery) (*aigen.PriceEstimate, error) {
	if query.RecipeID == 0 {
		return nil, errors.NewValidationError("recipe ID is required")
	}

	rec, err := uc.recipeRepo.GetByID(ctx, query.RecipeID)
	if err != nil {
		return nil, err
	}
	if !rec.CanBeViewedBy(query.ViewerID, query.ViewerRole.IsAdmin()) {
		return nil, errors.NewNotFoundError("recipe not found")
	}
	if len(rec.Ingredients()) == 0 {
		return nil, errors.NewValidationError("recipe has no ingredients to analyze")
	}

	raw, err := uc.modelClient.CompleteJSON(ctx, priceSystemPrompt, buildRecipeContext(rec))
	if err != nil {
		uc.logger.Errorw("price estimate request failed", "recipe_id", query.RecipeID, "error", err)
		return nil, errors.NewUpstreamFailureError("price estimate failed")
	}

	estimate, err := aigen.ParsePriceEstimate(raw)
	if err != nil {
		uc.logger.Errorw("price estimate is invalid", "recipe_id", query.RecipeID, "error", err)
		return nil, errors.NewUpstreamFailureError("price estimate failed")
	}

	if authorization.CanAccessResourceByOwnerID(query.ViewerID, query.ViewerRole, rec.GetOwnerID()) {
		rec.SetBasePrice(estimate.BasePrice)
		if err := uc.recipeRepo.Update(ctx, rec); err != nil {
			uc.logger.Warnw("failed to store price estimate", "recipe_id", query.RecipeID, "error", err)
		}
	}

	return estimate, nil
}
