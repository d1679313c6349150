package usecases

import (
	"context"

	"sips/internal/domain/aigen"
	"sips/internal/domain/recipe"
	"sips/internal/shared/authorization"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type EstimateNutritionQuery struct {
	RecipeID   uint
	ViewerID   uint
	ViewerRole authorization.UserRole
}

// EstimateNutritionUseCase asks the model for per-serving nutrition of a
// recipe. Estimates are free; when the requester owns the recipe the result
// is also stored on it.
type EstimateNutritionUseCase struct {
	recipeRepo  recipe.RecipeRepository
	modelClient ModelClient
	logger      logger.Interface
}

func NewEstimateNutritionUseCase(
	recipeRepo recipe.RecipeRepository,
	modelClient ModelClient,
	logger logger.Interface,
) *EstimateNutritionUseCase {
	return &EstimateNutritionUseCase{
		recipeRepo:  recipeRepo,
		modelClient: modelClient,
		logger:      logger,
	}
}

func (uc *EstimateNutritionUseCase) Execute(ctx context.Context, query EstimateNutritionQuery) (*aigen.NutritionEstimate, error) {
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

	raw, err := uc.modelClient.CompleteJSON(ctx, nutritionSystemPrompt, buildRecipeContext(rec))
	if err != nil {
		uc.logger.Errorw("nutrition estimate request failed", "recipe_id", query.RecipeID, "error", err)
		return nil, errors.NewUpstreamFailureError("nutrition estimate failed")
	}

	estimate, err := aigen.ParseNutritionEstimate(raw)
	if err != nil {
		uc.logger.Errorw("nutrition estimate is invalid", "recipe_id", query.RecipeID, "error", err)
		return nil, errors.NewUpstreamFailureError("nutrition estimate failed")
	}

	if authorization.CanAccessResourceByOwnerID(query.ViewerID, query.ViewerRole, rec.GetOwnerID()) {
		rec.SetNutrition(recipe.Nutrition{
			Calories:   &estimate.Calories,
			CaffeineMg: &estimate.CaffeineMg,
			SugarG:     &estimate.SugarG,
			ProteinG:   &estimate.ProteinG,
			FatG:       &estimate.FatG,
			CarbsG:     &estimate.CarbsG,
		})
		if err := uc.recipeRepo.Update(ctx, rec); err != nil {
			uc.logger.Warnw("failed to store nutrition estimate", "recipe_id", query.RecipeID, "error", err)
		}
	}

	return estimate, nil
}
