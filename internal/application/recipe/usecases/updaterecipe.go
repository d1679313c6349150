package usecases

import (
	"context"

	"sips/internal/domain/recipe"
	"sips/internal/shared/authorization"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type UpdateRecipeCommand struct {
	RecipeID     uint
	UserID       uint
	UserRole     authorization.UserRole
	Name         *string
	Description  *string
	Category     *string
	ImageURL     *string
	Instructions *string
	Ingredients  []recipe.Ingredient
	Tags         []string
	IsPublic     *bool
}

type UpdateRecipeUseCase struct {
	recipeRepo recipe.RecipeRepository
	logger     logger.Interface
}

func NewUpdateRecipeUseCase(
	recipeRepo recipe.RecipeRepository,
	logger logger.Interface,
) *UpdateRecipeUseCase {
	return &UpdateRecipeUseCase{
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

func (uc *UpdateRecipeUseCase) Execute(ctx context.Context, cmd UpdateRecipeCommand) (*recipe.Recipe, error) {
	if cmd.RecipeID == 0 {
		return nil, errors.NewValidationError("recipe ID is required")
	}

	rec, err := uc.recipeRepo.GetByID(ctx, cmd.RecipeID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResourceByOwnerID(cmd.UserID, cmd.UserRole, rec.GetOwnerID()) {
		return nil, errors.NewForbiddenError("you can only edit your own recipes")
	}

	err = rec.Update(recipe.UpdateParams{
		Name:         cmd.Name,
		Description:  cmd.Description,
		Category:     cmd.Category,
		ImageURL:     cmd.ImageURL,
		Instructions: cmd.Instructions,
		Ingredients:  cmd.Ingredients,
		Tags:         cmd.Tags,
		IsPublic:     cmd.IsPublic,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.recipeRepo.Update(ctx, rec); err != nil {
		uc.logger.Errorw("failed to update recipe", "recipe_id", cmd.RecipeID, "error", err)
		return nil, err
	}

	uc.logger.Infow("recipe updated", "recipe_id", rec.ID(), "user_id", cmd.UserID)

	return rec, nil
}
