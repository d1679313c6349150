package usecases

import (
	"context"

	"sips/internal/domain/recipe"
	"sips/internal/shared/authorization"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type DeleteRecipeCommand struct {
	RecipeID uint
	UserID   uint
	UserRole authorization.UserRole
}

type DeleteRecipeUseCase struct {
	recipeRepo recipe.RecipeRepository
	logger     logger.Interface
}

func NewDeleteRecipeUseCase(
	recipeRepo recipe.RecipeRepository,
	logger logger.Interface,
) *DeleteRecipeUseCase {
	return &DeleteRecipeUseCase{
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

func (uc *DeleteRecipeUseCase) Execute(ctx context.Context, cmd DeleteRecipeCommand) error {
	if cmd.RecipeID == 0 {
		return errors.NewValidationError("recipe ID is required")
	}

	rec, err := uc.recipeRepo.GetByID(ctx, cmd.RecipeID)
	if err != nil {
		return err
	}

	if !authorization.CanAccessResourceByOwnerID(cmd.UserID, cmd.UserRole, rec.GetOwnerID()) {
		return errors.NewForbiddenError("you can only delete your own recipes")
	}

	if err := uc.recipeRepo.Delete(ctx, cmd.RecipeID); err != nil {
		uc.logger.Errorw("failed to delete recipe", "recipe_id", cmd.RecipeID, "error", err)
		return err
	}

	uc.logger.Infow("recipe deleted", "recipe_id", cmd.RecipeID, "user_id", cmd.UserID)

	return nil
}
