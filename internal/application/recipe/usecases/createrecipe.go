package usecases

import (
	"context"
	"time"

	"sips/internal/domain/recipe"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type CreateRecipeCommand struct {
	UserID       uint
	Name         string
	Description  string
	Category     string
	ImageURL     string
	Instructions string
	Ingredients  []recipe.Ingredient
	Tags         []string
	IsPublic     *bool
}

type CreateRecipeResult struct {
	RecipeID  uint
	Name      string
	Category  string
	IsPublic  bool
	CreatedAt time.Time
}

type CreateRecipeUseCase struct {
	recipeRepo recipe.RecipeRepository
	logger     logger.Interface
}

func NewCreateRecipeUseCase(
	recipeRepo recipe.RecipeRepository,
	logger logger.Interface,
) *CreateRecipeUseCase {
	return &CreateRecipeUseCase{
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

func (uc *CreateRecipeUseCase) Execute(ctx context.Context, cmd CreateRecipeCommand) (*CreateRecipeResult, error) {
	uc.logger.Infow("executing create recipe use case", "name", cmd.Name, "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	newRecipe, err := recipe.NewRecipe(
		cmd.UserID,
		cmd.Name,
		cmd.Description,
		cmd.Category,
		cmd.Instructions,
		cmd.Ingredients,
	)
	if err != nil {
		uc.logger.Errorw("failed to create recipe entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.ImageURL != "" || len(cmd.Tags) > 0 || cmd.IsPublic != nil {
		update := recipe.UpdateParams{Tags: cmd.Tags, IsPublic: cmd.IsPublic}
		if cmd.ImageURL != "" {
			update.ImageURL = &cmd.ImageURL
		}
		if err := newRecipe.Update(update); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.recipeRepo.Save(ctx, newRecipe); err != nil {
		uc.logger.Errorw("failed to save recipe", "error", err)
		return nil, err
	}

	uc.logger.Infow("recipe created successfully", "recipe_id", newRecipe.ID())

	return &CreateRecipeResult{
		RecipeID:  newRecipe.ID(),
		Name:      newRecipe.Name(),
		Category:  newRecipe.Category(),
		IsPublic:  newRecipe.IsPublic(),
		CreatedAt: newRecipe.CreatedAt(),
	}, nil
}
