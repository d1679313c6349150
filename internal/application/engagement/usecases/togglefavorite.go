package usecases

import (
	"context"

	"sips/internal/domain/engagement"
	"sips/internal/domain/recipe"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type ToggleFavoriteCommand struct {
	UserID   uint
	RecipeID uint
}

type ToggleFavoriteResult struct {
	IsFavorited bool
}

type ToggleFavoriteUseCase struct {
	favoriteRepo engagement.FavoriteRepository
	recipeRepo   recipe.RecipeRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewToggleFavoriteUseCase(
	favoriteRepo engagement.FavoriteRepository,
	recipeRepo recipe.RecipeRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{
		favoriteRepo: favoriteRepo,
		recipeRepo:   recipeRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *ToggleFavoriteUseCase) Execute(ctx context.Context, cmd ToggleFavoriteCommand) (*ToggleFavoriteResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.RecipeID == 0 {
		return nil, errors.NewValidationError("recipe ID is required")
	}

	if _, err := uc.recipeRepo.GetByID(ctx, cmd.RecipeID); err != nil {
		return nil, err
	}

	result := &ToggleFavoriteResult{}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.favoriteRepo.GetByUserAndRecipe(txCtx, cmd.UserID, cmd.RecipeID)
		if err != nil && !errors.IsNotFoundError(err) {
			return err
		}

		if existing != nil {
			if err := uc.favoriteRepo.Remove(txCtx, existing); err != nil {
				return err
			}
			result.IsFavorited = false
			return nil
		}

		favorite, err := engagement.NewFavorite(cmd.UserID, cmd.RecipeID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.favoriteRepo.Insert(txCtx, favorite); err != nil {
			return err
		}
		result.IsFavorited = true
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to toggle favorite", "user_id", cmd.UserID, "recipe_id", cmd.RecipeID, "error", err)
		return nil, err
	}

	return result, nil
}
