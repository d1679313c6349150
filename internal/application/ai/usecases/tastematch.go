package usecases

import (
	"context"

	"sips/internal/domain/aigen"
	"sips/internal/domain/recipe"
	"sips/internal/domain/user"
	"sips/internal/shared/authorization"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type TasteMatchQuery struct {
	UserID   uint
	UserRole authorization.UserRole
	RecipeID uint
}

// TasteMatchUseCase scores how well a recipe fits the requesting user's
// stored taste profile. Free of charge.
type TasteMatchUseCase struct {
	userRepo    user.UserRepository
	recipeRepo  recipe.RecipeRepository
	modelClient ModelClient
	logger      logger.Interface
}

func NewTasteMatchUseCase(
	userRepo user.UserRepository,
	recipeRepo recipe.RecipeRepository,
	modelClient ModelClient,
	logger logger.Interface,
) *TasteMatchUseCase {
	return &TasteMatchUseCase{
		userRepo:    userRepo,
		recipeRepo:  recipeRepo,
		modelClient: modelClient,
		logger:      logger,
	}
}

func (uc *TasteMatchUseCase) Execute(ctx context.Context, query TasteMatchQuery) (*aigen.TasteMatch, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if query.RecipeID == 0 {
		return nil, errors.NewValidationError("recipe ID is required")
	}

	requester, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	rec, err := uc.recipeRepo.GetByID(ctx, query.RecipeID)
	if err != nil {
		return nil, err
	}
	if !rec.CanBeViewedBy(query.UserID, query.UserRole.IsAdmin()) {
		return nil, errors.NewNotFoundError("recipe not found")
	}

	raw, err := uc.modelClient.CompleteJSON(ctx, tasteMatchSystemPrompt, buildTasteMatchPrompt(requester, rec))
	if err != nil {
		uc.logger.Errorw("taste match request failed", "user_id", query.UserID, "recipe_id", query.RecipeID, "error", err)
		return nil, errors.NewUpstreamFailureError("taste match failed")
	}

	match, err := aigen.ParseTasteMatch(raw)
	if err != nil {
		uc.logger.Errorw("taste match response is invalid", "user_id", query.UserID, "recipe_id", query.RecipeID, "error", err)
		return nil, errors.NewUpstreamFailureError("taste match failed")
	}

	return match, nil
}
