package usecases

import (
	"context"

	"sips/internal/domain/audit"
	"sips/internal/domain/recipe"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

// ModerationAction names the admin curation operations on a recipe.
type ModerationAction string

const (
	ActionToggleTrending ModerationAction = "toggle_trending"
	ActionMarkVerified   ModerationAction = "mark_verified"
	ActionTogglePublic   ModerationAction = "toggle_public"
)

type ModerateRecipeCommand struct {
	RecipeID uint
	AdminID  uint
	Action   ModerationAction
}

type ModerateRecipeUseCase struct {
	recipeRepo recipe.RecipeRepository
	auditRepo  audit.AuditLogRepository
	logger     logger.Interface
}

func NewModerateRecipeUseCase(
	recipeRepo recipe.RecipeRepository,
	auditRepo audit.AuditLogRepository,
	logger logger.Interface,
) *ModerateRecipeUseCase {
	return &ModerateRecipeUseCase{
		recipeRepo: recipeRepo,
		auditRepo:  auditRepo,
		logger:     logger,
	}
}

func (uc *ModerateRecipeUseCase) Execute(ctx context.Context, cmd ModerateRecipeCommand) (*recipe.Recipe, error) {
	if cmd.RecipeID == 0 {
		return nil, errors.NewValidationError("recipe ID is required")
	}

	rec, err := uc.recipeRepo.GetByID(ctx, cmd.RecipeID)
	if err != nil {
		return nil, err
	}

	switch cmd.Action {
	case ActionToggleTrending:
		rec.ToggleTrending()
	case ActionMarkVerified:
		rec.MarkVerified()
	case ActionTogglePublic:
		rec.TogglePublic()
	default:
		return nil, errors.NewValidationError("unknown moderation action")
	}

	if err := uc.recipeRepo.Update(ctx, rec); err != nil {
		uc.logger.Errorw("failed to update recipe", "recipe_id", cmd.RecipeID, "error", err)
		return nil, err
	}

	uc.recordAudit(ctx, cmd, rec)

	return rec, nil
}

func (uc *ModerateRecipeUseCase) recordAudit(ctx context.Context, cmd ModerateRecipeCommand, rec *recipe.Recipe) {
	adminID := cmd.AdminID
	recordID := rec.ID()
	entry, err := audit.NewLogEntry(&adminID, "recipe."+string(cmd.Action), "recipes", &recordID, map[string]interface{}{
		"is_trending": rec.IsTrending(),
		"is_verified": rec.IsVerified(),
		"is_public":   rec.IsPublic(),
	})
	if err != nil {
		return
	}
	if err := uc.auditRepo.Save(ctx, entry); err != nil {
		// Moderation already happened, a lost audit row is only logged.
		uc.logger.Warnw("failed to save audit log", "action", cmd.Action, "error", err)
	}
}
