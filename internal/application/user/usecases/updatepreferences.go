package usecases

import (
	"context"

	"sips/internal/domain/user"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type UpdatePreferencesCommand struct {
	UserID            uint
	TasteProfile      map[string]interface{}
	DietaryPrefs      []string
	AllergyFlags      []string
	AccessibilityMode string
}

// UpdatePreferencesUseCase stores the taste profile the generation prompts
// are personalized with.
type UpdatePreferencesUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewUpdatePreferencesUseCase(
	userRepo user.UserRepository,
	logger logger.Interface,
) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, cmd UpdatePreferencesCommand) (*user.User, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := account.UpdatePreferences(cmd.TasteProfile, cmd.DietaryPrefs, cmd.AllergyFlags, cmd.AccessibilityMode); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update preferences", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("preferences updated", "user_id", cmd.UserID)

	return account, nil
}
