package mappers

import (
	"encoding/json"
	"fmt"

	"sips/internal/domain/user"
	"sips/internal/infrastructure/persistence/models"
	"sips/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	// ToModel converts a user domain entity to a persistence model.
	ToModel(u *user.User) *models.UserModel

	// ToDomain converts a user persistence model to a domain entity.
	ToDomain(model *models.UserModel) (*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToModel converts a user domain entity to a persistence model.
func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:                   u.ID(),
		OpenID:               u.OpenID(),
		Name:                 u.Name(),
		Email:                u.Email(),
		LoginMethod:          u.LoginMethod(),
		Role:                 u.Role().String(),
		Tokens:               u.Tokens(),
		SubscriptionTier:     u.SubscriptionTier().String(),
		StripeCustomerID:     u.StripeCustomerID(),
		StripeSubscriptionID: u.StripeSubscriptionID(),
		AccessibilityMode:    u.AccessibilityMode(),
		CreatedAt:            u.CreatedAt().UnixMilli(),
		UpdatedAt:            u.UpdatedAt().UnixMilli(),
		LastSignedIn:         u.LastSignedIn().UnixMilli(),
	}

	if profile := u.TasteProfile(); len(profile) > 0 {
		profileJSON, _ := json.Marshal(profile)
		model.TasteProfile = string(profileJSON)
	}

	if prefs := u.DietaryPrefs(); len(prefs) > 0 {
		prefsJSON, _ := json.Marshal(prefs)
		model.DietaryPrefs = string(prefsJSON)
	}

	if flags := u.AllergyFlags(); len(flags) > 0 {
		flagsJSON, _ := json.Marshal(flags)
		model.AllergyFlags = string(flagsJSON)
	}

	return model
}

// ToDomain converts a user persistence model to a domain entity.
func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	var tasteProfile map[string]interface{}
	if model.TasteProfile != "" {
		if err := json.Unmarshal([]byte(model.TasteProfile), &tasteProfile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user taste profile (id=%d): %w", model.ID, err)
		}
	}

	var dietaryPrefs []string
	if model.DietaryPrefs != "" {
		if err := json.Unmarshal([]byte(model.DietaryPrefs), &dietaryPrefs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user dietary prefs (id=%d): %w", model.ID, err)
		}
	}

	var allergyFlags []string
	if model.AllergyFlags != "" {
		if err := json.Unmarshal([]byte(model.AllergyFlags), &allergyFlags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user allergy flags (id=%d): %w", model.ID, err)
		}
	}

	return user.ReconstructUser(
		model.ID,
		model.OpenID,
		model.Name,
		model.Email,
		model.LoginMethod,
		authorization.ParseUserRole(model.Role),
		model.Tokens,
		user.SubscriptionTier(model.SubscriptionTier),
		model.StripeCustomerID,
		model.StripeSubscriptionID,
		tasteProfile,
		dietaryPrefs,
		allergyFlags,
		model.AccessibilityMode,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
		convertMillisToTime(model.LastSignedIn),
	)
}
