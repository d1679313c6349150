package dto

import (
	"time"

	"sips/internal/domain/user"
)

type UserResponse struct {
	ID                uint                   `json:"id"`
	Name              string                 `json:"name"`
	Email             string                 `json:"email"`
	Role              string                 `json:"role"`
	Tokens            int                    `json:"tokens"`
	SubscriptionTier  string                 `json:"subscription_tier"`
	TasteProfile      map[string]interface{} `json:"taste_profile"`
	DietaryPrefs      []string               `json:"dietary_prefs"`
	AllergyFlags      []string               `json:"allergy_flags"`
	AccessibilityMode string                 `json:"accessibility_mode"`
	CreatedAt         time.Time              `json:"created_at"`
	LastSignedIn      time.Time              `json:"last_signed_in"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:                u.ID(),
		Name:              u.Name(),
		Email:             u.Email(),
		Role:              u.Role().String(),
		Tokens:            u.Tokens(),
		SubscriptionTier:  string(u.SubscriptionTier()),
		TasteProfile:      u.TasteProfile(),
		DietaryPrefs:      u.DietaryPrefs(),
		AllergyFlags:      u.AllergyFlags(),
		AccessibilityMode: u.AccessibilityMode(),
		CreatedAt:         u.CreatedAt(),
		LastSignedIn:      u.LastSignedIn(),
	}
}

func NewUserListResponse(users []*user.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, NewUserResponse(u))
	}
	return result
}

type UpdatePreferencesRequest struct {
	TasteProfile      map[string]interface{} `json:"taste_profile"`
	DietaryPrefs      []string               `json:"dietary_prefs"`
	AllergyFlags      []string               `json:"allergy_flags"`
	AccessibilityMode string                 `json:"accessibility_mode"`
}
