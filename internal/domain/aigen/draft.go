// Package aigen defines the structured outputs expected from the drink
// generation model and validates them before anything is persisted or
// charged for.
package aigen

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DraftIngredient mirrors recipe ingredients in model output.
type DraftIngredient struct {
	Name   string `json:"name" validate:"required"`
	Amount string `json:"amount" validate:"required"`
	Unit   string `json:"unit"`
}

// RecipeDraft is the schema the model must produce for drink generation.
// Drafts that fail validation are rejected and the user is not charged.
type RecipeDraft struct {
	Name            string            `json:"name" validate:"required,max=500"`
	Description     string            `json:"description"`
	Category        string            `json:"category"`
	Ingredients     []DraftIngredient `json:"ingredients" validate:"required,min=1,dive"`
	Instructions    string            `json:"instructions" validate:"required"`
	Tags            []string          `json:"tags"`
	DifficultyLevel int               `json:"difficulty_level" validate:"gte=0,lte=5"`
	PrepTimeMinutes int               `json:"prep_time_minutes" validate:"gte=0"`
	Calories        *int              `json:"calories" validate:"omitempty,gte=0"`
	CaffeineMg      *int              `json:"caffeine_mg" validate:"omitempty,gte=0"`
	SugarG          *float64          `json:"sugar_g" validate:"omitempty,gte=0"`
	BasePrice       *float64          `json:"base_price" validate:"omitempty,gte=0"`
}

// ParseRecipeDraft decodes and validates model output.
func ParseRecipeDraft(raw json.RawMessage) (*RecipeDraft, error) {
	var draft RecipeDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("draft is not valid JSON: %w", err)
	}
	if err := validate.Struct(&draft); err != nil {
		return nil, fmt.Errorf("draft failed schema validation: %w", err)
	}
	return &draft, nil
}

// NutritionEstimate is the schema for the free nutrition calculation.
type NutritionEstimate struct {
	Calories   int     `json:"calories" validate:"gte=0"`
	CaffeineMg int     `json:"caffeine_mg" validate:"gte=0"`
	SugarG     float64 `json:"sugar_g" validate:"gte=0"`
	ProteinG   float64 `json:"protein_g" validate:"gte=0"`
	FatG       float64 `json:"fat_g" validate:"gte=0"`
	CarbsG     float64 `json:"carbs_g" validate:"gte=0"`
	Notes      string  `json:"notes"`
}

// ParseNutritionEstimate decodes and validates a nutrition response.
func ParseNutritionEstimate(raw json.RawMessage) (*NutritionEstimate, error) {
	var est NutritionEstimate
	if err := json.Unmarshal(raw, &est); err != nil {
		return nil, fmt.Errorf("estimate is not valid JSON: %w", err)
	}
	if err := validate.Struct(&est); err != nil {
		return nil, fmt.Errorf("estimate failed schema validation: %w", err)
	}
	return &est, nil
}

// PriceEstimate is the schema for the free price calculation.
type PriceEstimate struct {
	BasePrice  float64 `json:"base_price" validate:"gte=0"`
	Currency   string  `json:"currency"`
	CostDriver string  `json:"cost_driver"`
	Notes      string  `json:"notes"`
}

// ParsePriceEstimate decodes and validates a price response.
func ParsePriceEstimate(raw json.RawMessage) (*PriceEstimate, error) {
	var est PriceEstimate
	if err := json.Unmarshal(raw, &est); err != nil {
		return nil, fmt.Errorf("estimate is not valid JSON: %w", err)
	}
	if err := validate.Struct(&est); err != nil {
		return nil, fmt.Errorf("estimate failed schema validation: %w", err)
	}
	return &est, nil
}

// TasteMatch scores how well a recipe fits a user's taste profile.
type TasteMatch struct {
	Score     int      `json:"score" validate:"gte=0,lte=100"`
	Reasoning string   `json:"reasoning"`
	Warnings  []string `json:"warnings"`
}

// ParseTasteMatch decodes and validates a taste match response.
func ParseTasteMatch(raw json.RawMessage) (*TasteMatch, error) {
	var match TasteMatch
	if err := json.Unmarshal(raw, &match); err != nil {
		return nil, fmt.Errorf("match is not valid JSON: %w", err)
	}
	if err := validate.Struct(&match); err != nil {
		return nil, fmt.Errorf("match failed schema validation: %w", err)
	}
	return &match, nil
}
