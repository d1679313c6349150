package dto

import (
	"time"

	"sips/internal/domain/aigen"
)

type GenerateDrinkRequest struct {
	Sweetness    int      `json:"sweetness" binding:"gte=0,lte=10"`
	Caffeine     string   `json:"caffeine" binding:"required,oneof=none low medium high extreme"`
	Temperature  string   `json:"temperature" binding:"required,oneof=iced blended hot warm"`
	FlavorNotes  []string `json:"flavor_notes" binding:"max=5"`
	DietaryNeeds []string `json:"dietary_needs"`
	Budget       string   `json:"budget" binding:"omitempty,oneof=budget moderate premium"`
	Mood         string   `json:"mood"`
}

func (r GenerateDrinkRequest) DomainPreferences() aigen.DrinkPreferences {
	return aigen.DrinkPreferences{
		Sweetness:    r.Sweetness,
		Caffeine:     r.Caffeine,
		Temperature:  r.Temperature,
		FlavorNotes:  r.FlavorNotes,
		DietaryNeeds: r.DietaryNeeds,
		Budget:       r.Budget,
		Mood:         r.Mood,
	}
}

type ExtractFromURLRequest struct {
	URL string `json:"url" binding:"required"`
}

type ExtractFromImageRequest struct {
	Image string `json:"image" binding:"required"`
	Hint  string `json:"hint"`
}

type EstimateRequest struct {
	RecipeID uint `json:"recipe_id" binding:"required"`
}

type TasteMatchRequest struct {
	RecipeID uint `json:"recipe_id" binding:"required"`
}

type GenerationResponse struct {
	Recipe     RecipeResponse `json:"recipe"`
	TokensUsed int            `json:"tokens_used"`
}

type NutritionEstimateResponse struct {
	Calories   int     `json:"calories"`
	CaffeineMg int     `json:"caffeine_mg"`
	SugarG     float64 `json:"sugar_g"`
	ProteinG   float64 `json:"protein_g"`
	FatG       float64 `json:"fat_g"`
	CarbsG     float64 `json:"carbs_g"`
	Notes      string  `json:"notes,omitempty"`
}

func NewNutritionEstimateResponse(est *aigen.NutritionEstimate) NutritionEstimateResponse {
	return NutritionEstimateResponse{
		Calories:   est.Calories,
		CaffeineMg: est.CaffeineMg,
		SugarG:     est.SugarG,
		ProteinG:   est.ProteinG,
		FatG:       est.FatG,
		CarbsG:     est.CarbsG,
		Notes:      est.Notes,
	}
}

type PriceEstimateResponse struct {
	BasePrice  float64 `json:"base_price"`
	Currency   string  `json:"currency,omitempty"`
	CostDriver string  `json:"cost_driver,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

func NewPriceEstimateResponse(est *aigen.PriceEstimate) PriceEstimateResponse {
	return PriceEstimateResponse{
		BasePrice:  est.BasePrice,
		Currency:   est.Currency,
		CostDriver: est.CostDriver,
		Notes:      est.Notes,
	}
}

type TasteMatchResponse struct {
	Score     int      `json:"score"`
	Reasoning string   `json:"reasoning,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

func NewTasteMatchResponse(match *aigen.TasteMatch) TasteMatchResponse {
	return TasteMatchResponse{
		Score:     match.Score,
		Reasoning: match.Reasoning,
		Warnings:  match.Warnings,
	}
}

type CreationResponse struct {
	ID             uint      `json:"id"`
	Prompt         string    `json:"prompt"`
	ResultRecipeID *uint     `json:"result_recipe_id,omitempty"`
	TokensUsed     int       `json:"tokens_used"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewCreationListResponse(creations []*aigen.Creation) []CreationResponse {
	result := make([]CreationResponse, 0, len(creations))
	for _, c := range creations {
		result = append(result, CreationResponse{
			ID:             c.ID(),
			Prompt:         c.Prompt(),
			ResultRecipeID: c.ResultRecipeID(),
			TokensUsed:     c.TokensUsed(),
			CreatedAt:      c.CreatedAt(),
		})
	}
	return result
}
