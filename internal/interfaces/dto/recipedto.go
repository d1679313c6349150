// Package dto defines the HTTP request and response shapes. Domain entities
// never cross the wire directly; handlers map them through these types.
package dto

import (
	"time"

	"sips/internal/domain/recipe"
)

type IngredientRequest struct {
	Name   string `json:"name" binding:"required"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

type CreateRecipeRequest struct {
	Name         string              `json:"name" binding:"required"`
	Description  string              `json:"description"`
	Category     string              `json:"category"`
	ImageURL     string              `json:"image_url"`
	Instructions string              `json:"instructions" binding:"required"`
	Ingredients  []IngredientRequest `json:"ingredients" binding:"required,min=1"`
	Tags         []string            `json:"tags"`
	IsPublic     *bool               `json:"is_public"`
}

type UpdateRecipeRequest struct {
	Name         *string             `json:"name"`
	Description  *string             `json:"description"`
	Category     *string             `json:"category"`
	ImageURL     *string             `json:"image_url"`
	Instructions *string             `json:"instructions"`
	Ingredients  []IngredientRequest `json:"ingredients"`
	Tags         []string            `json:"tags"`
	IsPublic     *bool               `json:"is_public"`
}

func (r *CreateRecipeRequest) DomainIngredients() []recipe.Ingredient {
	return toDomainIngredients(r.Ingredients)
}

func (r *UpdateRecipeRequest) DomainIngredients() []recipe.Ingredient {
	if r.Ingredients == nil {
		return nil
	}
	return toDomainIngredients(r.Ingredients)
}

func toDomainIngredients(ingredients []IngredientRequest) []recipe.Ingredient {
	result := make([]recipe.Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		result = append(result, recipe.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}
	return result
}

type NutritionResponse struct {
	Calories   *int     `json:"calories,omitempty"`
	CaffeineMg *int     `json:"caffeine_mg,omitempty"`
	SugarG     *float64 `json:"sugar_g,omitempty"`
	ProteinG   *float64 `json:"protein_g,omitempty"`
	FatG       *float64 `json:"fat_g,omitempty"`
	CarbsG     *float64 `json:"carbs_g,omitempty"`
}

type RecipeResponse struct {
	ID              uint                `json:"id"`
	UserID          uint                `json:"user_id"`
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	Category        string              `json:"category"`
	ImageURL        string              `json:"image_url,omitempty"`
	Instructions    string              `json:"instructions"`
	Ingredients     []recipe.Ingredient `json:"ingredients"`
	Tags            []string            `json:"tags"`
	BasePrice       *float64            `json:"base_price,omitempty"`
	Nutrition       *NutritionResponse  `json:"nutrition,omitempty"`
	IsPublic        bool                `json:"is_public"`
	IsVerified      bool                `json:"is_verified"`
	IsTrending      bool                `json:"is_trending"`
	DifficultyLevel int                 `json:"difficulty_level"`
	PrepTimeMinutes int                 `json:"prep_time_minutes"`
	Source          string              `json:"source,omitempty"`
	OriginalURL     string              `json:"original_url,omitempty"`
	Upvotes         int                 `json:"upvotes"`
	Downvotes       int                 `json:"downvotes"`
	ViewCount       int                 `json:"view_count"`
	SaveCount       int                 `json:"save_count"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func NewRecipeResponse(rec *recipe.Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:              rec.ID(),
		UserID:          rec.UserID(),
		Name:            rec.Name(),
		Description:     rec.Description(),
		Category:        rec.Category(),
		ImageURL:        rec.ImageURL(),
		Instructions:    rec.Instructions(),
		Ingredients:     rec.Ingredients(),
		Tags:            rec.Tags(),
		BasePrice:       rec.BasePrice(),
		IsPublic:        rec.IsPublic(),
		IsVerified:      rec.IsVerified(),
		IsTrending:      rec.IsTrending(),
		DifficultyLevel: rec.DifficultyLevel(),
		PrepTimeMinutes: rec.PrepTimeMinutes(),
		Source:          rec.Source(),
		OriginalURL:     rec.OriginalURL(),
		Upvotes:         rec.Upvotes(),
		Downvotes:       rec.Downvotes(),
		ViewCount:       rec.ViewCount(),
		SaveCount:       rec.SaveCount(),
		CreatedAt:       rec.CreatedAt(),
		UpdatedAt:       rec.UpdatedAt(),
	}

	nutrition := rec.GetNutrition()
	if nutrition.Calories != nil || nutrition.CaffeineMg != nil || nutrition.SugarG != nil ||
		nutrition.ProteinG != nil || nutrition.FatG != nil || nutrition.CarbsG != nil {
		resp.Nutrition = &NutritionResponse{
			Calories:   nutrition.Calories,
			CaffeineMg: nutrition.CaffeineMg,
			SugarG:     nutrition.SugarG,
			ProteinG:   nutrition.ProteinG,
			FatG:       nutrition.FatG,
			CarbsG:     nutrition.CarbsG,
		}
	}

	return resp
}

func NewRecipeListResponse(recipes []*recipe.Recipe) []RecipeResponse {
	result := make([]RecipeResponse, 0, len(recipes))
	for _, rec := range recipes {
		result = append(result, NewRecipeResponse(rec))
	}
	return result
}

type CategoryResponse struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

func NewCategoryListResponse(categories []recipe.CategoryCount) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		result = append(result, CategoryResponse{
			Category: cat.Category,
			Count:    cat.Count,
		})
	}
	return result
}
