package mappers

import (
	"encoding/json"
	"fmt"

	"sips/internal/domain/recipe"
	"sips/internal/infrastructure/persistence/models"
)

// RecipeMapper handles the conversion between Recipe domain entities and persistence models.
type RecipeMapper interface {
	// ToModel converts a recipe domain entity to a persistence model.
	ToModel(r *recipe.Recipe) *models.RecipeModel

	// ToDomain converts a recipe persistence model to a domain entity.
	ToDomain(model *models.RecipeModel) (*recipe.Recipe, error)
}

// RecipeMapperImpl is the concrete implementation of RecipeMapper.
type RecipeMapperImpl struct{}

// NewRecipeMapper creates a new RecipeMapper.
func NewRecipeMapper() RecipeMapper {
	return &RecipeMapperImpl{}
}

// ToModel converts a recipe domain entity to a persistence model.
func (m *RecipeMapperImpl) ToModel(r *recipe.Recipe) *models.RecipeModel {
	nutrition := r.GetNutrition()

	model := &models.RecipeModel{
		ID:              r.ID(),
		UserID:          r.UserID(),
		Name:            r.Name(),
		Description:     r.Description(),
		Category:        r.Category(),
		ImageURL:        r.ImageURL(),
		Instructions:    r.Instructions(),
		BasePrice:       r.BasePrice(),
		Calories:        nutrition.Calories,
		CaffeineMg:      nutrition.CaffeineMg,
		SugarG:          nutrition.SugarG,
		ProteinG:        nutrition.ProteinG,
		FatG:            nutrition.FatG,
		CarbsG:          nutrition.CarbsG,
		IsPublic:        r.IsPublic(),
		IsVerified:      r.IsVerified(),
		IsTrending:      r.IsTrending(),
		DifficultyLevel: r.DifficultyLevel(),
		PrepTimeMinutes: r.PrepTimeMinutes(),
		Source:          r.Source(),
		OriginalURL:     r.OriginalURL(),
		Season:          r.Season(),
		Upvotes:         r.Upvotes(),
		Downvotes:       r.Downvotes(),
		ViewCount:       r.ViewCount(),
		SaveCount:       r.SaveCount(),
		CreatedAt:       r.CreatedAt().UnixMilli(),
		UpdatedAt:       r.UpdatedAt().UnixMilli(),
	}

	if ingredients := r.Ingredients(); len(ingredients) > 0 {
		ingredientsJSON, _ := json.Marshal(ingredients)
		model.Ingredients = string(ingredientsJSON)
	}

	if tags := r.Tags(); len(tags) > 0 {
		tagsJSON, _ := json.Marshal(tags)
		model.Tags = string(tagsJSON)
	}

	if images := r.Images(); len(images) > 0 {
		imagesJSON, _ := json.Marshal(images)
		model.Images = string(imagesJSON)
	}

	if steps := r.BaristaSteps(); len(steps) > 0 {
		stepsJSON, _ := json.Marshal(steps)
		model.BaristaSteps = string(stepsJSON)
	}

	if flags := r.DietaryFlags(); len(flags) > 0 {
		flagsJSON, _ := json.Marshal(flags)
		model.DietaryFlags = string(flagsJSON)
	}

	if allergens := r.Allergens(); len(allergens) > 0 {
		allergensJSON, _ := json.Marshal(allergens)
		model.Allergens = string(allergensJSON)
	}

	return model
}

// ToDomain converts a recipe persistence model to a domain entity.
func (m *RecipeMapperImpl) ToDomain(model *models.RecipeModel) (*recipe.Recipe, error) {
	var ingredients []recipe.Ingredient
	if model.Ingredients != "" {
		if err := json.Unmarshal([]byte(model.Ingredients), &ingredients); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recipe ingredients (id=%d): %w", model.ID, err)
		}
	}

	var tags []string
	if model.Tags != "" {
		if err := json.Unmarshal([]byte(model.Tags), &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recipe tags (id=%d): %w", model.ID, err)
		}
	}

	var images []string
	if model.Images != "" {
		if err := json.Unmarshal([]byte(model.Images), &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recipe images (id=%d): %w", model.ID, err)
		}
	}

	var baristaSteps []string
	if model.BaristaSteps != "" {
		if err := json.Unmarshal([]byte(model.BaristaSteps), &baristaSteps); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recipe barista steps (id=%d): %w", model.ID, err)
		}
	}

	var dietaryFlags []string
	if model.DietaryFlags != "" {
		if err := json.Unmarshal([]byte(model.DietaryFlags), &dietaryFlags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recipe dietary flags (id=%d): %w", model.ID, err)
		}
	}

	var allergens []string
	if model.Allergens != "" {
		if err := json.Unmarshal([]byte(model.Allergens), &allergens); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recipe allergens (id=%d): %w", model.ID, err)
		}
	}

	return recipe.ReconstructRecipe(recipe.ReconstructParams{
		ID:           model.ID,
		UserID:       model.UserID,
		Name:         model.Name,
		Description:  model.Description,
		Category:     model.Category,
		ImageURL:     model.ImageURL,
		Images:       images,
		Instructions: model.Instructions,
		Ingredients:  ingredients,
		Tags:         tags,
		BasePrice:    model.BasePrice,
		Nutrition: recipe.Nutrition{
			Calories:   model.Calories,
			CaffeineMg: model.CaffeineMg,
			SugarG:     model.SugarG,
			ProteinG:   model.ProteinG,
			FatG:       model.FatG,
			CarbsG:     model.CarbsG,
		},
		IsPublic:        model.IsPublic,
		IsVerified:      model.IsVerified,
		IsTrending:      model.IsTrending,
		DifficultyLevel: model.DifficultyLevel,
		PrepTimeMinutes: model.PrepTimeMinutes,
		Source:          model.Source,
		OriginalURL:     model.OriginalURL,
		BaristaSteps:    baristaSteps,
		DietaryFlags:    dietaryFlags,
		Allergens:       allergens,
		Season:          model.Season,
		Upvotes:         model.Upvotes,
		Downvotes:       model.Downvotes,
		ViewCount:       model.ViewCount,
		SaveCount:       model.SaveCount,
		CreatedAt:       convertMillisToTime(model.CreatedAt),
		UpdatedAt:       convertMillisToTime(model.UpdatedAt),
	})
}
