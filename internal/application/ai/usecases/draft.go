package usecases

import (
	"sips/internal/domain/aigen"
	"sips/internal/domain/recipe"
)

// recipeFromDraft turns a validated model draft into a recipe entity owned by
// the requesting user. Generated recipes start out public.
func recipeFromDraft(userID uint, draft *aigen.RecipeDraft) (*recipe.Recipe, error) {
	ingredients := make([]recipe.Ingredient, len(draft.Ingredients))
	for i, ing := range draft.Ingredients {
		ingredients[i] = recipe.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		}
	}

	rec, err := recipe.NewRecipe(userID, draft.Name, draft.Description, draft.Category, draft.Instructions, ingredients)
	if err != nil {
		return nil, err
	}

	if len(draft.Tags) > 0 {
		if err := rec.Update(recipe.UpdateParams{Tags: draft.Tags}); err != nil {
			return nil, err
		}
	}
	if err := rec.SetPreparation(draft.DifficultyLevel, draft.PrepTimeMinutes); err != nil {
		return nil, err
	}
	if draft.Calories != nil || draft.CaffeineMg != nil || draft.SugarG != nil {
		rec.SetNutrition(recipe.Nutrition{
			Calories:   draft.Calories,
			CaffeineMg: draft.CaffeineMg,
			SugarG:     draft.SugarG,
		})
	}
	if draft.BasePrice != nil {
		rec.SetBasePrice(*draft.BasePrice)
	}

	return rec, nil
}
