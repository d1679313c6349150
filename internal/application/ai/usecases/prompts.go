package usecases

import (
	"fmt"
	"strings"

	"sips/internal/domain/aigen"
	"sips/internal/domain/recipe"
	"sips/internal/domain/user"
)

const generateDrinkSystemPrompt = `You are a creative barista who invents café-style drink recipes.
Respond with a single JSON object using exactly these keys:
"name", "description", "category", "ingredients" (array of {"name","amount","unit"}),
"instructions", "tags" (array of strings), "difficulty_level" (0-5),
"prep_time_minutes", and optionally "calories", "caffeine_mg", "sugar_g", "base_price".
Do not include any text outside the JSON object.`

const extractRecipeSystemPrompt = `You extract drink recipes from web pages and social media posts.
Given page text, identify the drink being described and respond with a single JSON object
using exactly these keys: "name", "description", "category",
"ingredients" (array of {"name","amount","unit"}), "instructions", "tags" (array of strings),
"difficulty_level" (0-5), "prep_time_minutes", and optionally "calories", "caffeine_mg",
"sugar_g", "base_price". If amounts are not stated, estimate reasonable ones.
Do not include any text outside the JSON object.`

const extractImageSystemPrompt = `You identify café drinks from photos and reconstruct their recipes.
Look at the image and respond with a single JSON object using exactly these keys:
"name", "description", "category", "ingredients" (array of {"name","amount","unit"}),
"instructions", "tags" (array of strings), "difficulty_level" (0-5), "prep_time_minutes",
and optionally "calories", "caffeine_mg", "sugar_g", "base_price".
Do not include any text outside the JSON object.`

const nutritionSystemPrompt = `You are a nutritionist estimating the per-serving nutrition of café drinks.
Respond with a single JSON object using exactly these keys:
"calories", "caffeine_mg", "sugar_g", "protein_g", "fat_g", "carbs_g", "notes".
All numeric values must be non-negative. Do not include any text outside the JSON object.`

const priceSystemPrompt = `You estimate what a café would charge for a drink based on its ingredients.
Respond with a single JSON object using exactly these keys:
"base_price" (USD), "currency", "cost_driver", "notes".
Do not include any text outside the JSON object.`

const tasteMatchSystemPrompt = `You score how well a drink matches a person's taste profile.
Respond with a single JSON object using exactly these keys:
"score" (0-100), "reasoning", "warnings" (array of strings).
Flag any ingredient that conflicts with the person's dietary preferences or allergies.
Do not include any text outside the JSON object.`

func buildDrinkPrompt(u *user.User, prefs aigen.DrinkPreferences) string {
	var b strings.Builder
	b.WriteString("Create a unique drink recipe based on these preferences:")
	fmt.Fprintf(&b, "\nSweetness level: %d/10", prefs.Sweetness)
	fmt.Fprintf(&b, "\nCaffeine preference: %s", prefs.Caffeine)
	fmt.Fprintf(&b, "\nTemperature: %s", prefs.Temperature)

	if len(prefs.FlavorNotes) > 0 {
		fmt.Fprintf(&b, "\nFlavor notes they love: %s", strings.Join(prefs.FlavorNotes, ", "))
	}

	dietary := prefs.DietaryNeeds
	if len(dietary) == 0 {
		dietary = u.DietaryPrefs()
	}
	if len(dietary) > 0 {
		fmt.Fprintf(&b, "\nDietary needs: %s", strings.Join(dietary, ", "))
	}
	if allergies := u.AllergyFlags(); len(allergies) > 0 {
		fmt.Fprintf(&b, "\nAvoid these allergens: %s", strings.Join(allergies, ", "))
	}

	budget := prefs.Budget
	if budget == "" {
		budget = "moderate"
	}
	fmt.Fprintf(&b, "\nBudget: %s", budget)

	if prefs.Mood != "" {
		fmt.Fprintf(&b, "\nCurrent mood: %s", prefs.Mood)
	}

	return b.String()
}

func formatIngredients(ingredients []recipe.Ingredient) string {
	lines := make([]string, len(ingredients))
	for i, ing := range ingredients {
		line := ing.Name
		if ing.Amount != "" {
			line = fmt.Sprintf("%s %s %s", ing.Amount, ing.Unit, ing.Name)
		}
		lines[i] = strings.TrimSpace(strings.ReplaceAll(line, "  ", " "))
	}
	return strings.Join(lines, "\n")
}

func buildRecipeContext(rec *recipe.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Drink: %s\n", rec.Name())
	if rec.Description() != "" {
		fmt.Fprintf(&b, "Description: %s\n", rec.Description())
	}
	b.WriteString("Ingredients:\n")
	b.WriteString(formatIngredients(rec.Ingredients()))
	if rec.Instructions() != "" {
		fmt.Fprintf(&b, "\nPreparation: %s", rec.Instructions())
	}
	return b.String()
}

func buildTasteMatchPrompt(u *user.User, rec *recipe.Recipe) string {
	var b strings.Builder
	b.WriteString(buildRecipeContext(rec))
	b.WriteString("\n\nPerson's profile:")

	if profile := u.TasteProfile(); len(profile) > 0 {
		for key, value := range profile {
			fmt.Fprintf(&b, "\n%s: %v", key, value)
		}
	}
	if prefs := u.DietaryPrefs(); len(prefs) > 0 {
		fmt.Fprintf(&b, "\nDietary preferences: %s", strings.Join(prefs, ", "))
	}
	if allergies := u.AllergyFlags(); len(allergies) > 0 {
		fmt.Fprintf(&b, "\nAllergies: %s", strings.Join(allergies, ", "))
	}

	return b.String()
}
