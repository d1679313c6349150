package aigen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecipeDraft_Valid(t *testing.T) {
	raw := json.RawMessage(`{
		"name": "Lavender Oat Latte",
		"description": "A floral twist on a classic",
		"category": "Coffee",
		"ingredients": [
			{"name": "espresso", "amount": "2", "unit": "shots"},
			{"name": "oat milk", "amount": "200", "unit": "ml"},
			{"name": "lavender syrup", "amount": "15", "unit": "ml"}
		],
		"instructions": "Pull the shots, steam the milk, combine.",
		"tags": ["floral", "latte"],
		"difficulty_level": 2,
		"prep_time_minutes": 5,
		"calories": 180
	}`)

	draft, err := ParseRecipeDraft(raw)
	require.NoError(t, err)
	assert.Equal(t, "Lavender Oat Latte", draft.Name)
	assert.Len(t, draft.Ingredients, 3)
	require.NotNil(t, draft.Calories)
	assert.Equal(t, 180, *draft.Calories)
}

func TestParseRecipeDraft_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `the model apologized instead of answering`},
		{"missing name", `{"ingredients":[{"name":"x","amount":"1"}],"instructions":"mix"}`},
		{"no ingredients", `{"name":"Drink","ingredients":[],"instructions":"mix"}`},
		{"ingredient missing amount", `{"name":"Drink","ingredients":[{"name":"x"}],"instructions":"mix"}`},
		{"missing instructions", `{"name":"Drink","ingredients":[{"name":"x","amount":"1"}]}`},
		{"negative calories", `{"name":"Drink","ingredients":[{"name":"x","amount":"1"}],"instructions":"mix","calories":-5}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			draft, err := ParseRecipeDraft(json.RawMessage(tc.raw))
			require.Error(t, err)
			assert.Nil(t, draft)
		})
	}
}

func TestParseNutritionEstimate(t *testing.T) {
	raw := json.RawMessage(`{"calories":120,"caffeine_mg":80,"sugar_g":14.5,"protein_g":4,"fat_g":3,"carbs_g":18}`)

	est, err := ParseNutritionEstimate(raw)
	require.NoError(t, err)
	assert.Equal(t, 120, est.Calories)
	assert.InDelta(t, 14.5, est.SugarG, 0.001)

	_, err = ParseNutritionEstimate(json.RawMessage(`{"calories":-1}`))
	require.Error(t, err)
}

func TestParsePriceEstimate(t *testing.T) {
	raw := json.RawMessage(`{"base_price":4.75,"currency":"USD","cost_driver":"oat milk"}`)

	est, err := ParsePriceEstimate(raw)
	require.NoError(t, err)
	assert.InDelta(t, 4.75, est.BasePrice, 0.001)

	_, err = ParsePriceEstimate(json.RawMessage(`{"base_price":-2}`))
	require.Error(t, err)
}

func TestParseTasteMatch(t *testing.T) {
	raw := json.RawMessage(`{"score":85,"reasoning":"matches sweet preference","warnings":["contains caffeine"]}`)

	match, err := ParseTasteMatch(raw)
	require.NoError(t, err)
	assert.Equal(t, 85, match.Score)
	assert.Len(t, match.Warnings, 1)

	_, err = ParseTasteMatch(json.RawMessage(`{"score":101}`))
	require.Error(t, err)
}
