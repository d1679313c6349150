package aigen

import "fmt"

// DrinkPreferences is the structured input for drink customization.
type DrinkPreferences struct {
	Sweetness    int      `json:"sweetness" validate:"gte=0,lte=10"`
	Caffeine     string   `json:"caffeine" validate:"required,oneof=none low medium high extreme"`
	Temperature  string   `json:"temperature" validate:"required,oneof=iced blended hot warm"`
	FlavorNotes  []string `json:"flavor_notes" validate:"max=5,dive,required"`
	DietaryNeeds []string `json:"dietary_needs"`
	Budget       string   `json:"budget" validate:"omitempty,oneof=budget moderate premium"`
	Mood         string   `json:"mood" validate:"max=500"`
}

// Validate checks the preferences against the input schema. Rejected
// preferences never reach the balance check or the model.
func (p DrinkPreferences) Validate() error {
	if err := validate.Struct(&p); err != nil {
		return fmt.Errorf("preferences failed schema validation: %w", err)
	}
	return nil
}

// Inputs renders the preferences as a generic map for the creation record.
func (p DrinkPreferences) Inputs() map[string]interface{} {
	inputs := map[string]interface{}{
		"sweetness":   p.Sweetness,
		"caffeine":    p.Caffeine,
		"temperature": p.Temperature,
	}
	if len(p.FlavorNotes) > 0 {
		inputs["flavor_notes"] = p.FlavorNotes
	}
	if len(p.DietaryNeeds) > 0 {
		inputs["dietary_needs"] = p.DietaryNeeds
	}
	if p.Budget != "" {
		inputs["budget"] = p.Budget
	}
	if p.Mood != "" {
		inputs["mood"] = p.Mood
	}
	return inputs
}
