package aigen

import (
	"fmt"
	"time"
)

// Creation records one generation request: the prompt, the tokens it cost,
// and the recipe it produced if any.
type Creation struct {
	id             uint
	userID         uint
	prompt         string
	resultRecipeID *uint
	tasteInputs    map[string]interface{}
	tokensUsed     int
	createdAt      time.Time
}

func NewCreation(userID uint, prompt string, tasteInputs map[string]interface{}, tokensUsed int) (*Creation, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(prompt) == 0 {
		return nil, fmt.Errorf("prompt is required")
	}
	if tokensUsed < 0 {
		return nil, fmt.Errorf("tokens used cannot be negative")
	}
	if tasteInputs == nil {
		tasteInputs = make(map[string]interface{})
	}

	return &Creation{
		userID:      userID,
		prompt:      prompt,
		tasteInputs: tasteInputs,
		tokensUsed:  tokensUsed,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructCreation(id, userID uint, prompt string, resultRecipeID *uint, tasteInputs map[string]interface{}, tokensUsed int, createdAt time.Time) (*Creation, error) {
	if id == 0 {
		return nil, fmt.Errorf("creation ID cannot be zero")
	}
	if tasteInputs == nil {
		tasteInputs = make(map[string]interface{})
	}

	return &Creation{
		id:             id,
		userID:         userID,
		prompt:         prompt,
		resultRecipeID: resultRecipeID,
		tasteInputs:    tasteInputs,
		tokensUsed:     tokensUsed,
		createdAt:      createdAt,
	}, nil
}

func (c *Creation) ID() uint { return c.id }

func (c *Creation) UserID() uint { return c.userID }

func (c *Creation) Prompt() string { return c.prompt }

func (c *Creation) ResultRecipeID() *uint { return c.resultRecipeID }

func (c *Creation) TokensUsed() int { return c.tokensUsed }

func (c *Creation) CreatedAt() time.Time { return c.createdAt }

func (c *Creation) TasteInputs() map[string]interface{} {
	inputsCopy := make(map[string]interface{}, len(c.tasteInputs))
	for k, v := range c.tasteInputs {
		inputsCopy[k] = v
	}
	return inputsCopy
}

// LinkRecipe attaches the recipe that came out of this generation.
func (c *Creation) LinkRecipe(recipeID uint) error {
	if recipeID == 0 {
		return fmt.Errorf("recipe ID cannot be zero")
	}
	c.resultRecipeID = &recipeID
	return nil
}
