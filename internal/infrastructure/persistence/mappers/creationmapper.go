package mappers

import (
	"encoding/json"
	"fmt"

	"sips/internal/domain/aigen"
	"sips/internal/infrastructure/persistence/models"
)

// CreationMapper handles the conversion between AI creation domain entities
// and persistence models.
type CreationMapper interface {
	// ToModel converts a creation domain entity to a persistence model.
	ToModel(c *aigen.Creation) *models.AICreationModel

	// ToDomain converts a creation persistence model to a domain entity.
	ToDomain(model *models.AICreationModel) (*aigen.Creation, error)
}

// CreationMapperImpl is the concrete implementation of CreationMapper.
type CreationMapperImpl struct{}

// NewCreationMapper creates a new CreationMapper.
func NewCreationMapper() CreationMapper {
	return &CreationMapperImpl{}
}

// ToModel converts a creation domain entity to a persistence model.
func (m *CreationMapperImpl) ToModel(c *aigen.Creation) *models.AICreationModel {
	model := &models.AICreationModel{
		ID:             c.ID(),
		UserID:         c.UserID(),
		Prompt:         c.Prompt(),
		ResultRecipeID: c.ResultRecipeID(),
		TokensUsed:     c.TokensUsed(),
		CreatedAt:      c.CreatedAt().UnixMilli(),
	}

	if inputs := c.TasteInputs(); len(inputs) > 0 {
		inputsJSON, _ := json.Marshal(inputs)
		model.TasteInputs = string(inputsJSON)
	}

	return model
}

// ToDomain converts a creation persistence model to a domain entity.
func (m *CreationMapperImpl) ToDomain(model *models.AICreationModel) (*aigen.Creation, error) {
	var tasteInputs map[string]interface{}
	if model.TasteInputs != "" {
		if err := json.Unmarshal([]byte(model.TasteInputs), &tasteInputs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal creation taste inputs (id=%d): %w", model.ID, err)
		}
	}

	return aigen.ReconstructCreation(
		model.ID,
		model.UserID,
		model.Prompt,
		model.ResultRecipeID,
		tasteInputs,
		model.TokensUsed,
		convertMillisToTime(model.CreatedAt),
	)
}
