package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sips/internal/domain/recipe"
	apperrors "sips/internal/shared/errors"
)

func TestCreateRecipeUseCase_Execute_Success(t *testing.T) {
	var saved *recipe.Recipe
	mockRepo := &mockRecipeRepository{
		SaveFunc: func(ctx context.Context, r *recipe.Recipe) error {
			if err := r.SetID(42); err != nil {
				return err
			}
			saved = r
			return nil
		},
	}

	useCase := NewCreateRecipeUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateRecipeCommand{
		UserID:       1,
		Name:         "Brown Sugar Shaken Espresso",
		Description:  "Shaken over ice",
		Category:     "Coffee",
		Instructions: "Shake espresso with syrup and ice",
		Ingredients: []recipe.Ingredient{
			{Name: "espresso", Amount: "2", Unit: "shots"},
		},
		Tags: []string{"iced"},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(42), result.RecipeID)
	assert.Equal(t, "Coffee", result.Category)
	assert.True(t, result.IsPublic)

	require.NotNil(t, saved)
	assert.Equal(t, []string{"iced"}, saved.Tags())
}

func TestCreateRecipeUseCase_Execute_DefaultCategory(t *testing.T) {
	mockRepo := &mockRecipeRepository{
		SaveFunc: func(ctx context.Context, r *recipe.Recipe) error {
			return r.SetID(1)
		},
	}

	useCase := NewCreateRecipeUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateRecipeCommand{
		UserID: 1,
		Name:   "Uncategorized Drink",
	})

	require.NoError(t, err)
	assert.Equal(t, recipe.DefaultCategory, result.Category)
}

func TestCreateRecipeUseCase_Execute_Private(t *testing.T) {
	mockRepo := &mockRecipeRepository{
		SaveFunc: func(ctx context.Context, r *recipe.Recipe) error {
			return r.SetID(1)
		},
	}

	isPublic := false
	useCase := NewCreateRecipeUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateRecipeCommand{
		UserID:   1,
		Name:     "Secret Drink",
		IsPublic: &isPublic,
	})

	require.NoError(t, err)
	assert.False(t, result.IsPublic)
}

func TestCreateRecipeUseCase_Execute_Invalid(t *testing.T) {
	useCase := NewCreateRecipeUseCase(&mockRecipeRepository{}, &mockLogger{})

	t.Run("missing user", func(t *testing.T) {
		_, err := useCase.Execute(context.Background(), CreateRecipeCommand{Name: "Drink"})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := useCase.Execute(context.Background(), CreateRecipeCommand{UserID: 1})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}
