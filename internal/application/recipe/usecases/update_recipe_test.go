package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sips/internal/domain/audit"
	"sips/internal/domain/recipe"
	"sips/internal/shared/authorization"
	apperrors "sips/internal/shared/errors"
)

func TestUpdateRecipeUseCase_Execute_Owner(t *testing.T) {
	var updated *recipe.Recipe
	mockRepo := &mockRecipeRepository{
		GetByIDFunc: func(ctx context.Context, recipeID uint) (*recipe.Recipe, error) {
			return reconstructRecipe(t, recipeID, 7, true), nil
		},
		UpdateFunc: func(ctx context.Context, r *recipe.Recipe) error {
			updated = r
			return nil
		},
	}

	newName := "Improved Drink"
	useCase := NewUpdateRecipeUseCase(mockRepo, &mockLogger{})
	rec, err := useCase.Execute(context.Background(), UpdateRecipeCommand{
		RecipeID: 5,
		UserID:   7,
		UserRole: authorization.RoleUser,
		Name:     &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, "Improved Drink", rec.Name())
	require.NotNil(t, updated)
	assert.Equal(t, "Improved Drink", updated.Name())
}

func TestUpdateRecipeUseCase_Execute_NotOwner(t *testing.T) {
	mockRepo := &mockRecipeRepository{
		GetByIDFunc: func(ctx context.Context, recipeID uint) (*recipe.Recipe, error) {
			return reconstructRecipe(t, recipeID, 7, true), nil
		},
	}

	newName := "Hijacked"
	useCase := NewUpdateRecipeUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), UpdateRecipeCommand{
		RecipeID: 5,
		UserID:   99,
		UserRole: authorization.RoleUser,
		Name:     &newName,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestUpdateRecipeUseCase_Execute_AdminOverride(t *testing.T) {
	mockRepo := &mockRecipeRepository{
		GetByIDFunc: func(ctx context.Context, recipeID uint) (*recipe.Recipe, error) {
			return reconstructRecipe(t, recipeID, 7, true), nil
		},
	}

	newName := "Moderated Name"
	useCase := NewUpdateRecipeUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), UpdateRecipeCommand{
		RecipeID: 5,
		UserID:   99,
		UserRole: authorization.RoleAdmin,
		Name:     &newName,
	})

	require.NoError(t, err)
}

func TestDeleteRecipeUseCase_Execute(t *testing.T) {
	mockRepo := &mockRecipeRepository{
		GetByIDFunc: func(ctx context.Context, recipeID uint) (*recipe.Recipe, error) {
			return reconstructRecipe(t, recipeID, 7, true), nil
		},
	}
	useCase := NewDeleteRecipeUseCase(mockRepo, &mockLogger{})

	t.Run("owner can delete", func(t *testing.T) {
		err := useCase.Execute(context.Background(), DeleteRecipeCommand{
			RecipeID: 5,
			UserID:   7,
			UserRole: authorization.RoleUser,
		})
		require.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		err := useCase.Execute(context.Background(), DeleteRecipeCommand{
			RecipeID: 5,
			UserID:   2,
			UserRole: authorization.RoleUser,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("admin can delete any", func(t *testing.T) {
		err := useCase.Execute(context.Background(), DeleteRecipeCommand{
			RecipeID: 5,
			UserID:   2,
			UserRole: authorization.RoleAdmin,
		})
		require.NoError(t, err)
	})
}

func TestModerateRecipeUseCase_Execute(t *testing.T) {
	var auditActions []string
	mockRepo := &mockRecipeRepository{
		GetByIDFunc: func(ctx context.Context, recipeID uint) (*recipe.Recipe, error) {
			return reconstructRecipe(t, recipeID, 7, true), nil
		},
	}
	mockAudit := &mockAuditLogRepository{
		SaveFunc: func(ctx context.Context, entry *audit.LogEntry) error {
			auditActions = append(auditActions, entry.Action())
			return nil
		},
	}

	useCase := NewModerateRecipeUseCase(mockRepo, mockAudit, &mockLogger{})

	t.Run("toggle trending", func(t *testing.T) {
		rec, err := useCase.Execute(context.Background(), ModerateRecipeCommand{
			RecipeID: 5,
			AdminID:  1,
			Action:   ActionToggleTrending,
		})
		require.NoError(t, err)
		assert.True(t, rec.IsTrending())
		assert.Contains(t, auditActions, "recipe.toggle_trending")
	})

	t.Run("mark verified", func(t *testing.T) {
		rec, err := useCase.Execute(context.Background(), ModerateRecipeCommand{
			RecipeID: 5,
			AdminID:  1,
			Action:   ActionMarkVerified,
		})
		require.NoError(t, err)
		assert.True(t, rec.IsVerified())
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := useCase.Execute(context.Background(), ModerateRecipeCommand{
			RecipeID: 5,
			AdminID:  1,
			Action:   "ban",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}
