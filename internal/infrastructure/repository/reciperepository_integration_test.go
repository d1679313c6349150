package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sips/internal/domain/recipe"
	apperrors "sips/internal/shared/errors"
)

func TestRecipeRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "recipe-save")

	ingredients := []recipe.Ingredient{
		{Name: "espresso", Amount: "2", Unit: "shots"},
		{Name: "oat milk", Amount: "200", Unit: "ml"},
	}
	rec, err := recipe.NewRecipe(u.ID(), "Oat Latte", "Smooth and nutty", "Coffee", "Pull shots, steam milk", ingredients)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, rec))
	assert.NotZero(t, rec.ID())

	found, err := repo.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, "Oat Latte", found.Name())
	assert.Equal(t, "Coffee", found.Category())
	assert.Equal(t, ingredients, found.Ingredients())
	assert.True(t, found.IsPublic())
}

func TestRecipeRepository_DefaultCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "recipe-default")

	rec, err := recipe.NewRecipe(u.ID(), "Mystery Drink", "", "", "shake", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, rec))

	found, err := repo.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, recipe.DefaultCategory, found.Category())
}

func TestRecipeRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestRecipeRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "recipe-update")
	rec := createTestRecipe(t, db, u.ID(), "Original Name")

	newName := "Renamed Drink"
	isPublic := false
	require.NoError(t, rec.Update(recipe.UpdateParams{Name: &newName, IsPublic: &isPublic}))
	require.NoError(t, repo.Update(ctx, rec))

	found, err := repo.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, "Renamed Drink", found.Name())
	assert.False(t, found.IsPublic())
}

func TestRecipeRepository_UpdateDoesNotClobberCounters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "recipe-counters")
	rec := createTestRecipe(t, db, u.ID(), "Counter Test")

	// Bump a counter behind the entity's back, then write the stale entity.
	require.NoError(t, repo.IncrementViewCount(ctx, rec.ID()))
	require.NoError(t, repo.Update(ctx, rec))

	found, err := repo.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, found.ViewCount())
}

func TestRecipeRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "recipe-delete")
	rec := createTestRecipe(t, db, u.ID(), "Short Lived")

	require.NoError(t, repo.Delete(ctx, rec.ID()))

	_, err := repo.GetByID(ctx, rec.ID())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))

	err = repo.Delete(ctx, rec.ID())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestRecipeRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "recipe-list")

	coffee := createTestRecipe(t, db, u.ID(), "Morning Coffee")
	tea, err := recipe.NewRecipe(u.ID(), "Afternoon Tea", "", "Tea", "steep", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, tea))

	private, err := recipe.NewRecipe(u.ID(), "Secret Drink", "", "Tea", "shh", nil)
	require.NoError(t, err)
	private.TogglePublic()
	require.NoError(t, repo.Save(ctx, private))

	t.Run("public only by default", func(t *testing.T) {
		list, total, err := repo.List(ctx, recipe.RecipeFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, list, 2)
	})

	t.Run("include private", func(t *testing.T) {
		_, total, err := repo.List(ctx, recipe.RecipeFilter{IncludePrivate: true})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("filter by category", func(t *testing.T) {
		list, total, err := repo.List(ctx, recipe.RecipeFilter{Category: "Tea"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, "Afternoon Tea", list[0].Name())
	})

	t.Run("search by name", func(t *testing.T) {
		list, _, err := repo.List(ctx, recipe.RecipeFilter{Search: "Morning"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, coffee.ID(), list[0].ID())
	})

	t.Run("filter by user", func(t *testing.T) {
		other := createTestUser(t, db, "recipe-list-other")
		otherID := other.ID()
		_, total, err := repo.List(ctx, recipe.RecipeFilter{UserID: &otherID})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("pagination", func(t *testing.T) {
		list, total, err := repo.List(ctx, recipe.RecipeFilter{Page: 1, PageSize: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, list, 1)
	})
}

func TestRecipeRepository_ListCategories(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "recipe-categories")

	for i := 0; i < 2; i++ {
		rec, err := recipe.NewRecipe(u.ID(), "Coffee Drink", "", "Coffee", "brew", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, rec))
	}
	tea, err := recipe.NewRecipe(u.ID(), "Tea Drink", "", "Tea", "steep", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, tea))

	hidden, err := recipe.NewRecipe(u.ID(), "Hidden", "", "Secret", "x", nil)
	require.NoError(t, err)
	hidden.TogglePublic()
	require.NoError(t, repo.Save(ctx, hidden))

	counts, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "Coffee", counts[0].Category)
	assert.Equal(t, int64(2), counts[0].Count)
	assert.Equal(t, "Tea", counts[1].Category)
}

func TestRecipeRepository_ListTrending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "recipe-trending")

	trending, err := recipe.NewRecipe(u.ID(), "Viral Drink", "", "Coffee", "brew", nil)
	require.NoError(t, err)
	trending.ToggleTrending()
	require.NoError(t, repo.Save(ctx, trending))

	createTestRecipe(t, db, u.ID(), "Plain Drink")

	list, err := repo.ListTrending(ctx, 8)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Viral Drink", list[0].Name())
}

func TestRecipeRepository_IncrementViewCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "recipe-views")
	rec := createTestRecipe(t, db, u.ID(), "Watched Drink")

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementViewCount(ctx, rec.ID()))
	}

	found, err := repo.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, 3, found.ViewCount())
}
