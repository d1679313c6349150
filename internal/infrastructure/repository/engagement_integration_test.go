package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sips/internal/domain/engagement"
	"sips/internal/domain/recipe"
	apperrors "sips/internal/shared/errors"
)

func createTestRecipe(t *testing.T, db *gorm.DB, userID uint, name string) *recipe.Recipe {
	t.Helper()

	rec, err := recipe.NewRecipe(userID, name, "", "", "mix", nil)
	require.NoError(t, err)

	repo := NewRecipeRepository(db)
	require.NoError(t, repo.Save(context.Background(), rec))

	return rec
}

func TestVoteRepository_Insert(t *testing.T) {
	db := setupTestDB(t)
	votes := NewVoteRepository(db)
	recipes := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "vote-insert")
	rec := createTestRecipe(t, db, u.ID(), "Iced Matcha")

	v, err := engagement.NewVote(u.ID(), rec.ID(), engagement.VoteUp)
	require.NoError(t, err)
	require.NoError(t, votes.Insert(ctx, v))

	found, err := recipes.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, found.Upvotes())
	assert.Equal(t, 0, found.Downvotes())

	stored, err := votes.GetByUserAndRecipe(ctx, u.ID(), rec.ID())
	require.NoError(t, err)
	assert.Equal(t, engagement.VoteUp, stored.Type())
}

func TestVoteRepository_Insert_DuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	votes := NewVoteRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "vote-dup")
	rec := createTestRecipe(t, db, u.ID(), "Flat White")

	v1, err := engagement.NewVote(u.ID(), rec.ID(), engagement.VoteUp)
	require.NoError(t, err)
	require.NoError(t, votes.Insert(ctx, v1))

	v2, err := engagement.NewVote(u.ID(), rec.ID(), engagement.VoteDown)
	require.NoError(t, err)

	err = votes.Insert(ctx, v2)
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateError(err))
}

func TestVoteRepository_Switch(t *testing.T) {
	db := setupTestDB(t)
	votes := NewVoteRepository(db)
	recipes := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "vote-switch")
	rec := createTestRecipe(t, db, u.ID(), "Cold Brew")

	v, err := engagement.NewVote(u.ID(), rec.ID(), engagement.VoteUp)
	require.NoError(t, err)
	require.NoError(t, votes.Insert(ctx, v))

	stored, err := votes.GetByUserAndRecipe(ctx, u.ID(), rec.ID())
	require.NoError(t, err)
	require.NoError(t, votes.Switch(ctx, stored, engagement.VoteDown))

	found, err := recipes.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, found.Upvotes())
	assert.Equal(t, 1, found.Downvotes())

	switched, err := votes.GetByUserAndRecipe(ctx, u.ID(), rec.ID())
	require.NoError(t, err)
	assert.Equal(t, engagement.VoteDown, switched.Type())
}

func TestVoteRepository_Remove(t *testing.T) {
	db := setupTestDB(t)
	votes := NewVoteRepository(db)
	recipes := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "vote-remove")
	rec := createTestRecipe(t, db, u.ID(), "Espresso Tonic")

	v, err := engagement.NewVote(u.ID(), rec.ID(), engagement.VoteDown)
	require.NoError(t, err)
	require.NoError(t, votes.Insert(ctx, v))

	stored, err := votes.GetByUserAndRecipe(ctx, u.ID(), rec.ID())
	require.NoError(t, err)
	require.NoError(t, votes.Remove(ctx, stored))

	found, err := recipes.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, found.Downvotes())

	_, err = votes.GetByUserAndRecipe(ctx, u.ID(), rec.ID())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestVoteRepository_DecrementClampsAtZero(t *testing.T) {
	db := setupTestDB(t)
	votes := NewVoteRepository(db)
	recipes := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "vote-clamp")
	rec := createTestRecipe(t, db, u.ID(), "Dirty Chai")

	// A switch on a counter that is already zero must not push it negative.
	v, err := engagement.NewVote(u.ID(), rec.ID(), engagement.VoteUp)
	require.NoError(t, err)
	require.NoError(t, votes.Insert(ctx, v))

	stored, err := votes.GetByUserAndRecipe(ctx, u.ID(), rec.ID())
	require.NoError(t, err)
	require.NoError(t, votes.Switch(ctx, stored, engagement.VoteDown))

	switched, err := votes.GetByUserAndRecipe(ctx, u.ID(), rec.ID())
	require.NoError(t, err)
	require.NoError(t, votes.Switch(ctx, switched, engagement.VoteUp))

	found, err := recipes.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, found.Upvotes())
	assert.Equal(t, 0, found.Downvotes())
}

func TestFavoriteRepository_InsertAndRemove(t *testing.T) {
	db := setupTestDB(t)
	favorites := NewFavoriteRepository(db)
	recipes := NewRecipeRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "fav-basic")
	rec := createTestRecipe(t, db, u.ID(), "Oat Cortado")

	f, err := engagement.NewFavorite(u.ID(), rec.ID())
	require.NoError(t, err)
	require.NoError(t, favorites.Insert(ctx, f))

	found, err := recipes.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, found.SaveCount())

	stored, err := favorites.GetByUserAndRecipe(ctx, u.ID(), rec.ID())
	require.NoError(t, err)
	require.NoError(t, favorites.Remove(ctx, stored))

	found, err = recipes.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, found.SaveCount())

	_, err = favorites.GetByUserAndRecipe(ctx, u.ID(), rec.ID())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestFavoriteRepository_ListByUser(t *testing.T) {
	db := setupTestDB(t)
	favorites := NewFavoriteRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "fav-list")
	other := createTestUser(t, db, "fav-other")

	var recipeIDs []uint
	for _, name := range []string{"A", "B", "C"} {
		rec := createTestRecipe(t, db, u.ID(), name)
		recipeIDs = append(recipeIDs, rec.ID())

		f, err := engagement.NewFavorite(u.ID(), rec.ID())
		require.NoError(t, err)
		require.NoError(t, favorites.Insert(ctx, f))
	}

	otherFav, err := engagement.NewFavorite(other.ID(), recipeIDs[0])
	require.NoError(t, err)
	require.NoError(t, favorites.Insert(ctx, otherFav))

	ids, total, err := favorites.ListByUser(ctx, u.ID(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.ElementsMatch(t, recipeIDs, ids)

	page, total, err := favorites.ListByUser(ctx, u.ID(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 2)
}
