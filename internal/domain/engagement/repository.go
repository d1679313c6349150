package engagement

import "context"

// VoteRepository manipulates votes together with the denormalized counters
// on the recipe row. Counter updates happen in the same transaction as the
// vote row change.
type VoteRepository interface {
	GetByUserAndRecipe(ctx context.Context, userID, recipeID uint) (*Vote, error)
	// Insert stores a new vote and bumps the matching counter.
	Insert(ctx context.Context, vote *Vote) error
	// Switch changes the vote's direction and moves one count across the
	// two counters.
	Switch(ctx context.Context, vote *Vote, newType VoteType) error
	// Remove deletes the vote and decrements its counter, clamped at zero.
	Remove(ctx context.Context, vote *Vote) error
}

// FavoriteRepository manipulates favorites and the recipe save counter.
type FavoriteRepository interface {
	GetByUserAndRecipe(ctx context.Context, userID, recipeID uint) (*Favorite, error)
	// Insert stores a favorite and increments the save counter.
	Insert(ctx context.Context, favorite *Favorite) error
	// Remove deletes the favorite and decrements the save counter, clamped
	// at zero.
	Remove(ctx context.Context, favorite *Favorite) error
	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]uint, int64, error)
}
