package usecases

import (
	"context"

	"sips/internal/domain/engagement"
	"sips/internal/domain/recipe"
	"sips/internal/shared/logger"
)

type mockVoteRepository struct {
	GetByUserAndRecipeFunc func(ctx context.Context, userID, recipeID uint) (*engagement.Vote, error)
	InsertFunc             func(ctx context.Context, vote *engagement.Vote) error
	SwitchFunc             func(ctx context.Context, vote *engagement.Vote, newType engagement.VoteType) error
	RemoveFunc             func(ctx context.Context, vote *engagement.Vote) error
}

func (m *mockVoteRepository) GetByUserAndRecipe(ctx context.Context, userID, recipeID uint) (*engagement.Vote, error) {
	if m.GetByUserAndRecipeFunc != nil {
		return m.GetByUserAndRecipeFunc(ctx, userID, recipeID)
	}
	return nil, nil
}

func (m *mockVoteRepository) Insert(ctx context.Context, vote *engagement.Vote) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, vote)
	}
	return nil
}

func (m *mockVoteRepository) Switch(ctx context.Context, vote *engagement.Vote, newType engagement.VoteType) error {
	if m.SwitchFunc != nil {
		return m.SwitchFunc(ctx, vote, newType)
	}
	return nil
}

func (m *mockVoteRepository) Remove(ctx context.Context, vote *engagement.Vote) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, vote)
	}
	return nil
}

type mockFavoriteRepository struct {
	GetByUserAndRecipeFunc func(ctx context.Context, userID, recipeID uint) (*engagement.Favorite, error)
	InsertFunc             func(ctx context.Context, favorite *engagement.Favorite) error
	RemoveFunc             func(ctx context.Context, favorite *engagement.Favorite) error
	ListByUserFunc         func(ctx context.Context, userID uint, page, pageSize int) ([]uint, int64, error)
}

func (m *mockFavoriteRepository) GetByUserAndRecipe(ctx context.Context, userID, recipeID uint) (*engagement.Favorite, error) {
	if m.GetByUserAndRecipeFunc != nil {
		return m.GetByUserAndRecipeFunc(ctx, userID, recipeID)
	}
	return nil, nil
}

func (m *mockFavoriteRepository) Insert(ctx context.Context, favorite *engagement.Favorite) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, favorite)
	}
	return nil
}

func (m *mockFavoriteRepository) Remove(ctx context.Context, favorite *engagement.Favorite) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, favorite)
	}
	return nil
}

func (m *mockFavoriteRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]uint, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, page, pageSize)
	}
	return nil, 0, nil
}

type mockRecipeRepository struct {
	GetByIDFunc func(ctx context.Context, recipeID uint) (*recipe.Recipe, error)
}

func (m *mockRecipeRepository) Save(ctx context.Context, r *recipe.Recipe) error { return nil }

func (m *mockRecipeRepository) Update(ctx context.Context, r *recipe.Recipe) error { return nil }

func (m *mockRecipeRepository) Delete(ctx context.Context, recipeID uint) error { return nil }

func (m *mockRecipeRepository) GetByID(ctx context.Context, recipeID uint) (*recipe.Recipe, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, recipeID)
	}
	return nil, nil
}

func (m *mockRecipeRepository) List(ctx context.Context, filter recipe.RecipeFilter) ([]*recipe.Recipe, int64, error) {
	return nil, 0, nil
}

func (m *mockRecipeRepository) ListCategories(ctx context.Context) ([]recipe.CategoryCount, error) {
	return nil, nil
}

func (m *mockRecipeRepository) ListTrending(ctx context.Context, limit int) ([]*recipe.Recipe, error) {
	return nil, nil
}

func (m *mockRecipeRepository) IncrementViewCount(ctx context.Context, recipeID uint) error {
	return nil
}

func (m *mockRecipeRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockTransactionManager struct{}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}

func (m *mockLogger) Info(msg string, args ...any) {}

func (m *mockLogger) Warn(msg string, args ...any) {}

func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
