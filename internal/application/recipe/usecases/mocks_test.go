package usecases

import (
	"context"

	"sips/internal/domain/audit"
	"sips/internal/domain/recipe"
	"sips/internal/shared/logger"
)

type mockRecipeRepository struct {
	SaveFunc               func(ctx context.Context, r *recipe.Recipe) error
	UpdateFunc             func(ctx context.Context, r *recipe.Recipe) error
	DeleteFunc             func(ctx context.Context, recipeID uint) error
	GetByIDFunc            func(ctx context.Context, recipeID uint) (*recipe.Recipe, error)
	ListFunc               func(ctx context.Context, filter recipe.RecipeFilter) ([]*recipe.Recipe, int64, error)
	ListCategoriesFunc     func(ctx context.Context) ([]recipe.CategoryCount, error)
	ListTrendingFunc       func(ctx context.Context, limit int) ([]*recipe.Recipe, error)
	IncrementViewCountFunc func(ctx context.Context, recipeID uint) error
	CountFunc              func(ctx context.Context) (int64, error)
}

func (m *mockRecipeRepository) Save(ctx context.Context, r *recipe.Recipe) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRecipeRepository) Update(ctx context.Context, r *recipe.Recipe) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRecipeRepository) Delete(ctx context.Context, recipeID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, recipeID)
	}
	return nil
}

func (m *mockRecipeRepository) GetByID(ctx context.Context, recipeID uint) (*recipe.Recipe, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, recipeID)
	}
	return nil, nil
}

func (m *mockRecipeRepository) List(ctx context.Context, filter recipe.RecipeFilter) ([]*recipe.Recipe, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRecipeRepository) ListCategories(ctx context.Context) ([]recipe.CategoryCount, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockRecipeRepository) ListTrending(ctx context.Context, limit int) ([]*recipe.Recipe, error) {
	if m.ListTrendingFunc != nil {
		return m.ListTrendingFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockRecipeRepository) IncrementViewCount(ctx context.Context, recipeID uint) error {
	if m.IncrementViewCountFunc != nil {
		return m.IncrementViewCountFunc(ctx, recipeID)
	}
	return nil
}

func (m *mockRecipeRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockAuditLogRepository struct {
	SaveFunc func(ctx context.Context, entry *audit.LogEntry) error
	ListFunc func(ctx context.Context, page, pageSize int) ([]*audit.LogEntry, int64, error)
}

func (m *mockAuditLogRepository) Save(ctx context.Context, entry *audit.LogEntry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return nil
}

func (m *mockAuditLogRepository) List(ctx context.Context, page, pageSize int) ([]*audit.LogEntry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}

func (m *mockLogger) Info(msg string, args ...any) {}

func (m *mockLogger) Warn(msg string, args ...any) {}

func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
