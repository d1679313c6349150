package usecases

import (
	"context"
	"encoding/json"

	"sips/internal/domain/aigen"
	"sips/internal/domain/ledger"
	"sips/internal/domain/recipe"
	"sips/internal/domain/user"
	"sips/internal/shared/logger"
)

type mockModelClient struct {
	CompleteJSONFunc          func(ctx context.Context, systemPrompt, userPrompt string) (json.RawMessage, error)
	CompleteJSONWithImageFunc func(ctx context.Context, systemPrompt, userPrompt, image string) (json.RawMessage, error)
}

func (m *mockModelClient) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (json.RawMessage, error) {
	if m.CompleteJSONFunc != nil {
		return m.CompleteJSONFunc(ctx, systemPrompt, userPrompt)
	}
	return nil, nil
}

func (m *mockModelClient) CompleteJSONWithImage(ctx context.Context, systemPrompt, userPrompt, image string) (json.RawMessage, error) {
	if m.CompleteJSONWithImageFunc != nil {
		return m.CompleteJSONWithImageFunc(ctx, systemPrompt, userPrompt, image)
	}
	return nil, nil
}

type mockContentFetcher struct {
	FetchTextFunc func(ctx context.Context, url string) (string, error)
}

func (m *mockContentFetcher) FetchText(ctx context.Context, url string) (string, error) {
	if m.FetchTextFunc != nil {
		return m.FetchTextFunc(ctx, url)
	}
	return "", nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, userID uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByOpenID(ctx context.Context, openID string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockRecipeRepository struct {
	SaveFunc    func(ctx context.Context, rec *recipe.Recipe) error
	UpdateFunc  func(ctx context.Context, rec *recipe.Recipe) error
	GetByIDFunc func(ctx context.Context, recipeID uint) (*recipe.Recipe, error)
}

func (m *mockRecipeRepository) Save(ctx context.Context, rec *recipe.Recipe) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, rec)
	}
	return rec.SetID(1)
}

func (m *mockRecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, rec)
	}
	return nil
}

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

type mockLedgerRepository struct {
	CreditFunc func(ctx context.Context, tx *ledger.Transaction) error
	DebitFunc  func(ctx context.Context, tx *ledger.Transaction) error
}

func (m *mockLedgerRepository) Credit(ctx context.Context, tx *ledger.Transaction) error {
	if m.CreditFunc != nil {
		return m.CreditFunc(ctx, tx)
	}
	return nil
}

func (m *mockLedgerRepository) Debit(ctx context.Context, tx *ledger.Transaction) error {
	if m.DebitFunc != nil {
		return m.DebitFunc(ctx, tx)
	}
	return nil
}

func (m *mockLedgerRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*ledger.Transaction, error) {
	return nil, nil
}

func (m *mockLedgerRepository) SumByUser(ctx context.Context, userID uint) (int, error) {
	return 0, nil
}

type mockCreationRepository struct {
	SaveFunc       func(ctx context.Context, creation *aigen.Creation) error
	ListByUserFunc func(ctx context.Context, userID uint, limit int) ([]*aigen.Creation, error)
}

func (m *mockCreationRepository) Save(ctx context.Context, creation *aigen.Creation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, creation)
	}
	return nil
}

func (m *mockCreationRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*aigen.Creation, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit)
	}
	return nil, nil
}

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
