package usecases

import (
	"context"

	"sips/internal/domain/audit"
	"sips/internal/domain/recipe"
	"sips/internal/domain/ticket"
	"sips/internal/domain/user"
	"sips/internal/shared/logger"
)

type mockUserRepository struct {
	ListFunc  func(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error)
	CountFunc func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByOpenID(ctx context.Context, openID string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockRecipeRepository struct {
	CountFunc func(ctx context.Context) (int64, error)
}

func (m *mockRecipeRepository) Save(ctx context.Context, rec *recipe.Recipe) error { return nil }

func (m *mockRecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error { return nil }

func (m *mockRecipeRepository) Delete(ctx context.Context, recipeID uint) error { return nil }

func (m *mockRecipeRepository) GetByID(ctx context.Context, recipeID uint) (*recipe.Recipe, error) {
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

func (m *mockRecipeRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockTicketRepository struct {
	ListFunc func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.SupportTicket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.SupportTicket) error { return nil }

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.SupportTicket) error { return nil }

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.SupportTicket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.SupportTicket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockAuditLogRepository struct {
	ListFunc func(ctx context.Context, page, pageSize int) ([]*audit.LogEntry, int64, error)
}

func (m *mockAuditLogRepository) Save(ctx context.Context, entry *audit.LogEntry) error { return nil }

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

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
