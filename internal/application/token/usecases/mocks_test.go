package usecases

import (
	"context"

	"sips/internal/domain/audit"
	"sips/internal/domain/ledger"
	"sips/internal/domain/user"
	"sips/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	UpdateFunc      func(ctx context.Context, u *user.User) error
	GetByIDFunc     func(ctx context.Context, userID uint) (*user.User, error)
	GetByOpenIDFunc func(ctx context.Context, openID string) (*user.User, error)
	ListFunc        func(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error)
	CountFunc       func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByOpenID(ctx context.Context, openID string) (*user.User, error) {
	if m.GetByOpenIDFunc != nil {
		return m.GetByOpenIDFunc(ctx, openID)
	}
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

type mockLedgerRepository struct {
	CreditFunc     func(ctx context.Context, tx *ledger.Transaction) error
	DebitFunc      func(ctx context.Context, tx *ledger.Transaction) error
	ListByUserFunc func(ctx context.Context, userID uint, limit int) ([]*ledger.Transaction, error)
	SumByUserFunc  func(ctx context.Context, userID uint) (int, error)
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
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockLedgerRepository) SumByUser(ctx context.Context, userID uint) (int, error) {
	if m.SumByUserFunc != nil {
		return m.SumByUserFunc(ctx, userID)
	}
	return 0, nil
}

type mockAuditLogRepository struct {
	SaveFunc func(ctx context.Context, entry *audit.LogEntry) error
}

func (m *mockAuditLogRepository) Save(ctx context.Context, entry *audit.LogEntry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return nil
}

func (m *mockAuditLogRepository) List(ctx context.Context, page, pageSize int) ([]*audit.LogEntry, int64, error) {
	return nil, 0, nil
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
