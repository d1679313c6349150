package usecases

import (
	"context"

	"sips/internal/domain/billing"
	"sips/internal/domain/ledger"
	"sips/internal/domain/user"
	infrabilling "sips/internal/infrastructure/billing"
	"sips/internal/shared/logger"
)

type mockPaymentClient struct {
	CreateCheckoutSessionFunc func(ctx context.Context, params infrabilling.CheckoutParams) (*infrabilling.CheckoutSession, error)
}

func (m *mockPaymentClient) CreateCheckoutSession(ctx context.Context, params infrabilling.CheckoutParams) (*infrabilling.CheckoutSession, error) {
	if m.CreateCheckoutSessionFunc != nil {
		return m.CreateCheckoutSessionFunc(ctx, params)
	}
	return &infrabilling.CheckoutSession{ID: "cs_test", URL: "https://checkout.example.com/cs_test"}, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, userID uint) (*user.User, error)
	UpdateFunc  func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error { return nil }

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
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockLedgerRepository struct {
	CreditFunc func(ctx context.Context, tx *ledger.Transaction) error
}

func (m *mockLedgerRepository) Credit(ctx context.Context, tx *ledger.Transaction) error {
	if m.CreditFunc != nil {
		return m.CreditFunc(ctx, tx)
	}
	return nil
}

func (m *mockLedgerRepository) Debit(ctx context.Context, tx *ledger.Transaction) error {
	return nil
}

func (m *mockLedgerRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*ledger.Transaction, error) {
	return nil, nil
}

func (m *mockLedgerRepository) SumByUser(ctx context.Context, userID uint) (int, error) {
	return 0, nil
}

type mockWebhookEventRepository struct {
	RecordFunc func(ctx context.Context, event *billing.WebhookEvent) error
}

func (m *mockWebhookEventRepository) Record(ctx context.Context, event *billing.WebhookEvent) error {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, event)
	}
	return nil
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
