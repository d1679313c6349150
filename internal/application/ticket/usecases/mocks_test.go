package usecases

import (
	"context"

	"sips/internal/domain/ticket"
	"sips/internal/domain/user"
	"sips/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc    func(ctx context.Context, t *ticket.SupportTicket) error
	UpdateFunc  func(ctx context.Context, t *ticket.SupportTicket) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.SupportTicket, error)
	ListFunc    func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.SupportTicket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.SupportTicket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.SupportTicket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.SupportTicket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.SupportTicket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
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

type mockEmailSender struct {
	SendTicketResponseEmailFunc func(to, subject, response string) error
}

func (m *mockEmailSender) SendTicketResponseEmail(to, subject, response string) error {
	if m.SendTicketResponseEmailFunc != nil {
		return m.SendTicketResponseEmailFunc(to, subject, response)
	}
	return nil
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
