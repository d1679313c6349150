package ticket

import "context"

type TicketRepository interface {
	Save(ctx context.Context, ticket *SupportTicket) error
	Update(ctx context.Context, ticket *SupportTicket) error
	GetByID(ctx context.Context, ticketID uint) (*SupportTicket, error)
	List(ctx context.Context, filter TicketFilter) ([]*SupportTicket, int64, error)
}

type TicketFilter struct {
	UserID   *uint
	Status   *Status
	Priority *Priority
	Page     int
	PageSize int
}
