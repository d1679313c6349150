package usecases

import (
	"context"

	"sips/internal/domain/ticket"
	"sips/internal/shared/authorization"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID      uint
	RequesterID   uint
	RequesterRole authorization.UserRole
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*ticket.SupportTicket, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	// Tickets are private; return not found rather than revealing they exist.
	if !authorization.CanAccessResourceByOwnerID(query.RequesterID, query.RequesterRole, t.GetOwnerID()) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return t, nil
}
