package usecases

import (
	"context"

	"sips/internal/domain/ticket"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type UpdateTicketStatusCommand struct {
	AdminID  uint
	TicketID uint
	Status   string
	Priority string
}

// UpdateTicketStatusUseCase moves a ticket through its lifecycle and/or
// retriages its priority.
type UpdateTicketStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketStatusUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*ticket.SupportTicket, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Status == "" && cmd.Priority == "" {
		return nil, errors.NewValidationError("nothing to update")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if cmd.Status != "" {
		if err := t.ChangeStatus(ticket.Status(cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != "" {
		if err := t.ChangePriority(ticket.Priority(cmd.Priority)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "admin_id", cmd.AdminID, "status", t.Status(), "priority", t.Priority())

	return t, nil
}
