package usecases

import (
	"context"

	"sips/internal/domain/ticket"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

// EmailSender notifies ticket owners when an admin responds.
type EmailSender interface {
	SendTicketResponseEmail(to, subject, response string) error
}

type CreateTicketCommand struct {
	UserID   uint
	Subject  string
	Message  string
	Priority string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*ticket.SupportTicket, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	t, err := ticket.NewSupportTicket(cmd.UserID, cmd.Subject, cmd.Message, ticket.Priority(cmd.Priority))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("support ticket created", "ticket_id", t.ID(), "user_id", cmd.UserID, "priority", t.Priority())

	return t, nil
}
