package usecases

import (
	"context"

	"sips/internal/domain/ticket"
	"sips/internal/domain/user"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type RespondTicketCommand struct {
	AdminID  uint
	TicketID uint
	Response string
}

// RespondTicketUseCase records an admin response on a ticket and emails the
// ticket owner. Email delivery is best effort; a failed send never rolls back
// the response.
type RespondTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	userRepo    user.UserRepository
	emailSender EmailSender
	logger      logger.Interface
}

func NewRespondTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	emailSender EmailSender,
	logger logger.Interface,
) *RespondTicketUseCase {
	return &RespondTicketUseCase{
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		emailSender: emailSender,
		logger:      logger,
	}
}

func (uc *RespondTicketUseCase) Execute(ctx context.Context, cmd RespondTicketCommand) (*ticket.SupportTicket, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Response == "" {
		return nil, errors.NewValidationError("response is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.Respond(cmd.Response); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.notifyOwner(ctx, t)

	uc.logger.Infow("ticket responded", "ticket_id", t.ID(), "admin_id", cmd.AdminID, "status", t.Status())

	return t, nil
}

func (uc *RespondTicketUseCase) notifyOwner(ctx context.Context, t *ticket.SupportTicket) {
	owner, err := uc.userRepo.GetByID(ctx, t.UserID())
	if err != nil {
		uc.logger.Warnw("cannot load ticket owner for notification", "ticket_id", t.ID(), "error", err)
		return
	}
	if owner.Email() == "" {
		return
	}

	response := ""
	if t.AdminResponse() != nil {
		response = *t.AdminResponse()
	}

	if err := uc.emailSender.SendTicketResponseEmail(owner.Email(), t.Subject(), response); err != nil {
		uc.logger.Warnw("failed to send ticket response email", "ticket_id", t.ID(), "error", err)
	}
}
