package usecases

import (
	"context"

	"sips/internal/domain/ticket"
	"sips/internal/shared/authorization"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

type ListTicketsQuery struct {
	RequesterID   uint
	RequesterRole authorization.UserRole
	Status        string
	Priority      string
	Page          int
	PageSize      int
}

type ListTicketsResult struct {
	Tickets  []*ticket.SupportTicket
	Total    int64
	Page     int
	PageSize int
}

// ListTicketsUseCase returns the requester's own tickets; admins see every
// ticket and can filter by status and priority.
type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.RequesterID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.TicketFilter{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if !query.RequesterRole.IsAdmin() {
		requesterID := query.RequesterID
		filter.UserID = &requesterID
	}

	if query.Status != "" {
		status := ticket.Status(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status: " + query.Status)
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority := ticket.Priority(query.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError("invalid priority: " + query.Priority)
		}
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets:  tickets,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
