package mappers

import (
	"sips/internal/domain/ticket"
	"sips/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between SupportTicket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.SupportTicket) *models.SupportTicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.SupportTicketModel) (*ticket.SupportTicket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.SupportTicket) *models.SupportTicketModel {
	return &models.SupportTicketModel{
		ID:            t.ID(),
		UserID:        t.UserID(),
		Subject:       t.Subject(),
		Message:       t.Message(),
		Status:        t.Status().String(),
		Priority:      t.Priority().String(),
		AdminResponse: t.AdminResponse(),
		CreatedAt:     t.CreatedAt().UnixMilli(),
		UpdatedAt:     t.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.SupportTicketModel) (*ticket.SupportTicket, error) {
	return ticket.ReconstructSupportTicket(
		model.ID,
		model.UserID,
		model.Subject,
		model.Message,
		ticket.Status(model.Status),
		ticket.Priority(model.Priority),
		model.AdminResponse,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
