package dto

import (
	"time"

	"sips/internal/domain/ticket"
)

type CreateTicketRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Priority string `json:"priority"`
}

type RespondTicketRequest struct {
	Response string `json:"response" binding:"required"`
}

type UpdateTicketRequest struct {
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

type TicketResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	Subject       string    `json:"subject"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	AdminResponse *string   `json:"admin_response,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewTicketResponse(t *ticket.SupportTicket) TicketResponse {
	return TicketResponse{
		ID:            t.ID(),
		UserID:        t.UserID(),
		Subject:       t.Subject(),
		Message:       t.Message(),
		Status:        string(t.Status()),
		Priority:      string(t.Priority()),
		AdminResponse: t.AdminResponse(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}

func NewTicketListResponse(tickets []*ticket.SupportTicket) []TicketResponse {
	result := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, NewTicketResponse(t))
	}
	return result
}
