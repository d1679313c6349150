package dto

import (
	"time"

	"sips/internal/domain/audit"
)

type StatsResponse struct {
	TotalUsers   int64 `json:"total_users"`
	TotalRecipes int64 `json:"total_recipes"`
	OpenTickets  int64 `json:"open_tickets"`
}

type AuditLogResponse struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id,omitempty"`
	Action    string    `json:"action"`
	TableName string    `json:"table_name"`
	RecordID  *uint     `json:"record_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAuditLogListResponse(entries []*audit.LogEntry) []AuditLogResponse {
	result := make([]AuditLogResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, AuditLogResponse{
			ID:        entry.ID(),
			UserID:    entry.UserID(),
			Action:    entry.Action(),
			TableName: entry.TableName(),
			RecordID:  entry.RecordID(),
			CreatedAt: entry.CreatedAt(),
		})
	}
	return result
}
