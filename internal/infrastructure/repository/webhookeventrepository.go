package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sips/internal/domain/billing"
	"sips/internal/infrastructure/persistence/models"
	"sips/internal/shared/db"
)

// WebhookEventRepository is the dedup ledger for payment provider events.
// The unique index on event_id turns a replayed event into a duplicate key
// error, which callers detect with errors.IsDuplicateError.
type WebhookEventRepository struct {
	db *gorm.DB
}

func NewWebhookEventRepository(db *gorm.DB) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

func (r *WebhookEventRepository) Record(ctx context.Context, event *billing.WebhookEvent) error {
	model := &models.WebhookEventModel{
		EventID:     event.EventID(),
		EventType:   event.EventType(),
		ProcessedAt: event.ProcessedAt().UnixMilli(),
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to record webhook event: %w", err)
	}

	return nil
}
