package billing

import (
	"context"
	"fmt"
	"time"
)

// WebhookEvent is a processed payment provider notification. Event ids are
// unique, so replays and provider retries hit the dedup ledger and are
// skipped instead of granting tokens twice.
type WebhookEvent struct {
	id          uint
	eventID     string
	eventType   string
	processedAt time.Time
}

func NewWebhookEvent(eventID, eventType string) (*WebhookEvent, error) {
	if len(eventID) == 0 {
		return nil, fmt.Errorf("event ID is required")
	}
	if len(eventType) == 0 {
		return nil, fmt.Errorf("event type is required")
	}

	return &WebhookEvent{
		eventID:     eventID,
		eventType:   eventType,
		processedAt: time.Now(),
	}, nil
}

func ReconstructWebhookEvent(id uint, eventID, eventType string, processedAt time.Time) (*WebhookEvent, error) {
	if id == 0 {
		return nil, fmt.Errorf("webhook event ID cannot be zero")
	}

	return &WebhookEvent{
		id:          id,
		eventID:     eventID,
		eventType:   eventType,
		processedAt: processedAt,
	}, nil
}

func (e *WebhookEvent) ID() uint { return e.id }

func (e *WebhookEvent) EventID() string { return e.eventID }

func (e *WebhookEvent) EventType() string { return e.eventType }

func (e *WebhookEvent) ProcessedAt() time.Time { return e.processedAt }

// WebhookEventRepository is the dedup ledger. Record returns a duplicate
// error when the event id was already processed.
type WebhookEventRepository interface {
	Record(ctx context.Context, event *WebhookEvent) error
}
