package models

// WebhookEventModel is the GORM persistence model for processed payment
// provider events. The unique event id index is what makes webhook
// processing idempotent.
type WebhookEventModel struct {
	ID          uint   `gorm:"primaryKey"`
	EventID     string `gorm:"uniqueIndex;size:255;not null"`
	EventType   string `gorm:"size:100;not null"`
	ProcessedAt int64  `gorm:"not null"`
}

// TableName specifies the table name for WebhookEventModel.
func (WebhookEventModel) TableName() string {
	return "webhook_events"
}
