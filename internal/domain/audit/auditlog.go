// Package audit records administrative and billing actions for later review.
package audit

import (
	"context"
	"fmt"
	"time"
)

type LogEntry struct {
	id        uint
	userID    *uint
	action    string
	tableName string
	recordID  *uint
	details   map[string]interface{}
	createdAt time.Time
}

func NewLogEntry(userID *uint, action, tableName string, recordID *uint, details map[string]interface{}) (*LogEntry, error) {
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}
	if details == nil {
		details = make(map[string]interface{})
	}

	return &LogEntry{
		userID:    userID,
		action:    action,
		tableName: tableName,
		recordID:  recordID,
		details:   details,
		createdAt: time.Now(),
	}, nil
}

func ReconstructLogEntry(id uint, userID *uint, action, tableName string, recordID *uint, details map[string]interface{}, createdAt time.Time) (*LogEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("log entry ID cannot be zero")
	}
	if details == nil {
		details = make(map[string]interface{})
	}

	return &LogEntry{
		id:        id,
		userID:    userID,
		action:    action,
		tableName: tableName,
		recordID:  recordID,
		details:   details,
		createdAt: createdAt,
	}, nil
}

func (l *LogEntry) ID() uint { return l.id }

func (l *LogEntry) UserID() *uint { return l.userID }

func (l *LogEntry) Action() string { return l.action }

func (l *LogEntry) TableName() string { return l.tableName }

func (l *LogEntry) RecordID() *uint { return l.recordID }

func (l *LogEntry) CreatedAt() time.Time { return l.createdAt }

func (l *LogEntry) Details() map[string]interface{} {
	detailsCopy := make(map[string]interface{}, len(l.details))
	for k, v := range l.details {
		detailsCopy[k] = v
	}
	return detailsCopy
}

type AuditLogRepository interface {
	Save(ctx context.Context, entry *LogEntry) error
	List(ctx context.Context, page, pageSize int) ([]*LogEntry, int64, error)
}
