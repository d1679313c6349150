package models

import "gorm.io/datatypes"

// AuditLogModel is the GORM persistence model for audit log entries.
type AuditLogModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    *uint  `gorm:"index"`
	Action    string `gorm:"size:100;index;not null"`
	Table     string `gorm:"column:table_name;size:100"`
	RecordID  *uint
	Details   datatypes.JSON `gorm:"type:json"`
	CreatedAt int64          `gorm:"autoCreateTime:milli;index;not null"`
}

// TableName specifies the table name for AuditLogModel.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
