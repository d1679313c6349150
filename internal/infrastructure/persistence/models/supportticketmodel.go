package models

// SupportTicketModel is the GORM persistence model for support tickets.
type SupportTicketModel struct {
	ID            uint    `gorm:"primaryKey"`
	UserID        uint    `gorm:"index;not null"`
	Subject       string  `gorm:"size:500;not null"`
	Message       string  `gorm:"type:text;not null"`
	Status        string  `gorm:"size:20;index;not null;default:open"`
	Priority      string  `gorm:"size:10;not null;default:medium"`
	AdminResponse *string `gorm:"type:text"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64   `gorm:"autoUpdateTime:milli;not null"`
}

// TableName specifies the table name for SupportTicketModel.
func (SupportTicketModel) TableName() string {
	return "support_tickets"
}
