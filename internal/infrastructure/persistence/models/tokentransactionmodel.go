package models

// TokenTransactionModel is the GORM persistence model for the append-only
// token ledger. Rows are never updated or deleted.
type TokenTransactionModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	Amount      int    `gorm:"not null"`
	Type        string `gorm:"size:20;not null"`
	Description string `gorm:"size:500"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;index;not null"`
}

// TableName specifies the table name for TokenTransactionModel.
func (TokenTransactionModel) TableName() string {
	return "token_transactions"
}
