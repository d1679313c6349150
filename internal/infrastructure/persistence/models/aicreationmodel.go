package models

// AICreationModel is the GORM persistence model for AI generation records.
type AICreationModel struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"index;not null"`
	Prompt         string `gorm:"type:text;not null"`
	ResultRecipeID *uint  `gorm:"index"`
	TasteInputs    string `gorm:"type:json"`
	TokensUsed     int    `gorm:"not null;default:0"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
}

// TableName specifies the table name for AICreationModel.
func (AICreationModel) TableName() string {
	return "ai_creations"
}
