package models

// UserModel is the GORM persistence model for users.
type UserModel struct {
	ID                   uint    `gorm:"primaryKey"`
	OpenID               string  `gorm:"uniqueIndex;size:64;not null"`
	Name                 string  `gorm:"size:255"`
	Email                string  `gorm:"size:320;index"`
	LoginMethod          string  `gorm:"size:32"`
	Role                 string  `gorm:"size:20;not null;default:user"`
	Tokens               int     `gorm:"not null;default:0"`
	SubscriptionTier     string  `gorm:"size:20;not null;default:free"`
	StripeCustomerID     *string `gorm:"size:255;index"`
	StripeSubscriptionID *string `gorm:"size:255;index"`
	TasteProfile         string  `gorm:"type:json"`
	DietaryPrefs         string  `gorm:"type:json"`
	AllergyFlags         string  `gorm:"type:json"`
	AccessibilityMode    string  `gorm:"size:32;default:default"`
	CreatedAt            int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt            int64   `gorm:"autoUpdateTime:milli;not null"`
	LastSignedIn         int64   `gorm:"not null"`
}

// TableName specifies the table name for UserModel.
func (UserModel) TableName() string {
	return "users"
}

// Note: No foreign key constraints or associations. All relationships are
// managed by application business logic.
