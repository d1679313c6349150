package models

// VoteModel is the GORM persistence model for recipe votes. The composite
// unique index guarantees at most one vote per user per recipe.
type VoteModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex:idx_votes_user_recipe;not null"`
	RecipeID  uint   `gorm:"uniqueIndex:idx_votes_user_recipe;index;not null"`
	VoteType  string `gorm:"size:10;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

// TableName specifies the table name for VoteModel.
func (VoteModel) TableName() string {
	return "votes"
}
