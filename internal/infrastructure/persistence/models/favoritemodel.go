package models

// FavoriteModel is the GORM persistence model for recipe favorites. The
// composite unique index guarantees at most one favorite per user per recipe.
type FavoriteModel struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    uint  `gorm:"uniqueIndex:idx_favorites_user_recipe;not null"`
	RecipeID  uint  `gorm:"uniqueIndex:idx_favorites_user_recipe;index;not null"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

// TableName specifies the table name for FavoriteModel.
func (FavoriteModel) TableName() string {
	return "favorites"
}
