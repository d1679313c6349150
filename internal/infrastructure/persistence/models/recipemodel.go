package models

// RecipeModel is the GORM persistence model for recipes. Denormalized vote,
// view and save counters live directly on the row and are maintained with
// atomic UPDATE expressions by the repositories.
type RecipeModel struct {
	ID              uint     `gorm:"primaryKey"`
	UserID          uint     `gorm:"index;not null"`
	Name            string   `gorm:"size:500;not null"`
	Description     string   `gorm:"type:text"`
	Category        string   `gorm:"size:100;index;not null"`
	ImageURL        string   `gorm:"size:2048"`
	Images          string   `gorm:"type:json"`
	Instructions    string   `gorm:"type:text"`
	Ingredients     string   `gorm:"type:json"`
	Tags            string   `gorm:"type:json"`
	BasePrice       *float64
	Calories        *int
	CaffeineMg      *int
	SugarG          *float64
	ProteinG        *float64
	FatG            *float64
	CarbsG          *float64
	IsPublic        bool     `gorm:"index;not null;default:true"`
	IsVerified      bool     `gorm:"not null;default:false"`
	IsTrending      bool     `gorm:"index;not null;default:false"`
	DifficultyLevel int      `gorm:"not null;default:1"`
	PrepTimeMinutes int      `gorm:"not null;default:5"`
	Source          string   `gorm:"size:32"`
	OriginalURL     string   `gorm:"size:2048"`
	BaristaSteps    string   `gorm:"type:json"`
	DietaryFlags    string   `gorm:"type:json"`
	Allergens       string   `gorm:"type:json"`
	Season          string   `gorm:"size:50"`
	Upvotes         int      `gorm:"not null;default:0"`
	Downvotes       int      `gorm:"not null;default:0"`
	ViewCount       int      `gorm:"not null;default:0"`
	SaveCount       int      `gorm:"not null;default:0"`
	CreatedAt       int64    `gorm:"autoCreateTime:milli;index;not null"`
	UpdatedAt       int64    `gorm:"autoUpdateTime:milli;not null"`
}

// TableName specifies the table name for RecipeModel.
func (RecipeModel) TableName() string {
	return "recipes"
}

// Note: No foreign key constraints or associations. All relationships are
// managed by application business logic.
