package recipe

import (
	"fmt"
	"time"
)

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit,omitempty"`
}

// Nutrition groups the per-serving nutrition estimates.
type Nutrition struct {
	Calories   *int
	CaffeineMg *int
	SugarG     *float64
	ProteinG   *float64
	FatG       *float64
	CarbsG     *float64
}

type Recipe struct {
	id              uint
	userID          uint
	name            string
	description     string
	category        string
	imageURL        string
	images          []string
	instructions    string
	ingredients     []Ingredient
	tags            []string
	basePrice       *float64
	nutrition       Nutrition
	isPublic        bool
	isVerified      bool
	isTrending      bool
	difficultyLevel int
	prepTimeMinutes int
	source          string
	originalURL     string
	baristaSteps    []string
	dietaryFlags    []string
	allergens       []string
	season          string
	upvotes         int
	downvotes       int
	viewCount       int
	saveCount       int
	createdAt       time.Time
	updatedAt       time.Time
}

const DefaultCategory = "Viral Today"

func NewRecipe(userID uint, name, description, category, instructions string, ingredients []Ingredient) (*Recipe, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 500 {
		return nil, fmt.Errorf("name exceeds maximum length of 500 characters")
	}

	if category == "" {
		category = DefaultCategory
	}
	if ingredients == nil {
		ingredients = []Ingredient{}
	}

	now := time.Now()

	return &Recipe{
		userID:          userID,
		name:            name,
		description:     description,
		category:        category,
		instructions:    instructions,
		ingredients:     ingredients,
		tags:            []string{},
		images:          []string{},
		baristaSteps:    []string{},
		dietaryFlags:    []string{},
		allergens:       []string{},
		isPublic:        true,
		difficultyLevel: 1,
		prepTimeMinutes: 5,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

type ReconstructParams struct {
	ID              uint
	UserID          uint
	Name            string
	Description     string
	Category        string
	ImageURL        string
	Images          []string
	Instructions    string
	Ingredients     []Ingredient
	Tags            []string
	BasePrice       *float64
	Nutrition       Nutrition
	IsPublic        bool
	IsVerified      bool
	IsTrending      bool
	DifficultyLevel int
	PrepTimeMinutes int
	Source          string
	OriginalURL     string
	BaristaSteps    []string
	DietaryFlags    []string
	Allergens       []string
	Season          string
	Upvotes         int
	Downvotes       int
	ViewCount       int
	SaveCount       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructRecipe(p ReconstructParams) (*Recipe, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("recipe ID cannot be zero")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(p.Name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	if p.Ingredients == nil {
		p.Ingredients = []Ingredient{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.BaristaSteps == nil {
		p.BaristaSteps = []string{}
	}
	if p.DietaryFlags == nil {
		p.DietaryFlags = []string{}
	}
	if p.Allergens == nil {
		p.Allergens = []string{}
	}

	return &Recipe{
		id:              p.ID,
		userID:          p.UserID,
		name:            p.Name,
		description:     p.Description,
		category:        p.Category,
		imageURL:        p.ImageURL,
		images:          p.Images,
		instructions:    p.Instructions,
		ingredients:     p.Ingredients,
		tags:            p.Tags,
		basePrice:       p.BasePrice,
		nutrition:       p.Nutrition,
		isPublic:        p.IsPublic,
		isVerified:      p.IsVerified,
		isTrending:      p.IsTrending,
		difficultyLevel: p.DifficultyLevel,
		prepTimeMinutes: p.PrepTimeMinutes,
		source:          p.Source,
		originalURL:     p.OriginalURL,
		baristaSteps:    p.BaristaSteps,
		dietaryFlags:    p.DietaryFlags,
		allergens:       p.Allergens,
		season:          p.Season,
		upvotes:         p.Upvotes,
		downvotes:       p.Downvotes,
		viewCount:       p.ViewCount,
		saveCount:       p.SaveCount,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

func (r *Recipe) ID() uint { return r.id }

func (r *Recipe) UserID() uint { return r.userID }

func (r *Recipe) Name() string { return r.name }

func (r *Recipe) Description() string { return r.description }

func (r *Recipe) Category() string { return r.category }

func (r *Recipe) ImageURL() string { return r.imageURL }

func (r *Recipe) Instructions() string { return r.instructions }

func (r *Recipe) BasePrice() *float64 { return r.basePrice }

func (r *Recipe) GetNutrition() Nutrition { return r.nutrition }

func (r *Recipe) IsPublic() bool { return r.isPublic }

func (r *Recipe) IsVerified() bool { return r.isVerified }

func (r *Recipe) IsTrending() bool { return r.isTrending }

func (r *Recipe) DifficultyLevel() int { return r.difficultyLevel }

func (r *Recipe) PrepTimeMinutes() int { return r.prepTimeMinutes }

func (r *Recipe) Source() string { return r.source }

func (r *Recipe) OriginalURL() string { return r.originalURL }

func (r *Recipe) Season() string { return r.season }

func (r *Recipe) Upvotes() int { return r.upvotes }

func (r *Recipe) Downvotes() int { return r.downvotes }

func (r *Recipe) ViewCount() int { return r.viewCount }

func (r *Recipe) SaveCount() int { return r.saveCount }

func (r *Recipe) CreatedAt() time.Time { return r.createdAt }

func (r *Recipe) UpdatedAt() time.Time { return r.updatedAt }

func (r *Recipe) Ingredients() []Ingredient {
	ingredientsCopy := make([]Ingredient, len(r.ingredients))
	copy(ingredientsCopy, r.ingredients)
	return ingredientsCopy
}

func (r *Recipe) Tags() []string {
	tagsCopy := make([]string, len(r.tags))
	copy(tagsCopy, r.tags)
	return tagsCopy
}

func (r *Recipe) Images() []string {
	imagesCopy := make([]string, len(r.images))
	copy(imagesCopy, r.images)
	return imagesCopy
}

func (r *Recipe) BaristaSteps() []string {
	stepsCopy := make([]string, len(r.baristaSteps))
	copy(stepsCopy, r.baristaSteps)
	return stepsCopy
}

func (r *Recipe) DietaryFlags() []string {
	flagsCopy := make([]string, len(r.dietaryFlags))
	copy(flagsCopy, r.dietaryFlags)
	return flagsCopy
}

func (r *Recipe) Allergens() []string {
	allergensCopy := make([]string, len(r.allergens))
	copy(allergensCopy, r.allergens)
	return allergensCopy
}

func (r *Recipe) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("recipe ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("recipe ID cannot be zero")
	}
	r.id = id
	return nil
}

// GetOwnerID satisfies the ownership check used by handlers.
func (r *Recipe) GetOwnerID() uint {
	return r.userID
}

type UpdateParams struct {
	Name         *string
	Description  *string
	Category     *string
	ImageURL     *string
	Instructions *string
	Ingredients  []Ingredient
	Tags         []string
	IsPublic     *bool
}

// Update applies a partial edit from the recipe owner.
func (r *Recipe) Update(p UpdateParams) error {
	if p.Name != nil {
		if len(*p.Name) == 0 {
			return fmt.Errorf("name cannot be empty")
		}
		if len(*p.Name) > 500 {
			return fmt.Errorf("name exceeds maximum length of 500 characters")
		}
		r.name = *p.Name
	}
	if p.Description != nil {
		r.description = *p.Description
	}
	if p.Category != nil && *p.Category != "" {
		r.category = *p.Category
	}
	if p.ImageURL != nil {
		r.imageURL = *p.ImageURL
	}
	if p.Instructions != nil {
		r.instructions = *p.Instructions
	}
	if p.Ingredients != nil {
		r.ingredients = p.Ingredients
	}
	if p.Tags != nil {
		r.tags = p.Tags
	}
	if p.IsPublic != nil {
		r.isPublic = *p.IsPublic
	}

	r.updatedAt = time.Now()
	return nil
}

// SetProvenance records where the recipe came from, e.g. "ai" for generated
// drinks or "import" with the page it was extracted from.
func (r *Recipe) SetProvenance(source, originalURL string) {
	r.source = source
	r.originalURL = originalURL
	r.updatedAt = time.Now()
}

// SetPreparation sets the difficulty rating and estimated prep time.
func (r *Recipe) SetPreparation(difficultyLevel, prepTimeMinutes int) error {
	if difficultyLevel < 0 || difficultyLevel > 5 {
		return fmt.Errorf("difficulty level must be between 0 and 5")
	}
	if prepTimeMinutes < 0 {
		return fmt.Errorf("prep time cannot be negative")
	}
	r.difficultyLevel = difficultyLevel
	r.prepTimeMinutes = prepTimeMinutes
	r.updatedAt = time.Now()
	return nil
}

// SetNutrition stores the per-serving estimates.
func (r *Recipe) SetNutrition(n Nutrition) {
	r.nutrition = n
	r.updatedAt = time.Now()
}

// SetBasePrice stores the estimated price.
func (r *Recipe) SetBasePrice(price float64) {
	r.basePrice = &price
	r.updatedAt = time.Now()
}

// TogglePublic flips the public listing flag.
func (r *Recipe) TogglePublic() {
	r.isPublic = !r.isPublic
	r.updatedAt = time.Now()
}

// ToggleTrending flips the trending flag.
func (r *Recipe) ToggleTrending() {
	r.isTrending = !r.isTrending
	r.updatedAt = time.Now()
}

// MarkVerified marks the recipe as reviewed.
func (r *Recipe) MarkVerified() {
	r.isVerified = true
	r.updatedAt = time.Now()
}

// CanBeViewedBy reports whether a user may see the recipe. Private recipes
// are only visible to their owner and admins.
func (r *Recipe) CanBeViewedBy(userID uint, isAdmin bool) bool {
	if r.isPublic {
		return true
	}
	return isAdmin || r.userID == userID
}
