package recipe

import "context"

type RecipeRepository interface {
	Save(ctx context.Context, recipe *Recipe) error
	Update(ctx context.Context, recipe *Recipe) error
	Delete(ctx context.Context, recipeID uint) error
	GetByID(ctx context.Context, recipeID uint) (*Recipe, error)
	List(ctx context.Context, filter RecipeFilter) ([]*Recipe, int64, error)
	ListCategories(ctx context.Context) ([]CategoryCount, error)
	ListTrending(ctx context.Context, limit int) ([]*Recipe, error)
	IncrementViewCount(ctx context.Context, recipeID uint) error
	Count(ctx context.Context) (int64, error)
}

type RecipeFilter struct {
	Category       string
	Search         string
	UserID         *uint
	OnlyPublic     bool
	IncludePrivate bool
	SortBy         string
	Page           int
	PageSize       int
}

// CategoryCount is one row of the category listing with its recipe count.
type CategoryCount struct {
	Category string
	Count    int64
}
