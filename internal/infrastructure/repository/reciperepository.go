package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sips/internal/domain/recipe"
	"sips/internal/infrastructure/persistence/mappers"
	"sips/internal/infrastructure/persistence/models"
	"sips/internal/shared/db"
	apperrors "sips/internal/shared/errors"
)

// allowedRecipeOrderBy maps the public sort keys to ORDER BY clauses. Only
// whitelisted keys reach the query, everything else falls back to newest
// first.
var allowedRecipeOrderBy = map[string]string{
	"newest":  "created_at DESC",
	"popular": "upvotes DESC, created_at DESC",
	"views":   "view_count DESC, created_at DESC",
	"saves":   "save_count DESC, created_at DESC",
}

type RecipeRepository struct {
	db     *gorm.DB
	mapper mappers.RecipeMapper
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{
		db:     db,
		mapper: mappers.NewRecipeMapper(),
	}
}

func (r *RecipeRepository) Save(ctx context.Context, rec *recipe.Recipe) error {
	model := r.mapper.ToModel(rec)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}

	if err := rec.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *RecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	model := r.mapper.ToModel(rec)
	tx := db.GetTxFromContext(ctx, r.db)

	// The engagement counters are maintained with atomic UPDATE expressions
	// by the vote and favorite repositories, so a stale in-memory entity
	// must never write them back.
	result := tx.
		Model(&models.RecipeModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "user_id", "upvotes", "downvotes", "view_count", "save_count", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update recipe: %w", result.Error)
	}

	return nil
}

func (r *RecipeRepository) Delete(ctx context.Context, recipeID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.RecipeModel{}, recipeID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("recipe not found")
	}
	return nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, recipeID uint) (*recipe.Recipe, error) {
	var model models.RecipeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, recipeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("recipe not found")
		}
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RecipeRepository) List(ctx context.Context, filter recipe.RecipeFilter) ([]*recipe.Recipe, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RecipeModel{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.OnlyPublic || !filter.IncludePrivate {
		query = query.Where("is_public = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	if order, ok := allowedRecipeOrderBy[filter.SortBy]; ok {
		query = query.Order(order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var recipeModels []models.RecipeModel
	if err := query.Find(&recipeModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]*recipe.Recipe, len(recipeModels))
	for i, model := range recipeModels {
		rec, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		recipes[i] = rec
	}

	return recipes, total, nil
}

func (r *RecipeRepository) ListCategories(ctx context.Context) ([]recipe.CategoryCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var counts []recipe.CategoryCount
	err := tx.
		Model(&models.RecipeModel{}).
		Select("category, COUNT(*) AS count").
		Where("is_public = ?", true).
		Group("category").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return counts, nil
}

func (r *RecipeRepository) ListTrending(ctx context.Context, limit int) ([]*recipe.Recipe, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var recipeModels []models.RecipeModel
	err := tx.
		Where("is_trending = ? AND is_public = ?", true, true).
		Order("upvotes DESC, view_count DESC").
		Limit(limit).
		Find(&recipeModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trending recipes: %w", err)
	}

	recipes := make([]*recipe.Recipe, len(recipeModels))
	for i, model := range recipeModels {
		rec, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		recipes[i] = rec
	}

	return recipes, nil
}

func (r *RecipeRepository) IncrementViewCount(ctx context.Context, recipeID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RecipeModel{}).
		Where("id = ?", recipeID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment view count: %w", result.Error)
	}

	return nil
}

func (r *RecipeRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.RecipeModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return total, nil
}
