package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sips/internal/domain/engagement"
	"sips/internal/infrastructure/persistence/mappers"
	"sips/internal/infrastructure/persistence/models"
	"sips/internal/shared/db"
	apperrors "sips/internal/shared/errors"
)

// FavoriteRepository stores favorites and keeps the recipe save counter in
// step, with the decrement clamped at zero.
type FavoriteRepository struct {
	db     *gorm.DB
	mapper mappers.EngagementMapper
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{
		db:     db,
		mapper: mappers.NewEngagementMapper(),
	}
}

func (r *FavoriteRepository) GetByUserAndRecipe(ctx context.Context, userID, recipeID uint) (*engagement.Favorite, error) {
	var model models.FavoriteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("favorite not found")
		}
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}

	return r.mapper.FavoriteToDomain(&model)
}

func (r *FavoriteRepository) Insert(ctx context.Context, favorite *engagement.Favorite) error {
	model := r.mapper.FavoriteToModel(favorite)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}

	result := tx.
		Model(&models.RecipeModel{}).
		Where("id = ?", favorite.RecipeID()).
		UpdateColumn("save_count", gorm.Expr("save_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment save count: %w", result.Error)
	}

	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, favorite *engagement.Favorite) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.FavoriteModel{}, favorite.ID())
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("favorite not found")
	}

	result = tx.
		Model(&models.RecipeModel{}).
		Where("id = ? AND save_count > 0", favorite.RecipeID()).
		UpdateColumn("save_count", gorm.Expr("save_count - 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to decrement save count: %w", result.Error)
	}

	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]uint, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.FavoriteModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count favorites: %w", err)
	}

	query = query.Order("created_at DESC")
	if pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	var recipeIDs []uint
	if err := query.Pluck("recipe_id", &recipeIDs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list favorites: %w", err)
	}

	return recipeIDs, total, nil
}
