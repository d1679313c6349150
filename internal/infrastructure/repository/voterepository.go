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

// VoteRepository stores votes and keeps the denormalized recipe counters in
// step. All counter writes are single UPDATE expressions, decrements are
// clamped so a counter never drops below zero.
type VoteRepository struct {
	db     *gorm.DB
	mapper mappers.EngagementMapper
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{
		db:     db,
		mapper: mappers.NewEngagementMapper(),
	}
}

func (r *VoteRepository) GetByUserAndRecipe(ctx context.Context, userID, recipeID uint) (*engagement.Vote, error) {
	var model models.VoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("vote not found")
		}
		return nil, fmt.Errorf("failed to find vote: %w", err)
	}

	return r.mapper.VoteToDomain(&model)
}

func (r *VoteRepository) Insert(ctx context.Context, vote *engagement.Vote) error {
	model := r.mapper.VoteToModel(vote)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}

	if err := r.adjustCounter(tx, vote.RecipeID(), vote.Type(), +1); err != nil {
		return err
	}

	return nil
}

func (r *VoteRepository) Switch(ctx context.Context, vote *engagement.Vote, newType engagement.VoteType) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.VoteModel{}).
		Where("id = ?", vote.ID()).
		UpdateColumn("vote_type", newType.String())
	if result.Error != nil {
		return fmt.Errorf("failed to switch vote: %w", result.Error)
	}

	if err := r.adjustCounter(tx, vote.RecipeID(), vote.Type(), -1); err != nil {
		return err
	}
	if err := r.adjustCounter(tx, vote.RecipeID(), newType, +1); err != nil {
		return err
	}

	return nil
}

func (r *VoteRepository) Remove(ctx context.Context, vote *engagement.Vote) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.VoteModel{}, vote.ID())
	if result.Error != nil {
		return fmt.Errorf("failed to delete vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("vote not found")
	}

	return r.adjustCounter(tx, vote.RecipeID(), vote.Type(), -1)
}

func (r *VoteRepository) adjustCounter(tx *gorm.DB, recipeID uint, voteType engagement.VoteType, delta int) error {
	column := "upvotes"
	if voteType == engagement.VoteDown {
		column = "downvotes"
	}

	query := tx.
		Model(&models.RecipeModel{}).
		Where("id = ?", recipeID)
	if delta < 0 {
		// Clamp: never decrement past zero.
		query = query.Where(column+" > 0")
	}

	result := query.UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust %s counter: %w", column, result.Error)
	}

	return nil
}
