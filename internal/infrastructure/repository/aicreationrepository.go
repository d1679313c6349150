package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sips/internal/domain/aigen"
	"sips/internal/infrastructure/persistence/mappers"
	"sips/internal/infrastructure/persistence/models"
	"sips/internal/shared/db"
)

type AICreationRepository struct {
	db     *gorm.DB
	mapper mappers.CreationMapper
}

func NewAICreationRepository(db *gorm.DB) *AICreationRepository {
	return &AICreationRepository{
		db:     db,
		mapper: mappers.NewCreationMapper(),
	}
}

func (r *AICreationRepository) Save(ctx context.Context, c *aigen.Creation) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save creation: %w", err)
	}

	return nil
}

func (r *AICreationRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*aigen.Creation, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var creationModels []models.AICreationModel
	if err := query.Find(&creationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list creations: %w", err)
	}

	creations := make([]*aigen.Creation, len(creationModels))
	for i, model := range creationModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		creations[i] = c
	}

	return creations, nil
}
