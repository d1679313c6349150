package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sips/internal/domain/audit"
	"sips/internal/infrastructure/persistence/mappers"
	"sips/internal/infrastructure/persistence/models"
	"sips/internal/shared/db"
)

type AuditLogRepository struct {
	db     *gorm.DB
	mapper mappers.AuditMapper
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{
		db:     db,
		mapper: mappers.NewAuditMapper(),
	}
}

func (r *AuditLogRepository) Save(ctx context.Context, entry *audit.LogEntry) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save audit log: %w", err)
	}

	return nil
}

func (r *AuditLogRepository) List(ctx context.Context, page, pageSize int) ([]*audit.LogEntry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AuditLogModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	query = query.Order("created_at DESC, id DESC")
	if pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	var logModels []models.AuditLogModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}

	entries := make([]*audit.LogEntry, len(logModels))
	for i, model := range logModels {
		e, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		entries[i] = e
	}

	return entries, total, nil
}
