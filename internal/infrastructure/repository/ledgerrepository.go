package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sips/internal/domain/ledger"
	"sips/internal/infrastructure/persistence/mappers"
	"sips/internal/infrastructure/persistence/models"
	"sips/internal/shared/db"
	apperrors "sips/internal/shared/errors"
)

// LedgerRepository appends token transactions and maintains the denormalized
// balance on the user row. The debit path uses a conditional UPDATE so the
// balance can never go negative, even under concurrent spends.
type LedgerRepository struct {
	db     *gorm.DB
	mapper mappers.TransactionMapper
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{
		db:     db,
		mapper: mappers.NewTransactionMapper(),
	}
}

func (r *LedgerRepository) Credit(ctx context.Context, t *ledger.Transaction) error {
	if t.Amount() <= 0 {
		return apperrors.NewValidationError("credit amount must be positive")
	}

	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", t.UserID()).
		UpdateColumn("tokens", gorm.Expr("tokens + ?", t.Amount()))
	if result.Error != nil {
		return fmt.Errorf("failed to credit tokens: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}

	return r.appendEntry(tx, t)
}

func (r *LedgerRepository) Debit(ctx context.Context, t *ledger.Transaction) error {
	if t.Amount() >= 0 {
		return apperrors.NewValidationError("debit amount must be negative")
	}

	tx := db.GetTxFromContext(ctx, r.db)
	cost := -t.Amount()

	// The balance guard lives in the WHERE clause: if the row no longer
	// covers the cost the update touches nothing and the debit is refused.
	result := tx.
		Model(&models.UserModel{}).
		Where("id = ? AND tokens >= ?", t.UserID(), cost).
		UpdateColumn("tokens", gorm.Expr("tokens - ?", cost))
	if result.Error != nil {
		return fmt.Errorf("failed to debit tokens: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewInsufficientBalanceError("insufficient token balance")
	}

	return r.appendEntry(tx, t)
}

func (r *LedgerRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*ledger.Transaction, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var txModels []models.TokenTransactionModel
	if err := query.Find(&txModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]*ledger.Transaction, len(txModels))
	for i, model := range txModels {
		entry, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		transactions[i] = entry
	}

	return transactions, nil
}

func (r *LedgerRepository) SumByUser(ctx context.Context, userID uint) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var sum int
	err := tx.
		Model(&models.TokenTransactionModel{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return sum, nil
}

func (r *LedgerRepository) appendEntry(tx *gorm.DB, t *ledger.Transaction) error {
	model := r.mapper.ToModel(t)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}
