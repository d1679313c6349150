package mappers

import (
	"sips/internal/domain/ledger"
	"sips/internal/infrastructure/persistence/models"
)

// TransactionMapper handles the conversion between token transaction domain
// entities and persistence models.
type TransactionMapper interface {
	// ToModel converts a transaction domain entity to a persistence model.
	ToModel(t *ledger.Transaction) *models.TokenTransactionModel

	// ToDomain converts a transaction persistence model to a domain entity.
	ToDomain(model *models.TokenTransactionModel) (*ledger.Transaction, error)
}

// TransactionMapperImpl is the concrete implementation of TransactionMapper.
type TransactionMapperImpl struct{}

// NewTransactionMapper creates a new TransactionMapper.
func NewTransactionMapper() TransactionMapper {
	return &TransactionMapperImpl{}
}

// ToModel converts a transaction domain entity to a persistence model.
func (m *TransactionMapperImpl) ToModel(t *ledger.Transaction) *models.TokenTransactionModel {
	return &models.TokenTransactionModel{
		ID:          t.ID(),
		UserID:      t.UserID(),
		Amount:      t.Amount(),
		Type:        t.Type().String(),
		Description: t.Description(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
	}
}

// ToDomain converts a transaction persistence model to a domain entity.
func (m *TransactionMapperImpl) ToDomain(model *models.TokenTransactionModel) (*ledger.Transaction, error) {
	return ledger.ReconstructTransaction(
		model.ID,
		model.UserID,
		model.Amount,
		ledger.TransactionType(model.Type),
		model.Description,
		convertMillisToTime(model.CreatedAt),
	)
}
