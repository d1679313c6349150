// Package ledger models the append-only token transaction log. A user's
// balance always equals the sum of their transaction amounts.
package ledger

import (
	"fmt"
	"time"
)

type TransactionType string

const (
	TypePurchase TransactionType = "purchase"
	TypeUsage    TransactionType = "usage"
	TypeBonus    TransactionType = "bonus"
	TypeRefund   TransactionType = "refund"
)

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) IsValid() bool {
	switch t {
	case TypePurchase, TypeUsage, TypeBonus, TypeRefund:
		return true
	}
	return false
}

// IsCredit reports whether transactions of this type add tokens.
func (t TransactionType) IsCredit() bool {
	return t == TypePurchase || t == TypeBonus || t == TypeRefund
}

type Transaction struct {
	id          uint
	userID      uint
	amount      int
	txType      TransactionType
	description string
	createdAt   time.Time
}

// NewTransaction builds a ledger entry. Credits carry positive amounts,
// usage entries negative ones; a zero amount is rejected.
func NewTransaction(userID uint, amount int, txType TransactionType, description string) (*Transaction, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if amount == 0 {
		return nil, fmt.Errorf("amount cannot be zero")
	}
	if !txType.IsValid() {
		return nil, fmt.Errorf("invalid transaction type: %s", txType)
	}
	if txType.IsCredit() && amount < 0 {
		return nil, fmt.Errorf("%s transactions must have a positive amount", txType)
	}
	if txType == TypeUsage && amount > 0 {
		return nil, fmt.Errorf("usage transactions must have a negative amount")
	}

	return &Transaction{
		userID:      userID,
		amount:      amount,
		txType:      txType,
		description: description,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructTransaction(id, userID uint, amount int, txType TransactionType, description string, createdAt time.Time) (*Transaction, error) {
	if id == 0 {
		return nil, fmt.Errorf("transaction ID cannot be zero")
	}
	if !txType.IsValid() {
		return nil, fmt.Errorf("invalid transaction type: %s", txType)
	}

	return &Transaction{
		id:          id,
		userID:      userID,
		amount:      amount,
		txType:      txType,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (t *Transaction) ID() uint { return t.id }

func (t *Transaction) UserID() uint { return t.userID }

func (t *Transaction) Amount() int { return t.amount }

func (t *Transaction) Type() TransactionType { return t.txType }

func (t *Transaction) Description() string { return t.description }

func (t *Transaction) CreatedAt() time.Time { return t.createdAt }
