package ledger

import "context"

// LedgerRepository appends transactions and adjusts the denormalized token
// balance on the user row. Both writes happen atomically: Debit fails with
// an insufficient balance error instead of ever letting the balance go
// negative.
type LedgerRepository interface {
	// Credit adds tokens to the user's balance and records the entry.
	Credit(ctx context.Context, tx *Transaction) error
	// Debit removes tokens if and only if the balance covers the amount,
	// and records the entry.
	Debit(ctx context.Context, tx *Transaction) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]*Transaction, error)
	SumByUser(ctx context.Context, userID uint) (int, error)
}
