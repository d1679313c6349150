package usecases

import "context"

// TransactionManager runs a function inside a database transaction. The vote
// row and the denormalized recipe counters must move together.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
