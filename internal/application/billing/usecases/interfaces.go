package usecases

import (
	"context"

	infrabilling "sips/internal/infrastructure/billing"
)

// PaymentClient is the slice of the payment provider client the billing use
// cases need.
type PaymentClient interface {
	CreateCheckoutSession(ctx context.Context, params infrabilling.CheckoutParams) (*infrabilling.CheckoutSession, error)
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
