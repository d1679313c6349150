package usecases

import (
	"context"
	"strconv"

	"sips/internal/domain/billing"
	infrabilling "sips/internal/infrastructure/billing"
	"sips/internal/shared/config"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type CreateCheckoutCommand struct {
	UserID    uint
	ProductID string
}

type CreateCheckoutResult struct {
	SessionID   string
	CheckoutURL string
}

// CreateCheckoutUseCase starts a hosted checkout session for a catalog
// product. The user and product ids travel in the session metadata so the
// webhook can credit the right account.
type CreateCheckoutUseCase struct {
	paymentClient PaymentClient
	stripeCfg     config.StripeConfig
	logger        logger.Interface
}

func NewCreateCheckoutUseCase(
	paymentClient PaymentClient,
	stripeCfg config.StripeConfig,
	logger logger.Interface,
) *CreateCheckoutUseCase {
	return &CreateCheckoutUseCase{
		paymentClient: paymentClient,
		stripeCfg:     stripeCfg,
		logger:        logger,
	}
}

func (uc *CreateCheckoutUseCase) Execute(ctx context.Context, cmd CreateCheckoutCommand) (*CreateCheckoutResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	product, ok := billing.ProductByID(cmd.ProductID)
	if !ok {
		return nil, errors.NewUnknownProductError("unknown product: " + cmd.ProductID)
	}

	mode := infrabilling.ModePayment
	if product.Kind == billing.KindSubscriptionPlan {
		mode = infrabilling.ModeSubscription
	}

	session, err := uc.paymentClient.CreateCheckoutSession(ctx, infrabilling.CheckoutParams{
		Mode:        mode,
		ProductName: product.Name,
		AmountCents: product.AmountCents,
		SuccessURL:  uc.stripeCfg.SuccessURL,
		CancelURL:   uc.stripeCfg.CancelURL,
		Metadata: map[string]string{
			"user_id":    strconv.FormatUint(uint64(cmd.UserID), 10),
			"product_id": product.ID,
		},
	})
	if err != nil {
		uc.logger.Errorw("failed to create checkout session", "user_id", cmd.UserID, "product_id", product.ID, "error", err)
		return nil, errors.NewUpstreamFailureError("failed to start checkout")
	}

	uc.logger.Infow("checkout session created", "user_id", cmd.UserID, "product_id", product.ID, "session_id", session.ID)

	return &CreateCheckoutResult{SessionID: session.ID, CheckoutURL: session.URL}, nil
}
