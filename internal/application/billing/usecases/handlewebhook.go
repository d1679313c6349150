package usecases

import (
	"context"
	"strconv"

	"sips/internal/domain/billing"
	"sips/internal/domain/ledger"
	"sips/internal/domain/user"
	infrabilling "sips/internal/infrastructure/billing"
	apperrors "sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

// HandleWebhookUseCase processes payment provider notifications. Every event
// id is recorded in the dedup ledger inside the same transaction as its side
// effects, so retries and replays are acknowledged without granting tokens
// twice. Only a bad signature or an unreadable payload fails the request;
// per-event processing failures are logged and acknowledged so the provider
// does not retry indefinitely.
type HandleWebhookUseCase struct {
	userRepo         user.UserRepository
	ledgerRepo       ledger.LedgerRepository
	webhookEventRepo billing.WebhookEventRepository
	txManager        TransactionManager
	webhookSecret    string
	logger           logger.Interface
}

func NewHandleWebhookUseCase(
	userRepo user.UserRepository,
	ledgerRepo ledger.LedgerRepository,
	webhookEventRepo billing.WebhookEventRepository,
	txManager TransactionManager,
	webhookSecret string,
	logger logger.Interface,
) *HandleWebhookUseCase {
	return &HandleWebhookUseCase{
		userRepo:         userRepo,
		ledgerRepo:       ledgerRepo,
		webhookEventRepo: webhookEventRepo,
		txManager:        txManager,
		webhookSecret:    webhookSecret,
		logger:           logger,
	}
}

func (uc *HandleWebhookUseCase) Execute(ctx context.Context, payload []byte, sigHeader string) error {
	err := infrabilling.VerifySignature(payload, sigHeader, uc.webhookSecret, infrabilling.DefaultSignatureTolerance)
	if err != nil {
		uc.logger.Warnw("webhook signature verification failed", "error", err)
		return apperrors.NewBadRequestError("invalid webhook signature")
	}

	event, err := infrabilling.ParseEvent(payload)
	if err != nil {
		return apperrors.NewBadRequestError("malformed webhook payload")
	}

	switch event.Type {
	case infrabilling.EventCheckoutSessionCompleted,
		infrabilling.EventSubscriptionDeleted,
		infrabilling.EventInvoicePaid:
	default:
		uc.logger.Debugw("ignoring webhook event", "event_id", event.ID, "type", event.Type)
		return nil
	}

	record, err := billing.NewWebhookEvent(event.ID, event.Type)
	if err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.webhookEventRepo.Record(txCtx, record); err != nil {
			return err
		}

		switch event.Type {
		case infrabilling.EventCheckoutSessionCompleted:
			return uc.handleCheckoutCompleted(txCtx, event)
		case infrabilling.EventSubscriptionDeleted:
			return uc.handleSubscriptionDeleted(txCtx, event)
		case infrabilling.EventInvoicePaid:
			return uc.handleInvoicePaid(txCtx, event)
		}
		return nil
	})
	if err != nil {
		if apperrors.IsDuplicateError(err) {
			uc.logger.Infow("webhook event already processed", "event_id", event.ID, "type", event.Type)
			return nil
		}
		// Processing failures are logged and acknowledged so the provider does
		// not retry indefinitely; the failed credit needs manual reconciliation.
		uc.logger.Errorw("webhook processing failed", "event_id", event.ID, "type", event.Type, "error", err)
	}

	return nil
}

func (uc *HandleWebhookUseCase) handleCheckoutCompleted(ctx context.Context, event *infrabilling.Event) error {
	var sess infrabilling.CheckoutSessionObject
	if err := event.DecodeObject(&sess); err != nil {
		uc.logger.Errorw("undecodable checkout session", "event_id", event.ID, "error", err)
		return nil
	}

	userID, product, ok := uc.resolveMetadata(event.ID, sess.Metadata)
	if !ok {
		return nil
	}

	switch product.Kind {
	case billing.KindTokenPack:
		return uc.credit(ctx, userID, product.Tokens, ledger.TypePurchase, product.Name+" purchase")

	case billing.KindSubscriptionPlan:
		buyer, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if err := buyer.ActivateSubscription(product.Tier, sess.Subscription); err != nil {
			uc.logger.Errorw("cannot activate subscription", "event_id", event.ID, "user_id", userID, "error", err)
			return nil
		}
		if err := uc.userRepo.Update(ctx, buyer); err != nil {
			return err
		}
		return uc.credit(ctx, userID, billing.MonthlyAllotment(product.Tier), ledger.TypeBonus, product.Name+" monthly tokens")
	}

	return nil
}

func (uc *HandleWebhookUseCase) handleSubscriptionDeleted(ctx context.Context, event *infrabilling.Event) error {
	var sub infrabilling.SubscriptionObject
	if err := event.DecodeObject(&sub); err != nil {
		uc.logger.Errorw("undecodable subscription object", "event_id", event.ID, "error", err)
		return nil
	}

	userID, ok := parseUserID(sub.Metadata)
	if !ok {
		uc.logger.Errorw("subscription event missing user metadata", "event_id", event.ID)
		return nil
	}

	subscriber, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			uc.logger.Errorw("subscription event for unknown user", "event_id", event.ID, "user_id", userID)
			return nil
		}
		return err
	}

	subscriber.CancelSubscription()
	if err := uc.userRepo.Update(ctx, subscriber); err != nil {
		return err
	}

	uc.logger.Infow("subscription cancelled", "user_id", userID, "subscription_id", sub.ID)
	return nil
}

func (uc *HandleWebhookUseCase) handleInvoicePaid(ctx context.Context, event *infrabilling.Event) error {
	var invoice infrabilling.InvoiceObject
	if err := event.DecodeObject(&invoice); err != nil {
		uc.logger.Errorw("undecodable invoice object", "event_id", event.ID, "error", err)
		return nil
	}

	// The first invoice of a new subscription is covered by
	// checkout.session.completed; only renewals grant tokens here.
	if invoice.BillingReason != infrabilling.BillingReasonSubscriptionCycle {
		return nil
	}

	userID, product, ok := uc.resolveMetadata(event.ID, invoice.SubscriptionDetails.Metadata)
	if !ok {
		return nil
	}
	if product.Kind != billing.KindSubscriptionPlan {
		uc.logger.Errorw("renewal invoice references a non-plan product", "event_id", event.ID, "product_id", product.ID)
		return nil
	}

	return uc.credit(ctx, userID, billing.MonthlyAllotment(product.Tier), ledger.TypeBonus, product.Name+" monthly tokens")
}

func (uc *HandleWebhookUseCase) credit(ctx context.Context, userID uint, amount int, txType ledger.TransactionType, description string) error {
	grant, err := ledger.NewTransaction(userID, amount, txType, description)
	if err != nil {
		return err
	}
	if err := uc.ledgerRepo.Credit(ctx, grant); err != nil {
		return err
	}

	uc.logger.Infow("tokens credited from webhook", "user_id", userID, "amount", amount, "type", txType)
	return nil
}

// resolveMetadata extracts and validates the user and product metadata the
// checkout flow attaches to every session.
func (uc *HandleWebhookUseCase) resolveMetadata(eventID string, metadata map[string]string) (uint, billing.Product, bool) {
	userID, ok := parseUserID(metadata)
	if !ok {
		uc.logger.Errorw("webhook event missing user metadata", "event_id", eventID)
		return 0, billing.Product{}, false
	}

	product, ok := billing.ProductByID(metadata["product_id"])
	if !ok {
		uc.logger.Errorw("webhook event references unknown product", "event_id", eventID, "product_id", metadata["product_id"])
		return 0, billing.Product{}, false
	}

	return userID, product, true
}

func parseUserID(metadata map[string]string) (uint, bool) {
	raw, ok := metadata["user_id"]
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
