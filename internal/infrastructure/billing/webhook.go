package billing

import (
	"encoding/json"
	"fmt"
)

// Webhook event types the app reacts to. Everything else is acknowledged
// and ignored.
const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
	EventSubscriptionDeleted      = "customer.subscription.deleted"
	EventInvoicePaid              = "invoice.paid"
)

// BillingReasonSubscriptionCycle marks renewal invoices as opposed to the
// first invoice of a new subscription.
const BillingReasonSubscriptionCycle = "subscription_cycle"

// Event is the envelope of a webhook notification.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// CheckoutSessionObject is the payload of checkout.session.completed.
type CheckoutSessionObject struct {
	ID           string            `json:"id"`
	Mode         string            `json:"mode"`
	Subscription string            `json:"subscription"`
	Metadata     map[string]string `json:"metadata"`
}

// SubscriptionObject is the payload of customer.subscription.* events.
type SubscriptionObject struct {
	ID       string            `json:"id"`
	Status   string            `json:"status"`
	Metadata map[string]string `json:"metadata"`
}

// InvoiceObject is the payload of invoice.* events.
type InvoiceObject struct {
	ID            string `json:"id"`
	BillingReason string `json:"billing_reason"`
	Subscription  string `json:"subscription"`
	SubscriptionDetails struct {
		Metadata map[string]string `json:"metadata"`
	} `json:"subscription_details"`
}

// ParseEvent decodes a webhook payload into its envelope.
func ParseEvent(payload []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse webhook event: %w", err)
	}
	if event.ID == "" || event.Type == "" {
		return nil, fmt.Errorf("webhook event missing id or type")
	}
	return &event, nil
}

// DecodeObject unmarshals the event's data object into dst.
func (e *Event) DecodeObject(dst any) error {
	if err := json.Unmarshal(e.Data.Object, dst); err != nil {
		return fmt.Errorf("failed to decode event object: %w", err)
	}
	return nil
}
