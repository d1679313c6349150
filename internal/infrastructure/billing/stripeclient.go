// Package billing integrates with the Stripe HTTP API for checkout and
// webhook processing.
package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sips/internal/shared/config"
	"sips/internal/shared/logger"
)

const requestTimeout = 30 * time.Second

// CheckoutMode selects between one-time payments and subscriptions.
type CheckoutMode string

const (
	ModePayment      CheckoutMode = "payment"
	ModeSubscription CheckoutMode = "subscription"
)

// CheckoutParams describes a checkout session to create.
type CheckoutParams struct {
	Mode        CheckoutMode
	ProductName string
	AmountCents int
	Currency    string
	Interval    string // only for subscriptions, e.g. "month"
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// CheckoutSession is the subset of the session object the app needs.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg config.StripeConfig, log logger.Interface) *Client {
	return &Client{
		secretKey:  cfg.SecretKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     log,
	}
}

// CreateCheckoutSession creates a hosted checkout session and returns its
// redirect URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", string(params.Mode))
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)

	currency := params.Currency
	if currency == "" {
		currency = "usd"
	}

	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.Itoa(params.AmountCents))
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	if params.Mode == ModeSubscription {
		interval := params.Interval
		if interval == "" {
			interval = "month"
		}
		form.Set("line_items[0][price_data][recurring][interval]", interval)
	}

	for key, value := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
		if params.Mode == ModeSubscription {
			// Propagate metadata onto the subscription so renewal invoices
			// carry it too.
			form.Set(fmt.Sprintf("subscription_data[metadata][%s]", key), value)
		}
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/checkout/sessions",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call payment provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		c.logger.Errorw("checkout session creation failed",
			"status", resp.StatusCode)
		return nil, fmt.Errorf("payment provider error %d: %s", resp.StatusCode, string(body))
	}

	var session CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &session, nil
}
