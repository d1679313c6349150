// Package billing defines the purchasable product catalog and the webhook
// event records used for idempotent payment processing.
package billing

import "sips/internal/domain/user"

// ProductKind distinguishes one-time token packs from recurring plans.
type ProductKind string

const (
	KindTokenPack        ProductKind = "token_pack"
	KindSubscriptionPlan ProductKind = "subscription_plan"
)

// Product is one entry of the fixed catalog. Prices are in cents.
type Product struct {
	ID          string
	Kind        ProductKind
	Name        string
	AmountCents int
	// Tokens granted on purchase (token packs only).
	Tokens int
	// Tier activated on purchase (subscription plans only).
	Tier user.SubscriptionTier
}

// The catalog is fixed in code; checkout requests referencing any other id
// are rejected as unknown products.
var catalog = map[string]Product{
	"tokens_10": {
		ID:          "tokens_10",
		Kind:        KindTokenPack,
		Name:        "10 Tokens",
		AmountCents: 299,
		Tokens:      10,
	},
	"tokens_50": {
		ID:          "tokens_50",
		Kind:        KindTokenPack,
		Name:        "50 Tokens",
		AmountCents: 999,
		Tokens:      50,
	},
	"tokens_200": {
		ID:          "tokens_200",
		Kind:        KindTokenPack,
		Name:        "200 Tokens",
		AmountCents: 2999,
		Tokens:      200,
	},
	"plan_starter": {
		ID:          "plan_starter",
		Kind:        KindSubscriptionPlan,
		Name:        "Starter Plan",
		AmountCents: 499,
		Tier:        user.TierStarter,
	},
	"plan_pro": {
		ID:          "plan_pro",
		Kind:        KindSubscriptionPlan,
		Name:        "Pro Plan",
		AmountCents: 1299,
		Tier:        user.TierPro,
	},
	"plan_enterprise": {
		ID:          "plan_enterprise",
		Kind:        KindSubscriptionPlan,
		Name:        "Enterprise Plan",
		AmountCents: 2999,
		Tier:        user.TierEnterprise,
	},
}

// monthlyAllotments are the tokens granted per billing cycle for each tier.
var monthlyAllotments = map[user.SubscriptionTier]int{
	user.TierStarter:    20,
	user.TierPro:        100,
	user.TierEnterprise: 500,
}

// ProductByID looks up a catalog entry.
func ProductByID(id string) (Product, bool) {
	p, ok := catalog[id]
	return p, ok
}

// Products returns the full catalog for listing.
func Products() []Product {
	out := make([]Product, 0, len(catalog))
	for _, id := range []string{"tokens_10", "tokens_50", "tokens_200", "plan_starter", "plan_pro", "plan_enterprise"} {
		out = append(out, catalog[id])
	}
	return out
}

// MonthlyAllotment returns the tokens a tier receives each billing cycle.
func MonthlyAllotment(tier user.SubscriptionTier) int {
	return monthlyAllotments[tier]
}

// ProductByTier finds the plan product for a tier.
func ProductByTier(tier user.SubscriptionTier) (Product, bool) {
	for _, p := range catalog {
		if p.Kind == KindSubscriptionPlan && p.Tier == tier {
			return p, true
		}
	}
	return Product{}, false
}
