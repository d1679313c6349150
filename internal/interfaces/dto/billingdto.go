package dto

import "sips/internal/domain/billing"

type ProductResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	AmountCents int    `json:"amount_cents"`
	Tokens      int    `json:"tokens,omitempty"`
	Tier        string `json:"tier,omitempty"`
}

func NewProductListResponse(products []billing.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, ProductResponse{
			ID:          p.ID,
			Kind:        string(p.Kind),
			Name:        p.Name,
			AmountCents: p.AmountCents,
			Tokens:      p.Tokens,
			Tier:        string(p.Tier),
		})
	}
	return result
}

type CreateCheckoutRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}
