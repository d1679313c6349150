package usecases

import (
	"context"

	"sips/internal/domain/billing"
)

// ListProductsUseCase returns the fixed product catalog.
type ListProductsUseCase struct{}

func NewListProductsUseCase() *ListProductsUseCase {
	return &ListProductsUseCase{}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context) []billing.Product {
	return billing.Products()
}
