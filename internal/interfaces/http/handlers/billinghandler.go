package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	billingusecases "sips/internal/application/billing/usecases"
	"sips/internal/interfaces/dto"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

type BillingHandler struct {
	productsUseCase *billingusecases.ListProductsUseCase
	checkoutUseCase *billingusecases.CreateCheckoutUseCase
	webhookUseCase  *billingusecases.HandleWebhookUseCase
	logger          logger.Interface
}

func NewBillingHandler(
	productsUseCase *billingusecases.ListProductsUseCase,
	checkoutUseCase *billingusecases.CreateCheckoutUseCase,
	webhookUseCase *billingusecases.HandleWebhookUseCase,
	logger logger.Interface,
) *BillingHandler {
	return &BillingHandler{
		productsUseCase: productsUseCase,
		checkoutUseCase: checkoutUseCase,
		webhookUseCase:  webhookUseCase,
		logger:          logger,
	}
}

// ListProducts handles GET /billing/products.
func (h *BillingHandler) ListProducts(c *gin.Context) {
	products := h.productsUseCase.Execute(c.Request.Context())
	utils.SuccessResponse(c, http.StatusOK, "", dto.NewProductListResponse(products))
}

// CreateCheckout handles POST /billing/checkout.
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.checkoutUseCase.Execute(c.Request.Context(), billingusecases.CreateCheckoutCommand{
		UserID:    userID,
		ProductID: req.ProductID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "checkout session created", dto.CheckoutResponse{
		SessionID:   result.SessionID,
		CheckoutURL: result.CheckoutURL,
	})
}

// HandleWebhook handles POST /billing/webhooks/stripe. The raw body is
// needed for signature verification, so this route must not share body
// parsing middleware.
func (h *BillingHandler) HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")

	if err := h.webhookUseCase.Execute(c.Request.Context(), payload, sigHeader); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
