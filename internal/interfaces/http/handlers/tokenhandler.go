package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tokenusecases "sips/internal/application/token/usecases"
	"sips/internal/interfaces/dto"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

type TokenHandler struct {
	balanceUseCase *tokenusecases.GetBalanceUseCase
	historyUseCase *tokenusecases.GetHistoryUseCase
	logger         logger.Interface
}

func NewTokenHandler(
	balanceUseCase *tokenusecases.GetBalanceUseCase,
	historyUseCase *tokenusecases.GetHistoryUseCase,
	logger logger.Interface,
) *TokenHandler {
	return &TokenHandler{
		balanceUseCase: balanceUseCase,
		historyUseCase: historyUseCase,
		logger:         logger,
	}
}

// GetBalance handles GET /tokens/balance.
func (h *TokenHandler) GetBalance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.balanceUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.BalanceResponse{Balance: result.Balance})
}

// GetHistory handles GET /tokens/history, newest first.
func (h *TokenHandler) GetHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	transactions, err := h.historyUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTransactionListResponse(transactions))
}
