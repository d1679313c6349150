package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userusecases "sips/internal/application/user/usecases"
	"sips/internal/interfaces/dto"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

type ProfileHandler struct {
	preferencesUseCase *userusecases.UpdatePreferencesUseCase
	logger             logger.Interface
}

func NewProfileHandler(
	preferencesUseCase *userusecases.UpdatePreferencesUseCase,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		preferencesUseCase: preferencesUseCase,
		logger:             logger,
	}
}

// UpdatePreferences handles PATCH /profile. The stored taste profile feeds
// the generation prompts.
func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	u, err := h.preferencesUseCase.Execute(c.Request.Context(), userusecases.UpdatePreferencesCommand{
		UserID:            userID,
		TasteProfile:      req.TasteProfile,
		DietaryPrefs:      req.DietaryPrefs,
		AllergyFlags:      req.AllergyFlags,
		AccessibilityMode: req.AccessibilityMode,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "preferences updated successfully", dto.NewUserResponse(u))
}
