package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	aiusecases "sips/internal/application/ai/usecases"
	"sips/internal/interfaces/dto"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

// AIHandler exposes the model-backed endpoints. Generation and extraction
// cost one token each; estimates and taste matching are free.
type AIHandler struct {
	generateUseCase     *aiusecases.GenerateDrinkUseCase
	extractURLUseCase   *aiusecases.ExtractFromURLUseCase
	extractImageUseCase *aiusecases.ExtractFromImageUseCase
	nutritionUseCase    *aiusecases.EstimateNutritionUseCase
	priceUseCase        *aiusecases.EstimatePriceUseCase
	tasteMatchUseCase   *aiusecases.TasteMatchUseCase
	creationsUseCase    *aiusecases.ListCreationsUseCase
	logger              logger.Interface
}

func NewAIHandler(
	generateUseCase *aiusecases.GenerateDrinkUseCase,
	extractURLUseCase *aiusecases.ExtractFromURLUseCase,
	extractImageUseCase *aiusecases.ExtractFromImageUseCase,
	nutritionUseCase *aiusecases.EstimateNutritionUseCase,
	priceUseCase *aiusecases.EstimatePriceUseCase,
	tasteMatchUseCase *aiusecases.TasteMatchUseCase,
	creationsUseCase *aiusecases.ListCreationsUseCase,
	logger logger.Interface,
) *AIHandler {
	return &AIHandler{
		generateUseCase:     generateUseCase,
		extractURLUseCase:   extractURLUseCase,
		extractImageUseCase: extractImageUseCase,
		nutritionUseCase:    nutritionUseCase,
		priceUseCase:        priceUseCase,
		tasteMatchUseCase:   tasteMatchUseCase,
		creationsUseCase:    creationsUseCase,
		logger:              logger,
	}
}

// Generate handles POST /ai/customize.
func (h *AIHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.GenerateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.generateUseCase.Execute(c.Request.Context(), aiusecases.GenerateDrinkCommand{
		UserID:      userID,
		Preferences: req.DomainPreferences(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.GenerationResponse{
		Recipe:     dto.NewRecipeResponse(result.Recipe),
		TokensUsed: result.TokensUsed,
	}, "drink generated successfully")
}

// ExtractFromURL handles POST /ai/extract-url.
func (h *AIHandler) ExtractFromURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.ExtractFromURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.extractURLUseCase.Execute(c.Request.Context(), aiusecases.ExtractFromURLCommand{
		UserID: userID,
		URL:    req.URL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.GenerationResponse{
		Recipe:     dto.NewRecipeResponse(result.Recipe),
		TokensUsed: result.TokensUsed,
	}, "recipe extracted successfully")
}

// ExtractFromImage handles POST /ai/extract-image.
func (h *AIHandler) ExtractFromImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.ExtractFromImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.extractImageUseCase.Execute(c.Request.Context(), aiusecases.ExtractFromImageCommand{
		UserID: userID,
		Image:  req.Image,
		Hint:   req.Hint,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.GenerationResponse{
		Recipe:     dto.NewRecipeResponse(result.Recipe),
		TokensUsed: result.TokensUsed,
	}, "recipe extracted successfully")
}

// EstimateNutrition handles POST /ai/nutrition. Free; owners get the result
// stored on the recipe.
func (h *AIHandler) EstimateNutrition(c *gin.Context) {
	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	viewerID, _ := currentUserID(c)

	estimate, err := h.nutritionUseCase.Execute(c.Request.Context(), aiusecases.EstimateNutritionQuery{
		RecipeID:   req.RecipeID,
		ViewerID:   viewerID,
		ViewerRole: currentUserRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewNutritionEstimateResponse(estimate))
}

// EstimatePrice handles POST /ai/price.
func (h *AIHandler) EstimatePrice(c *gin.Context) {
	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	viewerID, _ := currentUserID(c)

	estimate, err := h.priceUseCase.Execute(c.Request.Context(), aiusecases.EstimatePriceQuery{
		RecipeID:   req.RecipeID,
		ViewerID:   viewerID,
		ViewerRole: currentUserRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewPriceEstimateResponse(estimate))
}

// TasteMatch handles POST /ai/taste-match.
func (h *AIHandler) TasteMatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.TasteMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	match, err := h.tasteMatchUseCase.Execute(c.Request.Context(), aiusecases.TasteMatchQuery{
		UserID:   userID,
		UserRole: currentUserRole(c),
		RecipeID: req.RecipeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTasteMatchResponse(match))
}

// ListCreations handles GET /ai/creations.
func (h *AIHandler) ListCreations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	limit := parseQueryInt(c, "limit", 0)

	creations, err := h.creationsUseCase.Execute(c.Request.Context(), userID, limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewCreationListResponse(creations))
}
