package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	engagementusecases "sips/internal/application/engagement/usecases"
	"sips/internal/domain/engagement"
	"sips/internal/interfaces/dto"
	"sips/internal/shared/constants"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

type castVoteRequest struct {
	VoteType string `json:"vote_type" binding:"required"`
}

type EngagementHandler struct {
	castVoteUseCase      *engagementusecases.CastVoteUseCase
	toggleFavoriteUC     *engagementusecases.ToggleFavoriteUseCase
	statusUseCase        *engagementusecases.GetEngagementStatusUseCase
	listFavoritesUseCase *engagementusecases.ListFavoritesUseCase
	logger               logger.Interface
}

func NewEngagementHandler(
	castVoteUseCase *engagementusecases.CastVoteUseCase,
	toggleFavoriteUC *engagementusecases.ToggleFavoriteUseCase,
	statusUseCase *engagementusecases.GetEngagementStatusUseCase,
	listFavoritesUseCase *engagementusecases.ListFavoritesUseCase,
	logger logger.Interface,
) *EngagementHandler {
	return &EngagementHandler{
		castVoteUseCase:      castVoteUseCase,
		toggleFavoriteUC:     toggleFavoriteUC,
		statusUseCase:        statusUseCase,
		listFavoritesUseCase: listFavoritesUseCase,
		logger:               logger,
	}
}

// CastVote handles POST /recipes/:id/vote. Repeating a vote removes it,
// voting the other way switches it.
func (h *EngagementHandler) CastVote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	var req castVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.castVoteUseCase.Execute(c.Request.Context(), engagementusecases.CastVoteCommand{
		UserID:   userID,
		RecipeID: recipeID,
		VoteType: engagement.VoteType(req.VoteType),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"user_vote": result.UserVote})
}

// ToggleFavorite handles POST /recipes/:id/favorite.
func (h *EngagementHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	result, err := h.toggleFavoriteUC.Execute(c.Request.Context(), engagementusecases.ToggleFavoriteCommand{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"is_favorited": result.IsFavorited})
}

// GetStatus handles GET /recipes/:id/engagement, the caller's vote and
// favorite standing for one recipe.
func (h *EngagementHandler) GetStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	status, err := h.statusUseCase.Execute(c.Request.Context(), engagementusecases.GetEngagementStatusQuery{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user_vote":    status.UserVote,
		"is_favorited": status.IsFavorited,
	})
}

// ListFavorites handles GET /favorites.
func (h *EngagementHandler) ListFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	page := parseQueryInt(c, "page", constants.DefaultPage)
	pageSize := parseQueryInt(c, "page_size", constants.DefaultPageSize)

	result, err := h.listFavoritesUseCase.Execute(c.Request.Context(), engagementusecases.ListFavoritesQuery{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewRecipeListResponse(result.Recipes), result.Total, page, pageSize)
}
