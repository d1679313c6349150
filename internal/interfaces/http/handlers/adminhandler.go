package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminusecases "sips/internal/application/admin/usecases"
	recipeusecases "sips/internal/application/recipe/usecases"
	ticketusecases "sips/internal/application/ticket/usecases"
	tokenusecases "sips/internal/application/token/usecases"
	"sips/internal/interfaces/dto"
	"sips/internal/shared/constants"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

// AdminHandler groups the moderation and operations surface. All routes are
// guarded by the admin capability in the router.
type AdminHandler struct {
	statsUseCase        *adminusecases.GetStatsUseCase
	listUsersUseCase    *adminusecases.ListUsersUseCase
	auditLogsUseCase    *adminusecases.ListAuditLogsUseCase
	listRecipesUseCase  *recipeusecases.ListRecipesUseCase
	moderateUseCase     *recipeusecases.ModerateRecipeUseCase
	deleteRecipeUseCase *recipeusecases.DeleteRecipeUseCase
	listTicketsUseCase  *ticketusecases.ListTicketsUseCase
	respondUseCase      *ticketusecases.RespondTicketUseCase
	ticketStatusUseCase *ticketusecases.UpdateTicketStatusUseCase
	grantTokensUseCase  *tokenusecases.GrantTokensUseCase
	logger              logger.Interface
}

func NewAdminHandler(
	statsUseCase *adminusecases.GetStatsUseCase,
	listUsersUseCase *adminusecases.ListUsersUseCase,
	auditLogsUseCase *adminusecases.ListAuditLogsUseCase,
	listRecipesUseCase *recipeusecases.ListRecipesUseCase,
	moderateUseCase *recipeusecases.ModerateRecipeUseCase,
	deleteRecipeUseCase *recipeusecases.DeleteRecipeUseCase,
	listTicketsUseCase *ticketusecases.ListTicketsUseCase,
	respondUseCase *ticketusecases.RespondTicketUseCase,
	ticketStatusUseCase *ticketusecases.UpdateTicketStatusUseCase,
	grantTokensUseCase *tokenusecases.GrantTokensUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		statsUseCase:        statsUseCase,
		listUsersUseCase:    listUsersUseCase,
		auditLogsUseCase:    auditLogsUseCase,
		listRecipesUseCase:  listRecipesUseCase,
		moderateUseCase:     moderateUseCase,
		deleteRecipeUseCase: deleteRecipeUseCase,
		listTicketsUseCase:  listTicketsUseCase,
		respondUseCase:      respondUseCase,
		ticketStatusUseCase: ticketStatusUseCase,
		grantTokensUseCase:  grantTokensUseCase,
		logger:              logger,
	}
}

// GetStats handles GET /admin/stats.
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.statsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.StatsResponse{
		TotalUsers:   stats.TotalUsers,
		TotalRecipes: stats.TotalRecipes,
		OpenTickets:  stats.OpenTickets,
	})
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	query := adminusecases.ListUsersQuery{
		Role:     c.Query("role"),
		Tier:     c.Query("tier"),
		Search:   c.Query("search"),
		Page:     parseQueryInt(c, "page", constants.DefaultPage),
		PageSize: parseQueryInt(c, "page_size", constants.DefaultPageSize),
	}

	result, err := h.listUsersUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewUserListResponse(result.Users), result.Total, result.Page, result.PageSize)
}

// ListAuditLogs handles GET /admin/audit-logs.
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	pageSize := parseQueryInt(c, "page_size", constants.DefaultPageSize)

	result, err := h.auditLogsUseCase.Execute(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewAuditLogListResponse(result.Entries), result.Total, result.Page, result.PageSize)
}

// ListRecipes handles GET /admin/recipes, including private recipes.
func (h *AdminHandler) ListRecipes(c *gin.Context) {
	query := recipeusecases.ListRecipesQuery{
		Category:       c.Query("category"),
		Search:         c.Query("search"),
		SortBy:         c.Query("sort_by"),
		IncludePrivate: true,
		Page:           parseQueryInt(c, "page", constants.DefaultPage),
		PageSize:       parseQueryInt(c, "page_size", constants.DefaultPageSize),
	}

	result, err := h.listRecipesUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewRecipeListResponse(result.Recipes), result.Total, query.Page, query.PageSize)
}

// ToggleRecipeVisibility handles PATCH /admin/recipes/:id/visibility.
func (h *AdminHandler) ToggleRecipeVisibility(c *gin.Context) {
	h.moderate(c, recipeusecases.ActionTogglePublic)
}

// ToggleRecipeTrending handles PATCH /admin/recipes/:id/trending.
func (h *AdminHandler) ToggleRecipeTrending(c *gin.Context) {
	h.moderate(c, recipeusecases.ActionToggleTrending)
}

// VerifyRecipe handles PATCH /admin/recipes/:id/verify.
func (h *AdminHandler) VerifyRecipe(c *gin.Context) {
	h.moderate(c, recipeusecases.ActionMarkVerified)
}

func (h *AdminHandler) moderate(c *gin.Context, action recipeusecases.ModerationAction) {
	adminID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	rec, err := h.moderateUseCase.Execute(c.Request.Context(), recipeusecases.ModerateRecipeCommand{
		RecipeID: recipeID,
		AdminID:  adminID,
		Action:   action,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "recipe updated successfully", dto.NewRecipeResponse(rec))
}

// DeleteRecipe handles DELETE /admin/recipes/:id.
func (h *AdminHandler) DeleteRecipe(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	err := h.deleteRecipeUseCase.Execute(c.Request.Context(), recipeusecases.DeleteRecipeCommand{
		RecipeID: recipeID,
		UserID:   adminID,
		UserRole: currentUserRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListTickets handles GET /admin/tickets across all users.
func (h *AdminHandler) ListTickets(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.listTicketsUseCase.Execute(c.Request.Context(), ticketusecases.ListTicketsQuery{
		RequesterID:   adminID,
		RequesterRole: currentUserRole(c),
		Status:        c.Query("status"),
		Priority:      c.Query("priority"),
		Page:          parseQueryInt(c, "page", constants.DefaultPage),
		PageSize:      parseQueryInt(c, "page_size", constants.DefaultPageSize),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewTicketListResponse(result.Tickets), result.Total, result.Page, result.PageSize)
}

// RespondTicket handles POST /admin/tickets/:id/respond.
func (h *AdminHandler) RespondTicket(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket id")
		return
	}

	var req dto.RespondTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	t, err := h.respondUseCase.Execute(c.Request.Context(), ticketusecases.RespondTicketCommand{
		AdminID:  adminID,
		TicketID: ticketID,
		Response: req.Response,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "response recorded", dto.NewTicketResponse(t))
}

// UpdateTicket handles PATCH /admin/tickets/:id.
func (h *AdminHandler) UpdateTicket(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket id")
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	t, err := h.ticketStatusUseCase.Execute(c.Request.Context(), ticketusecases.UpdateTicketStatusCommand{
		AdminID:  adminID,
		TicketID: ticketID,
		Status:   req.Status,
		Priority: req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated successfully", dto.NewTicketResponse(t))
}

// GrantTokens handles POST /admin/tokens/grant.
func (h *AdminHandler) GrantTokens(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.GrantTokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.grantTokensUseCase.Execute(c.Request.Context(), tokenusecases.GrantTokensCommand{
		AdminID:     adminID,
		UserID:      req.UserID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "tokens granted successfully", gin.H{"new_balance": result.NewBalance})
}
