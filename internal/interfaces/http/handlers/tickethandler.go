package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ticketusecases "sips/internal/application/ticket/usecases"
	"sips/internal/interfaces/dto"
	"sips/internal/shared/constants"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

type TicketHandler struct {
	createUseCase *ticketusecases.CreateTicketUseCase
	listUseCase   *ticketusecases.ListTicketsUseCase
	getUseCase    *ticketusecases.GetTicketUseCase
	logger        logger.Interface
}

func NewTicketHandler(
	createUseCase *ticketusecases.CreateTicketUseCase,
	listUseCase *ticketusecases.ListTicketsUseCase,
	getUseCase *ticketusecases.GetTicketUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		logger:        logger,
	}
}

// Create handles POST /support.
func (h *TicketHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	t, err := h.createUseCase.Execute(c.Request.Context(), ticketusecases.CreateTicketCommand{
		UserID:   userID,
		Subject:  req.Subject,
		Message:  req.Message,
		Priority: req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewTicketResponse(t), "ticket created successfully")
}

// ListMine handles GET /support/mine.
func (h *TicketHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	page := parseQueryInt(c, "page", constants.DefaultPage)
	pageSize := parseQueryInt(c, "page_size", constants.DefaultPageSize)

	result, err := h.listUseCase.Execute(c.Request.Context(), ticketusecases.ListTicketsQuery{
		RequesterID:   userID,
		RequesterRole: currentUserRole(c),
		Status:        c.Query("status"),
		Priority:      c.Query("priority"),
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewTicketListResponse(result.Tickets), result.Total, result.Page, result.PageSize)
}

// Get handles GET /support/:id. Tickets are private to their creator.
func (h *TicketHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket id")
		return
	}

	t, err := h.getUseCase.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{
		TicketID:      ticketID,
		RequesterID:   userID,
		RequesterRole: currentUserRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTicketResponse(t))
}
