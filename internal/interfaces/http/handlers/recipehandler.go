package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	recipeusecases "sips/internal/application/recipe/usecases"
	"sips/internal/interfaces/dto"
	"sips/internal/shared/constants"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

type RecipeHandler struct {
	createUseCase     *recipeusecases.CreateRecipeUseCase
	getUseCase        *recipeusecases.GetRecipeUseCase
	listUseCase       *recipeusecases.ListRecipesUseCase
	updateUseCase     *recipeusecases.UpdateRecipeUseCase
	deleteUseCase     *recipeusecases.DeleteRecipeUseCase
	categoriesUseCase *recipeusecases.ListCategoriesUseCase
	trendingUseCase   *recipeusecases.ListTrendingUseCase
	logger            logger.Interface
}

func NewRecipeHandler(
	createUseCase *recipeusecases.CreateRecipeUseCase,
	getUseCase *recipeusecases.GetRecipeUseCase,
	listUseCase *recipeusecases.ListRecipesUseCase,
	updateUseCase *recipeusecases.UpdateRecipeUseCase,
	deleteUseCase *recipeusecases.DeleteRecipeUseCase,
	categoriesUseCase *recipeusecases.ListCategoriesUseCase,
	trendingUseCase *recipeusecases.ListTrendingUseCase,
	logger logger.Interface,
) *RecipeHandler {
	return &RecipeHandler{
		createUseCase:     createUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		categoriesUseCase: categoriesUseCase,
		trendingUseCase:   trendingUseCase,
		logger:            logger,
	}
}

// Create handles POST /recipes.
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), recipeusecases.CreateRecipeCommand{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Instructions: req.Instructions,
		Ingredients:  req.DomainIngredients(),
		Tags:         req.Tags,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": result.RecipeID, "name": result.Name})
}

// Get handles GET /recipes/:id. Anonymous viewers only see public recipes.
func (h *RecipeHandler) Get(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	viewerID, _ := currentUserID(c)

	rec, err := h.getUseCase.Execute(c.Request.Context(), recipeusecases.GetRecipeQuery{
		RecipeID:   recipeID,
		ViewerID:   viewerID,
		ViewerRole: currentUserRole(c),
		CountView:  true,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewRecipeResponse(rec))
}

// List handles GET /recipes, the public catalog listing.
func (h *RecipeHandler) List(c *gin.Context) {
	query := recipeusecases.ListRecipesQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sort_by"),
		Page:     parseQueryInt(c, "page", constants.DefaultPage),
		PageSize: parseQueryInt(c, "page_size", constants.DefaultPageSize),
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewRecipeListResponse(result.Recipes), result.Total, query.Page, query.PageSize)
}

// ListMine handles GET /recipes/mine, including the caller's private recipes.
func (h *RecipeHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	query := recipeusecases.ListRecipesQuery{
		Category:       c.Query("category"),
		Search:         c.Query("search"),
		SortBy:         c.Query("sort_by"),
		UserID:         &userID,
		IncludePrivate: true,
		Page:           parseQueryInt(c, "page", constants.DefaultPage),
		PageSize:       parseQueryInt(c, "page_size", constants.DefaultPageSize),
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewRecipeListResponse(result.Recipes), result.Total, query.Page, query.PageSize)
}

// Update handles PATCH /recipes/:id.
func (h *RecipeHandler) Update(c *gin.Context) {
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

	var req dto.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	rec, err := h.updateUseCase.Execute(c.Request.Context(), recipeusecases.UpdateRecipeCommand{
		RecipeID:     recipeID,
		UserID:       userID,
		UserRole:     currentUserRole(c),
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Instructions: req.Instructions,
		Ingredients:  req.DomainIngredients(),
		Tags:         req.Tags,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "recipe updated successfully", dto.NewRecipeResponse(rec))
}

// Delete handles DELETE /recipes/:id.
func (h *RecipeHandler) Delete(c *gin.Context) {
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

	err := h.deleteUseCase.Execute(c.Request.Context(), recipeusecases.DeleteRecipeCommand{
		RecipeID: recipeID,
		UserID:   userID,
		UserRole: currentUserRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListCategories handles GET /recipes/categories.
func (h *RecipeHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoriesUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewCategoryListResponse(categories))
}

// ListTrending handles GET /recipes/trending.
func (h *RecipeHandler) ListTrending(c *gin.Context) {
	limit := parseQueryInt(c, "limit", constants.DefaultTrendingLimit)

	recipes, err := h.trendingUseCase.Execute(c.Request.Context(), limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewRecipeListResponse(recipes))
}
