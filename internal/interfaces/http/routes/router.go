// Package routes assembles the gin engine: global middleware, the public
// catalog surface, the authenticated app surface, and the capability-guarded
// admin surface.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sips/internal/interfaces/http/handlers"
	"sips/internal/interfaces/http/middleware"
	"sips/internal/shared/authorization"
	"sips/internal/shared/config"
	"sips/internal/shared/logger"
)

// Handlers carries the wired handler set into the router.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Recipe     *handlers.RecipeHandler
	Engagement *handlers.EngagementHandler
	Token      *handlers.TokenHandler
	AI         *handlers.AIHandler
	Billing    *handlers.BillingHandler
	Ticket     *handlers.TicketHandler
	Profile    *handlers.ProfileHandler
	Admin      *handlers.AdminHandler
}

// Middleware carries the stateful middleware instances.
type Middleware struct {
	Auth        *middleware.AuthMiddleware
	AIRateLimit *middleware.AIRateLimiter
}

// NewRouter builds the engine with all routes registered.
func NewRouter(
	serverConfig config.ServerConfig,
	h Handlers,
	m Middleware,
	enforcer authorization.CapabilityChecker,
	log logger.Interface,
) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(serverConfig.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := m.Auth.RequireAuth()
	optionalAuth := m.Auth.OptionalAuth()

	auth := engine.Group("/auth")
	{
		auth.GET("/oauth/google", h.Auth.GoogleLogin)
		auth.GET("/oauth/google/callback", h.Auth.GoogleCallback)
		auth.GET("/me", requireAuth, h.Auth.Me)
		auth.POST("/logout", requireAuth, h.Auth.Logout)
	}

	recipes := engine.Group("/recipes")
	{
		recipes.GET("", optionalAuth, h.Recipe.List)
		recipes.GET("/categories", h.Recipe.ListCategories)
		recipes.GET("/trending", h.Recipe.ListTrending)
		recipes.GET("/mine", requireAuth, h.Recipe.ListMine)
		recipes.GET("/:id", optionalAuth, h.Recipe.Get)
		recipes.POST("", requireAuth, h.Recipe.Create)
		recipes.PATCH("/:id", requireAuth, h.Recipe.Update)
		recipes.DELETE("/:id", requireAuth, h.Recipe.Delete)

		recipes.POST("/:id/vote", requireAuth, h.Engagement.CastVote)
		recipes.POST("/:id/favorite", requireAuth, h.Engagement.ToggleFavorite)
		recipes.GET("/:id/engagement", requireAuth, h.Engagement.GetStatus)
	}

	engine.GET("/favorites", requireAuth, h.Engagement.ListFavorites)

	tokens := engine.Group("/tokens", requireAuth)
	{
		tokens.GET("/balance", h.Token.GetBalance)
		tokens.GET("/history", h.Token.GetHistory)
	}

	ai := engine.Group("/ai")
	{
		// Token-charged routes get the per-user sliding-window limit on
		// top of authentication.
		limited := ai.Group("", requireAuth, m.AIRateLimit.Limit())
		{
			limited.POST("/customize", h.AI.Generate)
			limited.POST("/extract-url", h.AI.ExtractFromURL)
			limited.POST("/extract-image", h.AI.ExtractFromImage)
			limited.POST("/taste-match", h.AI.TasteMatch)
		}

		ai.POST("/nutrition", optionalAuth, h.AI.EstimateNutrition)
		ai.POST("/price", optionalAuth, h.AI.EstimatePrice)
		ai.GET("/creations", requireAuth, h.AI.ListCreations)
	}

	billing := engine.Group("/billing")
	{
		billing.GET("/products", h.Billing.ListProducts)
		billing.POST("/checkout", requireAuth, h.Billing.CreateCheckout)
		// Raw body; verified by signature instead of a session.
		billing.POST("/webhooks/stripe", h.Billing.HandleWebhook)
	}

	engine.PATCH("/profile", requireAuth, h.Profile.UpdatePreferences)

	support := engine.Group("/support", requireAuth)
	{
		support.POST("", h.Ticket.Create)
		support.GET("/mine", h.Ticket.ListMine)
		support.GET("/:id", h.Ticket.Get)
	}

	admin := engine.Group("/admin", requireAuth)
	{
		admin.GET("/stats", authorization.RequireCapability(enforcer, "stats", "read"), h.Admin.GetStats)
		admin.GET("/users", authorization.RequireCapability(enforcer, "user", "list"), h.Admin.ListUsers)
		admin.GET("/audit-logs", authorization.RequireCapability(enforcer, "stats", "read"), h.Admin.ListAuditLogs)

		moderate := authorization.RequireCapability(enforcer, "recipe", "moderate")
		admin.GET("/recipes", moderate, h.Admin.ListRecipes)
		admin.PATCH("/recipes/:id/visibility", moderate, h.Admin.ToggleRecipeVisibility)
		admin.PATCH("/recipes/:id/trending", moderate, h.Admin.ToggleRecipeTrending)
		admin.PATCH("/recipes/:id/verify", moderate, h.Admin.VerifyRecipe)
		admin.DELETE("/recipes/:id", authorization.RequireCapability(enforcer, "recipe", "delete_any"), h.Admin.DeleteRecipe)

		manageTickets := authorization.RequireCapability(enforcer, "ticket", "manage")
		admin.GET("/tickets", manageTickets, h.Admin.ListTickets)
		admin.PATCH("/tickets/:id", manageTickets, h.Admin.UpdateTicket)
		admin.POST("/tickets/:id/respond", manageTickets, h.Admin.RespondTicket)

		admin.POST("/tokens/grant", authorization.RequireCapability(enforcer, "user", "grant_tokens"), h.Admin.GrantTokens)
	}

	return engine
}
