package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 24
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	// Default recipe category applied when a submission omits one
	DefaultRecipeCategory = "Viral Today"

	// Trending listing size
	DefaultTrendingLimit = 8

	// Token ledger
	SignupBonusTokens = 10
	AIGenerationCost  = 1
	TokenHistoryLimit = 50

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
