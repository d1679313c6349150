// Package server implements the `sips server` command: configuration,
// dependency wiring, and the HTTP server lifecycle.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	adminusecases "sips/internal/application/admin/usecases"
	aiusecases "sips/internal/application/ai/usecases"
	billingusecases "sips/internal/application/billing/usecases"
	engagementusecases "sips/internal/application/engagement/usecases"
	recipeusecases "sips/internal/application/recipe/usecases"
	ticketusecases "sips/internal/application/ticket/usecases"
	tokenusecases "sips/internal/application/token/usecases"
	userusecases "sips/internal/application/user/usecases"
	"sips/internal/infrastructure/ai"
	"sips/internal/infrastructure/auth"
	"sips/internal/infrastructure/authz"
	infrabilling "sips/internal/infrastructure/billing"
	"sips/internal/infrastructure/config"
	"sips/internal/infrastructure/database"
	"sips/internal/infrastructure/email"
	"sips/internal/infrastructure/migration"
	"sips/internal/infrastructure/ratelimit"
	"sips/internal/infrastructure/repository"
	"sips/internal/infrastructure/webcontent"
	"sips/internal/interfaces/http/handlers"
	"sips/internal/interfaces/http/middleware"
	"sips/internal/interfaces/http/routes"
	"sips/internal/shared/constants"
	"sips/internal/shared/db"
	"sips/internal/shared/logger"
	"sips/internal/shared/services/markdown"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the sips HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run pending database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ginMode := mapEnvToGinMode(env)
	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, env); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(ginMode)
	gin.DefaultWriter = io.Discard

	gormDB, err := database.Connect(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(gormDB); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if autoMigrate {
		migrator := migration.NewMigrator("migrations")
		if err := migrator.Up(gormDB); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("migrations applied")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Errorw("failed to close redis client", "error", err)
		}
	}()

	engine, err := buildEngine(cfg, gormDB, redisClient, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr(), "mode", ginMode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server exited gracefully")
	return nil
}

// buildEngine wires repositories, infrastructure services, use cases, and
// handlers into a ready gin engine.
func buildEngine(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client, log logger.Interface) (*gin.Engine, error) {
	txManager := db.NewTransactionManager(gormDB)

	userRepo := repository.NewUserRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)
	voteRepo := repository.NewVoteRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)
	ledgerRepo := repository.NewLedgerRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	creationRepo := repository.NewAICreationRepository(gormDB)
	auditRepo := repository.NewAuditLogRepository(gormDB)
	webhookEventRepo := repository.NewWebhookEventRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.SessionExpHrs)
	oauthClient := auth.NewGoogleOAuthClient(cfg.OAuth.Google)
	emailService := email.NewSMTPEmailService(cfg.Email, markdown.NewMarkdownService())
	modelClient := ai.NewClient(cfg.OpenAI, log)
	stripeClient := infrabilling.NewClient(cfg.Stripe, log)
	fetcher := webcontent.NewFetcher()
	rateLimiter := ratelimit.NewRedisRateLimiter(redisClient)

	enforcer, err := authz.NewEnforcer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to build capability enforcer: %w", err)
	}

	authHandler := handlers.NewAuthHandler(
		oauthClient,
		userusecases.NewSignInUseCase(userRepo, ledgerRepo, jwtService, emailService, txManager, cfg.Auth.OwnerOpenID, log),
		userusecases.NewGetProfileUseCase(userRepo, log),
		jwtService,
		cfg.Auth.Cookie,
		log,
	)

	recipeHandler := handlers.NewRecipeHandler(
		recipeusecases.NewCreateRecipeUseCase(recipeRepo, log),
		recipeusecases.NewGetRecipeUseCase(recipeRepo, log),
		recipeusecases.NewListRecipesUseCase(recipeRepo, log),
		recipeusecases.NewUpdateRecipeUseCase(recipeRepo, log),
		recipeusecases.NewDeleteRecipeUseCase(recipeRepo, log),
		recipeusecases.NewListCategoriesUseCase(recipeRepo, log),
		recipeusecases.NewListTrendingUseCase(recipeRepo, log),
		log,
	)

	engagementHandler := handlers.NewEngagementHandler(
		engagementusecases.NewCastVoteUseCase(voteRepo, recipeRepo, txManager, log),
		engagementusecases.NewToggleFavoriteUseCase(favoriteRepo, recipeRepo, txManager, log),
		engagementusecases.NewGetEngagementStatusUseCase(voteRepo, favoriteRepo, log),
		engagementusecases.NewListFavoritesUseCase(favoriteRepo, recipeRepo, log),
		log,
	)

	tokenHandler := handlers.NewTokenHandler(
		tokenusecases.NewGetBalanceUseCase(userRepo, log),
		tokenusecases.NewGetHistoryUseCase(ledgerRepo, log),
		log,
	)

	aiHandler := handlers.NewAIHandler(
		aiusecases.NewGenerateDrinkUseCase(userRepo, recipeRepo, ledgerRepo, creationRepo, modelClient, txManager, log),
		aiusecases.NewExtractFromURLUseCase(userRepo, recipeRepo, ledgerRepo, creationRepo, modelClient, fetcher, txManager, log),
		aiusecases.NewExtractFromImageUseCase(userRepo, recipeRepo, ledgerRepo, creationRepo, modelClient, txManager, log),
		aiusecases.NewEstimateNutritionUseCase(recipeRepo, modelClient, log),
		aiusecases.NewEstimatePriceUseCase(recipeRepo, modelClient, log),
		aiusecases.NewTasteMatchUseCase(userRepo, recipeRepo, modelClient, log),
		aiusecases.NewListCreationsUseCase(creationRepo, log),
		log,
	)

	billingHandler := handlers.NewBillingHandler(
		billingusecases.NewListProductsUseCase(),
		billingusecases.NewCreateCheckoutUseCase(stripeClient, cfg.Stripe, log),
		billingusecases.NewHandleWebhookUseCase(userRepo, ledgerRepo, webhookEventRepo, txManager, cfg.Stripe.WebhookSecret, log),
		log,
	)

	ticketHandler := handlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, log),
		log,
	)

	profileHandler := handlers.NewProfileHandler(
		userusecases.NewUpdatePreferencesUseCase(userRepo, log),
		log,
	)

	adminHandler := handlers.NewAdminHandler(
		adminusecases.NewGetStatsUseCase(userRepo, recipeRepo, ticketRepo, log),
		adminusecases.NewListUsersUseCase(userRepo, log),
		adminusecases.NewListAuditLogsUseCase(auditRepo, log),
		recipeusecases.NewListRecipesUseCase(recipeRepo, log),
		recipeusecases.NewModerateRecipeUseCase(recipeRepo, auditRepo, log),
		recipeusecases.NewDeleteRecipeUseCase(recipeRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewRespondTicketUseCase(ticketRepo, userRepo, emailService, log),
		ticketusecases.NewUpdateTicketStatusUseCase(ticketRepo, log),
		tokenusecases.NewGrantTokensUseCase(userRepo, ledgerRepo, auditRepo, txManager, log),
		log,
	)

	engine := routes.NewRouter(
		cfg.Server,
		routes.Handlers{
			Auth:       authHandler,
			Recipe:     recipeHandler,
			Engagement: engagementHandler,
			Token:      tokenHandler,
			AI:         aiHandler,
			Billing:    billingHandler,
			Ticket:     ticketHandler,
			Profile:    profileHandler,
			Admin:      adminHandler,
		},
		routes.Middleware{
			Auth:        middleware.NewAuthMiddleware(jwtService, log),
			AIRateLimit: middleware.NewAIRateLimiter(rateLimiter, cfg.AIRateLimit, log),
		},
		enforcer,
		log,
	)

	return engine, nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case constants.EnvProduction:
		return gin.ReleaseMode
	case constants.EnvTest:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
