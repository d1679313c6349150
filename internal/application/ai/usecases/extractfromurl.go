package usecases

import (
	"context"
	"net/url"

	"sips/internal/domain/aigen"
	"sips/internal/domain/ledger"
	"sips/internal/domain/recipe"
	"sips/internal/domain/user"
	"sips/internal/shared/constants"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type ExtractFromURLCommand struct {
	UserID uint
	URL    string
}

// ExtractFromURLUseCase pulls a drink recipe out of a web page, e.g. a viral
// social media post. The page text is fetched server-side and handed to the
// model; the user is charged once the extracted draft validates.
type ExtractFromURLUseCase struct {
	userRepo     user.UserRepository
	recipeRepo   recipe.RecipeRepository
	ledgerRepo   ledger.LedgerRepository
	creationRepo aigen.CreationRepository
	modelClient  ModelClient
	fetcher      ContentFetcher
	txManager    TransactionManager
	logger       logger.Interface
}

func NewExtractFromURLUseCase(
	userRepo user.UserRepository,
	recipeRepo recipe.RecipeRepository,
	ledgerRepo ledger.LedgerRepository,
	creationRepo aigen.CreationRepository,
	modelClient ModelClient,
	fetcher ContentFetcher,
	txManager TransactionManager,
	logger logger.Interface,
) *ExtractFromURLUseCase {
	return &ExtractFromURLUseCase{
		userRepo:     userRepo,
		recipeRepo:   recipeRepo,
		ledgerRepo:   ledgerRepo,
		creationRepo: creationRepo,
		modelClient:  modelClient,
		fetcher:      fetcher,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *ExtractFromURLUseCase) Execute(ctx context.Context, cmd ExtractFromURLCommand) (*GenerateDrinkResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	parsed, err := url.Parse(cmd.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, errors.NewValidationError("a valid http or https URL is required")
	}

	requester, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if requester.Tokens() < constants.AIGenerationCost {
		return nil, errors.NewInsufficientBalanceError("insufficient token balance")
	}

	pageText, err := uc.fetcher.FetchText(ctx, cmd.URL)
	if err != nil {
		uc.logger.Errorw("failed to fetch page for extraction", "url", cmd.URL, "error", err)
		return nil, errors.NewUpstreamFailureError("failed to fetch the page")
	}

	raw, err := uc.modelClient.CompleteJSON(ctx, extractRecipeSystemPrompt, pageText)
	if err != nil {
		uc.logger.Errorw("recipe extraction request failed", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewUpstreamFailureError("recipe extraction failed")
	}

	draft, err := aigen.ParseRecipeDraft(raw)
	if err != nil {
		uc.logger.Errorw("recipe extraction produced invalid draft", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewUpstreamFailureError("no recipe could be extracted from the page")
	}

	rec, err := recipeFromDraft(cmd.UserID, draft)
	if err != nil {
		return nil, errors.NewUpstreamFailureError("no recipe could be extracted from the page", err.Error())
	}
	rec.SetProvenance("import", cmd.URL)

	err = persistGeneration(ctx, uc.txManager, uc.recipeRepo, uc.ledgerRepo, uc.creationRepo, cmd.UserID, cmd.URL, nil, rec, "Recipe extraction")
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("recipe extracted from url", "user_id", cmd.UserID, "recipe_id", rec.ID())

	return &GenerateDrinkResult{Recipe: rec, TokensUsed: constants.AIGenerationCost}, nil
}
