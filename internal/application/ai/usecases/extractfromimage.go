package usecases

import (
	"context"
	"strings"

	"sips/internal/domain/aigen"
	"sips/internal/domain/ledger"
	"sips/internal/domain/recipe"
	"sips/internal/domain/user"
	"sips/internal/shared/constants"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type ExtractFromImageCommand struct {
	UserID uint
	// Image is an http(s) URL or a base64 data URL.
	Image string
	Hint  string
}

// ExtractFromImageUseCase reconstructs a drink recipe from a photo, e.g. a
// menu board or a drink someone posted. Uses the vision model; the user is
// charged once the draft validates.
type ExtractFromImageUseCase struct {
	userRepo     user.UserRepository
	recipeRepo   recipe.RecipeRepository
	ledgerRepo   ledger.LedgerRepository
	creationRepo aigen.CreationRepository
	modelClient  ModelClient
	txManager    TransactionManager
	logger       logger.Interface
}

func NewExtractFromImageUseCase(
	userRepo user.UserRepository,
	recipeRepo recipe.RecipeRepository,
	ledgerRepo ledger.LedgerRepository,
	creationRepo aigen.CreationRepository,
	modelClient ModelClient,
	txManager TransactionManager,
	logger logger.Interface,
) *ExtractFromImageUseCase {
	return &ExtractFromImageUseCase{
		userRepo:     userRepo,
		recipeRepo:   recipeRepo,
		ledgerRepo:   ledgerRepo,
		creationRepo: creationRepo,
		modelClient:  modelClient,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *ExtractFromImageUseCase) Execute(ctx context.Context, cmd ExtractFromImageCommand) (*GenerateDrinkResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if !strings.HasPrefix(cmd.Image, "http://") &&
		!strings.HasPrefix(cmd.Image, "https://") &&
		!strings.HasPrefix(cmd.Image, "data:image/") {
		return nil, errors.NewValidationError("image must be a URL or a data URL")
	}

	requester, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if requester.Tokens() < constants.AIGenerationCost {
		return nil, errors.NewInsufficientBalanceError("insufficient token balance")
	}

	userPrompt := "Reconstruct the recipe for the drink in this photo."
	if cmd.Hint != "" {
		userPrompt += " Hint: " + cmd.Hint
	}

	raw, err := uc.modelClient.CompleteJSONWithImage(ctx, extractImageSystemPrompt, userPrompt, cmd.Image)
	if err != nil {
		uc.logger.Errorw("image extraction request failed", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewUpstreamFailureError("image extraction failed")
	}

	draft, err := aigen.ParseRecipeDraft(raw)
	if err != nil {
		uc.logger.Errorw("image extraction produced invalid draft", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewUpstreamFailureError("no recipe could be identified in the image")
	}

	rec, err := recipeFromDraft(cmd.UserID, draft)
	if err != nil {
		return nil, errors.NewUpstreamFailureError("no recipe could be identified in the image", err.Error())
	}
	rec.SetProvenance("import", "")

	prompt := "Image extraction"
	if cmd.Hint != "" {
		prompt = "Image extraction: " + cmd.Hint
	}
	err = persistGeneration(ctx, uc.txManager, uc.recipeRepo, uc.ledgerRepo, uc.creationRepo, cmd.UserID, prompt, nil, rec, "Recipe extraction")
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("recipe extracted from image", "user_id", cmd.UserID, "recipe_id", rec.ID())

	return &GenerateDrinkResult{Recipe: rec, TokensUsed: constants.AIGenerationCost}, nil
}
