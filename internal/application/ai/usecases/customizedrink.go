package usecases

import (
	"context"

	"sips/internal/domain/aigen"
	"sips/internal/domain/ledger"
	"sips/internal/domain/recipe"
	"sips/internal/domain/user"
	"sips/internal/shared/constants"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type GenerateDrinkCommand struct {
	UserID      uint
	Preferences aigen.DrinkPreferences
}

type GenerateDrinkResult struct {
	Recipe     *recipe.Recipe
	TokensUsed int
}

// GenerateDrinkUseCase asks the model for a custom drink recipe. The user is
// only charged once the model output passes schema validation; the debit, the
// recipe, and the creation record are committed together.
type GenerateDrinkUseCase struct {
	userRepo     user.UserRepository
	recipeRepo   recipe.RecipeRepository
	ledgerRepo   ledger.LedgerRepository
	creationRepo aigen.CreationRepository
	modelClient  ModelClient
	txManager    TransactionManager
	logger       logger.Interface
}

func NewGenerateDrinkUseCase(
	userRepo user.UserRepository,
	recipeRepo recipe.RecipeRepository,
	ledgerRepo ledger.LedgerRepository,
	creationRepo aigen.CreationRepository,
	modelClient ModelClient,
	txManager TransactionManager,
	logger logger.Interface,
) *GenerateDrinkUseCase {
	return &GenerateDrinkUseCase{
		userRepo:     userRepo,
		recipeRepo:   recipeRepo,
		ledgerRepo:   ledgerRepo,
		creationRepo: creationRepo,
		modelClient:  modelClient,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *GenerateDrinkUseCase) Execute(ctx context.Context, cmd GenerateDrinkCommand) (*GenerateDrinkResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if err := cmd.Preferences.Validate(); err != nil {
		return nil, errors.NewValidationError("invalid drink preferences", err.Error())
	}

	requester, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if requester.Tokens() < constants.AIGenerationCost {
		return nil, errors.NewInsufficientBalanceError("insufficient token balance")
	}

	prompt := buildDrinkPrompt(requester, cmd.Preferences)

	raw, err := uc.modelClient.CompleteJSON(ctx, generateDrinkSystemPrompt, prompt)
	if err != nil {
		uc.logger.Errorw("drink generation request failed", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewUpstreamFailureError("drink generation failed")
	}

	draft, err := aigen.ParseRecipeDraft(raw)
	if err != nil {
		uc.logger.Errorw("drink generation produced invalid draft", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewUpstreamFailureError("drink generation produced an invalid recipe")
	}

	rec, err := recipeFromDraft(cmd.UserID, draft)
	if err != nil {
		return nil, errors.NewUpstreamFailureError("drink generation produced an invalid recipe", err.Error())
	}
	rec.SetProvenance("ai", "")

	err = persistGeneration(ctx, uc.txManager, uc.recipeRepo, uc.ledgerRepo, uc.creationRepo, cmd.UserID, prompt, cmd.Preferences.Inputs(), rec, "Drink generation")
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("drink generated", "user_id", cmd.UserID, "recipe_id", rec.ID())

	return &GenerateDrinkResult{Recipe: rec, TokensUsed: constants.AIGenerationCost}, nil
}

// persistGeneration commits the recipe, the token debit, and the creation
// record in one transaction. Shared with the extraction use cases.
func persistGeneration(
	ctx context.Context,
	txManager TransactionManager,
	recipeRepo recipe.RecipeRepository,
	ledgerRepo ledger.LedgerRepository,
	creationRepo aigen.CreationRepository,
	userID uint,
	prompt string,
	tasteInputs map[string]interface{},
	rec *recipe.Recipe,
	chargeDescription string,
) error {
	charge, err := ledger.NewTransaction(userID, -constants.AIGenerationCost, ledger.TypeUsage, chargeDescription)
	if err != nil {
		return err
	}

	creation, err := aigen.NewCreation(userID, prompt, tasteInputs, constants.AIGenerationCost)
	if err != nil {
		return err
	}

	return txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := recipeRepo.Save(txCtx, rec); err != nil {
			return err
		}
		if err := ledgerRepo.Debit(txCtx, charge); err != nil {
			return err
		}
		if err := creation.LinkRecipe(rec.ID()); err != nil {
			return err
		}
		return creationRepo.Save(txCtx, creation)
	})
}
