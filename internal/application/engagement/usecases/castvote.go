package usecases

import (
	"context"

	"sips/internal/domain/engagement"
	"sips/internal/domain/recipe"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

type CastVoteCommand struct {
	UserID   uint
	RecipeID uint
	VoteType engagement.VoteType
}

type CastVoteResult struct {
	// UserVote is the vote in effect after the call, nil when the vote was
	// removed.
	UserVote *engagement.VoteType
}

// CastVoteUseCase implements the vote toggle: a first vote is recorded,
// repeating the same vote removes it, voting the other way switches it.
type CastVoteUseCase struct {
	voteRepo   engagement.VoteRepository
	recipeRepo recipe.RecipeRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewCastVoteUseCase(
	voteRepo engagement.VoteRepository,
	recipeRepo recipe.RecipeRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CastVoteUseCase {
	return &CastVoteUseCase{
		voteRepo:   voteRepo,
		recipeRepo: recipeRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *CastVoteUseCase) Execute(ctx context.Context, cmd CastVoteCommand) (*CastVoteResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.RecipeID == 0 {
		return nil, errors.NewValidationError("recipe ID is required")
	}
	if !cmd.VoteType.IsValid() {
		return nil, errors.NewValidationError("vote type must be up or down")
	}

	// The recipe must exist and be votable before any write happens.
	if _, err := uc.recipeRepo.GetByID(ctx, cmd.RecipeID); err != nil {
		return nil, err
	}

	result := &CastVoteResult{}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.voteRepo.GetByUserAndRecipe(txCtx, cmd.UserID, cmd.RecipeID)
		if err != nil && !errors.IsNotFoundError(err) {
			return err
		}

		switch {
		case existing == nil || errors.IsNotFoundError(err):
			vote, err := engagement.NewVote(cmd.UserID, cmd.RecipeID, cmd.VoteType)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.voteRepo.Insert(txCtx, vote); err != nil {
				return err
			}
			voteType := cmd.VoteType
			result.UserVote = &voteType

		case existing.Type() == cmd.VoteType:
			// Same direction again removes the vote.
			if err := uc.voteRepo.Remove(txCtx, existing); err != nil {
				return err
			}
			result.UserVote = nil

		default:
			if err := uc.voteRepo.Switch(txCtx, existing, cmd.VoteType); err != nil {
				return err
			}
			voteType := cmd.VoteType
			result.UserVote = &voteType
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to cast vote", "user_id", cmd.UserID, "recipe_id", cmd.RecipeID, "error", err)
		return nil, err
	}

	return result, nil
}
