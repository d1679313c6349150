package usecases

import (
	"context"

	"sips/internal/domain/recipe"
	"sips/internal/domain/ticket"
	"sips/internal/domain/user"
	"sips/internal/shared/logger"
)

type Stats struct {
	TotalUsers   int64
	TotalRecipes int64
	OpenTickets  int64
}

// GetStatsUseCase assembles the dashboard counters.
type GetStatsUseCase struct {
	userRepo   user.UserRepository
	recipeRepo recipe.RecipeRepository
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetStatsUseCase(
	userRepo user.UserRepository,
	recipeRepo recipe.RecipeRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*Stats, error) {
	users, err := uc.userRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count users", "error", err)
		return nil, err
	}

	recipes, err := uc.recipeRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count recipes", "error", err)
		return nil, err
	}

	openStatus := ticket.StatusOpen
	_, openTickets, err := uc.ticketRepo.List(ctx, ticket.TicketFilter{
		Status:   &openStatus,
		Page:     1,
		PageSize: 1,
	})
	if err != nil {
		uc.logger.Errorw("failed to count open tickets", "error", err)
		return nil, err
	}

	return &Stats{
		TotalUsers:   users,
		TotalRecipes: recipes,
		OpenTickets:  openTickets,
	}, nil
}
