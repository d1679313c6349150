package usecases

import (
	"context"

	"sips/internal/domain/user"
	"sips/internal/shared/authorization"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

type ListUsersQuery struct {
	Role     string
	Tier     string
	Search   string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []*user.User
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := user.UserFilter{
		Search:   query.Search,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if query.Role != "" {
		role := authorization.ParseUserRole(query.Role)
		if role.String() != query.Role {
			return nil, errors.NewValidationError("invalid role: " + query.Role)
		}
		roleStr := role.String()
		filter.Role = &roleStr
	}
	if query.Tier != "" {
		tier := user.SubscriptionTier(query.Tier)
		if !tier.IsValid() {
			return nil, errors.NewValidationError("invalid tier: " + query.Tier)
		}
		filter.Tier = &tier
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return &ListUsersResult{
		Users:    users,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
