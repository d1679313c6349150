package mappers

import (
	"sips/internal/domain/engagement"
	"sips/internal/infrastructure/persistence/models"
)

// EngagementMapper handles the conversion between vote and favorite domain
// entities and their persistence models.
type EngagementMapper interface {
	// VoteToModel converts a vote domain entity to a persistence model.
	VoteToModel(v *engagement.Vote) *models.VoteModel

	// VoteToDomain converts a vote persistence model to a domain entity.
	VoteToDomain(model *models.VoteModel) (*engagement.Vote, error)

	// FavoriteToModel converts a favorite domain entity to a persistence model.
	FavoriteToModel(f *engagement.Favorite) *models.FavoriteModel

	// FavoriteToDomain converts a favorite persistence model to a domain entity.
	FavoriteToDomain(model *models.FavoriteModel) (*engagement.Favorite, error)
}

// EngagementMapperImpl is the concrete implementation of EngagementMapper.
type EngagementMapperImpl struct{}

// NewEngagementMapper creates a new EngagementMapper.
func NewEngagementMapper() EngagementMapper {
	return &EngagementMapperImpl{}
}

// VoteToModel converts a vote domain entity to a persistence model.
func (m *EngagementMapperImpl) VoteToModel(v *engagement.Vote) *models.VoteModel {
	return &models.VoteModel{
		ID:        v.ID(),
		UserID:    v.UserID(),
		RecipeID:  v.RecipeID(),
		VoteType:  v.Type().String(),
		CreatedAt: v.CreatedAt().UnixMilli(),
	}
}

// VoteToDomain converts a vote persistence model to a domain entity.
func (m *EngagementMapperImpl) VoteToDomain(model *models.VoteModel) (*engagement.Vote, error) {
	return engagement.ReconstructVote(
		model.ID,
		model.UserID,
		model.RecipeID,
		engagement.VoteType(model.VoteType),
		convertMillisToTime(model.CreatedAt),
	)
}

// FavoriteToModel converts a favorite domain entity to a persistence model.
func (m *EngagementMapperImpl) FavoriteToModel(f *engagement.Favorite) *models.FavoriteModel {
	return &models.FavoriteModel{
		ID:        f.ID(),
		UserID:    f.UserID(),
		RecipeID:  f.RecipeID(),
		CreatedAt: f.CreatedAt().UnixMilli(),
	}
}

// FavoriteToDomain converts a favorite persistence model to a domain entity.
func (m *EngagementMapperImpl) FavoriteToDomain(model *models.FavoriteModel) (*engagement.Favorite, error) {
	return engagement.ReconstructFavorite(
		model.ID,
		model.UserID,
		model.RecipeID,
		convertMillisToTime(model.CreatedAt),
	)
}
