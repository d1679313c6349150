// Package engagement holds the vote and favorite records that drive the
// denormalized recipe counters.
package engagement

import (
	"fmt"
	"time"
)

type VoteType string

const (
	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"
)

func (v VoteType) String() string {
	return string(v)
}

func (v VoteType) IsValid() bool {
	return v == VoteUp || v == VoteDown
}

type Vote struct {
	id        uint
	userID    uint
	recipeID  uint
	voteType  VoteType
	createdAt time.Time
}

func NewVote(userID, recipeID uint, voteType VoteType) (*Vote, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if recipeID == 0 {
		return nil, fmt.Errorf("recipe ID is required")
	}
	if !voteType.IsValid() {
		return nil, fmt.Errorf("invalid vote type: %s", voteType)
	}

	return &Vote{
		userID:    userID,
		recipeID:  recipeID,
		voteType:  voteType,
		createdAt: time.Now(),
	}, nil
}

func ReconstructVote(id, userID, recipeID uint, voteType VoteType, createdAt time.Time) (*Vote, error) {
	if id == 0 {
		return nil, fmt.Errorf("vote ID cannot be zero")
	}
	if !voteType.IsValid() {
		return nil, fmt.Errorf("invalid vote type: %s", voteType)
	}

	return &Vote{
		id:        id,
		userID:    userID,
		recipeID:  recipeID,
		voteType:  voteType,
		createdAt: createdAt,
	}, nil
}

func (v *Vote) ID() uint { return v.id }

func (v *Vote) UserID() uint { return v.userID }

func (v *Vote) RecipeID() uint { return v.recipeID }

func (v *Vote) Type() VoteType { return v.voteType }

func (v *Vote) CreatedAt() time.Time { return v.createdAt }

type Favorite struct {
	id        uint
	userID    uint
	recipeID  uint
	createdAt time.Time
}

func NewFavorite(userID, recipeID uint) (*Favorite, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if recipeID == 0 {
		return nil, fmt.Errorf("recipe ID is required")
	}

	return &Favorite{
		userID:    userID,
		recipeID:  recipeID,
		createdAt: time.Now(),
	}, nil
}

func ReconstructFavorite(id, userID, recipeID uint, createdAt time.Time) (*Favorite, error) {
	if id == 0 {
		return nil, fmt.Errorf("favorite ID cannot be zero")
	}

	return &Favorite{
		id:        id,
		userID:    userID,
		recipeID:  recipeID,
		createdAt: createdAt,
	}, nil
}

func (f *Favorite) ID() uint { return f.id }

func (f *Favorite) UserID() uint { return f.userID }

func (f *Favorite) RecipeID() uint { return f.recipeID }

func (f *Favorite) CreatedAt() time.Time { return f.createdAt }
