package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ladlehub/backend/internal/model"
	"github.com/ladlehub/backend/internal/types"
)

// ProfileService builds public creator profiles. The counts are derived
// from the recipe and follower tables on every call, never persisted.
type ProfileService struct {
	db      *gorm.DB
	recipes *RecipeService
	follows *FollowService
}

func NewProfileService(db *gorm.DB, recipes *RecipeService, follows *FollowService) *ProfileService {
	return &ProfileService{
		db:      db,
		recipes: recipes,
		follows: follows,
	}
}

// GetCreator returns the public profile of a creator.
func (s *ProfileService) GetCreator(ctx context.Context, creatorID uuid.UUID) (*types.CreatorProfile, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", creatorID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	recipeCount, err := s.recipes.CountByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	followerCount, err := s.follows.CountFollowers(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	followCount, err := s.follows.CountFollows(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	return &types.CreatorProfile{
		ID:            user.ID,
		Nickname:      user.Nickname,
		ImageURL:      user.ImageURL,
		RecipeCount:   recipeCount,
		FollowerCount: followerCount,
		FollowCount:   followCount,
	}, nil
}
