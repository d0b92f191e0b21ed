package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ladlehub/backend/internal/model"
)

// FollowService maintains the directed follower→creator edges.
type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// Follow creates the edge. Following yourself is rejected before any store
// access, regardless of whether either id exists.
func (s *FollowService) Follow(ctx context.Context, followerID, creatorID uuid.UUID) error {
	if followerID == creatorID {
		return fmt.Errorf("%w: cannot follow yourself", ErrInvalidArgument)
	}

	var creator model.User
	if err := s.db.WithContext(ctx).First(&creator, "id = ?", creatorID).Error; err != nil {
		return notFoundOr(err)
	}

	edge := model.Follower{FollowerID: followerID, CreatorID: creatorID}
	if err := s.db.WithContext(ctx).Create(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: already following", ErrAlreadyExists)
		}
		return err
	}
	return nil
}

// Unfollow removes the edge; an absent edge is ErrNotFound.
func (s *FollowService) Unfollow(ctx context.Context, followerID, creatorID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND creator_id = ?", followerID, creatorID).
		Delete(&model.Follower{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: not following", ErrNotFound)
	}
	return nil
}

// IsFollowing reports whether the edge exists.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, creatorID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Follower{}).
		Where("follower_id = ? AND creator_id = ?", followerID, creatorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFollowers returns the users following a creator, optionally narrowed
// by a case-insensitive nickname substring.
func (s *FollowService) ListFollowers(ctx context.Context, creatorID uuid.UUID, name string) ([]model.User, error) {
	return s.listEdgeUsers(ctx, "followers.creator_id = ?", creatorID, "followers.follower_id", name)
}

// ListFollows returns the creators a user follows, with the same optional
// nickname narrowing.
func (s *FollowService) ListFollows(ctx context.Context, followerID uuid.UUID, name string) ([]model.User, error) {
	return s.listEdgeUsers(ctx, "followers.follower_id = ?", followerID, "followers.creator_id", name)
}

func (s *FollowService) listEdgeUsers(ctx context.Context, where string, id uuid.UUID, joinCol, name string) ([]model.User, error) {
	query := s.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN followers ON "+joinCol+" = users.id").
		Where(where, id).
		Order("users.nickname asc")
	if name != "" {
		query = query.Where("LOWER(users.nickname) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var users []model.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CountFollowers returns the creator's follower count.
func (s *FollowService) CountFollowers(ctx context.Context, creatorID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Follower{}).
		Where("creator_id = ?", creatorID).
		Count(&count).Error
	return count, err
}

// CountFollows returns how many creators the user follows.
func (s *FollowService) CountFollows(ctx context.Context, followerID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Follower{}).
		Where("follower_id = ?", followerID).
		Count(&count).Error
	return count, err
}
