package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ladlehub/backend/internal/model"
)

// FavoriteService maintains the user→recipe favorite edges.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Add creates the favorite edge. The unique index is the arbiter under
// concurrent identical adds; the duplicate-key error from the losing insert
// surfaces as ErrAlreadyExists.
func (s *FavoriteService) Add(ctx context.Context, userID, recipeID uuid.UUID) error {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		return notFoundOr(err)
	}

	fav := model.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(&fav).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: recipe already in favorites", ErrAlreadyExists)
		}
		return err
	}
	return nil
}

// Remove deletes the favorite edge; removing an absent edge is ErrNotFound.
func (s *FavoriteService) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: recipe not in favorites", ErrNotFound)
	}
	return nil
}

// IsFavorite reports whether the edge exists.
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListRecipeIDs returns the ids of the user's favorited recipes, oldest
// favorite first.
func (s *FavoriteService) ListRecipeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var favorites []model.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(favorites))
	for i, f := range favorites {
		ids[i] = f.RecipeID
	}
	return ids, nil
}

// CountForRecipe returns how many users favorited the recipe.
func (s *FavoriteService) CountForRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	return count, err
}
