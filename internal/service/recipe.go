package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ladlehub/backend/internal/model"
)

// RecipeService is the recipe catalog: ownership-guarded CRUD plus the
// paginated listings the query composer draws candidates from.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Create inserts a new recipe owned by creatorID.
func (s *RecipeService) Create(ctx context.Context, creatorID uuid.UUID, recipe *model.Recipe) (*model.Recipe, error) {
	if recipe.Name == "" {
		return nil, fmt.Errorf("%w: recipe name is required", ErrInvalidArgument)
	}
	recipe.ID = uuid.Nil
	recipe.UserID = creatorID
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// Get returns a recipe by id.
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &recipe, nil
}

// Update replaces the mutable fields of a recipe. Only the owner may
// update, and ownership itself is immutable.
func (s *RecipeService) Update(ctx context.Context, id, actorID uuid.UUID, updated *model.Recipe) (*model.Recipe, error) {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != actorID {
		return nil, fmt.Errorf("%w: not the recipe owner", ErrForbidden)
	}

	recipe.Name = updated.Name
	recipe.Description = updated.Description
	recipe.ImageURL = updated.ImageURL
	recipe.Ingredients = updated.Ingredients
	recipe.Steps = updated.Steps
	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// Delete removes a recipe and everything hanging off it: filter
// attachments, favorite edges and reviews go first, inside one transaction,
// so a failure never leaves orphaned dependents.
func (s *RecipeService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if recipe.UserID != actorID {
		return fmt.Errorf("%w: not the recipe owner", ErrForbidden)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeFilter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Recipe{}, "id = ?", id).Error
	})
}

// ListAll returns one page of the whole catalog in listing order.
func (s *RecipeService) ListAll(ctx context.Context, page, pageSize int) ([]model.Recipe, error) {
	return s.list(ctx, s.db.WithContext(ctx).Model(&model.Recipe{}), page, pageSize)
}

// ListByCreator returns one page of a single creator's recipes.
func (s *RecipeService) ListByCreator(ctx context.Context, creatorID uuid.UUID, page, pageSize int) ([]model.Recipe, error) {
	query := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("user_id = ?", creatorID)
	return s.list(ctx, query, page, pageSize)
}

// ListByName returns one page of recipes whose name contains the substring,
// case-insensitively.
func (s *RecipeService) ListByName(ctx context.Context, substring string, page, pageSize int) ([]model.Recipe, error) {
	like := "%" + strings.ToLower(substring) + "%"
	query := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("LOWER(name) LIKE ?", like)
	return s.list(ctx, query, page, pageSize)
}

// ListTopByCreator returns the creator's recipes ranked by average review
// rating, ties broken by review count and then recipe id.
func (s *RecipeService) ListTopByCreator(ctx context.Context, creatorID uuid.UUID, limit int) ([]model.Recipe, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).Model(&model.Recipe{}).
		Select("recipes.*, COALESCE(AVG(reviews.rating), 0) as avg_rating, COUNT(reviews.id) as review_count").
		Joins("LEFT JOIN reviews ON reviews.recipe_id = recipes.id").
		Where("recipes.user_id = ?", creatorID).
		Group("recipes.id").
		Order("avg_rating desc, review_count desc, recipes.id asc").
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// CountByCreator returns how many recipes the creator has published.
func (s *RecipeService) CountByCreator(ctx context.Context, creatorID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Recipe{}).
		Where("user_id = ?", creatorID).
		Count(&count).Error
	return count, err
}

// list applies the catalog's stable listing order: newest first, recipe id
// ascending on ties.
func (s *RecipeService) list(ctx context.Context, query *gorm.DB, page, pageSize int) ([]model.Recipe, error) {
	page, pageSize = normalizePage(page, pageSize)
	var recipes []model.Recipe
	err := query.
		Order("created_at desc, id asc").
		Limit(pageSize).
		Offset(page * pageSize).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
