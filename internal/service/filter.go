package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ladlehub/backend/internal/model"
)

// FilterService is the tag catalog: filter categories, their values, and
// the attachments binding values to recipes.
type FilterService struct {
	db *gorm.DB
}

func NewFilterService(db *gorm.DB) *FilterService {
	return &FilterService{db: db}
}

// ListCategories returns all filter categories ordered by name.
func (s *FilterService) ListCategories(ctx context.Context) ([]model.FilterCategory, error) {
	var categories []model.FilterCategory
	if err := s.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByName looks a category up case-insensitively.
func (s *FilterService) GetCategoryByName(ctx context.Context, name string) (*model.FilterCategory, error) {
	var category model.FilterCategory
	err := s.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &category, nil
}

// ListValues returns the values of one category.
func (s *FilterService) ListValues(ctx context.Context, categoryID uuid.UUID) ([]model.FilterValue, error) {
	var category model.FilterCategory
	if err := s.db.WithContext(ctx).First(&category, "id = ?", categoryID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	var values []model.FilterValue
	if err := s.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("value asc").Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// ListGrouped returns every filter value keyed by its category name.
func (s *FilterService) ListGrouped(ctx context.Context) (map[string][]string, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]string, len(categories))
	for _, c := range categories {
		var values []model.FilterValue
		if err := s.db.WithContext(ctx).Where("category_id = ?", c.ID).Order("value asc").Find(&values).Error; err != nil {
			return nil, err
		}
		strs := make([]string, len(values))
		for i, v := range values {
			strs[i] = v.Value
		}
		grouped[c.Name] = strs
	}
	return grouped, nil
}

// ValuesForRecipe returns the filter values attached to a recipe. Attachments
// are keyed by recipe id, regardless of how the recipe was reached.
func (s *FilterService) ValuesForRecipe(ctx context.Context, recipeID uuid.UUID) ([]model.FilterValue, error) {
	var values []model.FilterValue
	err := s.db.WithContext(ctx).
		Joins("JOIN recipe_filters rf ON rf.filter_value_id = filter_values.id").
		Where("rf.recipe_id = ?", recipeID).
		Order("filter_values.value asc").
		Find(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

// AttachValues attaches filter values to a recipe. Only the owner may
// mutate attachments. Attaching an already-attached value is a no-op.
func (s *FilterService) AttachValues(ctx context.Context, recipeID, actorID uuid.UUID, valueIDs []uuid.UUID) error {
	recipe, err := s.ownedRecipe(ctx, recipeID, actorID)
	if err != nil {
		return err
	}

	for _, valueID := range valueIDs {
		var value model.FilterValue
		if err := s.db.WithContext(ctx).First(&value, "id = ?", valueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: filter value %s", ErrNotFound, valueID)
			}
			return err
		}

		attachment := model.RecipeFilter{RecipeID: recipe.ID, FilterValueID: valueID}
		if err := s.db.WithContext(ctx).Create(&attachment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return err
		}
	}
	return nil
}

// DetachValues removes the given attachments; with no ids it clears all of
// the recipe's attachments.
func (s *FilterService) DetachValues(ctx context.Context, recipeID, actorID uuid.UUID, valueIDs []uuid.UUID) error {
	recipe, err := s.ownedRecipe(ctx, recipeID, actorID)
	if err != nil {
		return err
	}

	query := s.db.WithContext(ctx).Where("recipe_id = ?", recipe.ID)
	if len(valueIDs) > 0 {
		query = query.Where("filter_value_id IN ?", valueIDs)
	}
	return query.Delete(&model.RecipeFilter{}).Error
}

func (s *FilterService) ownedRecipe(ctx context.Context, recipeID, actorID uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		return nil, notFoundOr(err)
	}
	if recipe.UserID != actorID {
		return nil, fmt.Errorf("%w: not the recipe owner", ErrForbidden)
	}
	return &recipe, nil
}
