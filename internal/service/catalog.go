package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ladlehub/backend/internal/model"
	"github.com/ladlehub/backend/internal/types"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// RecipeScope selects the base candidate set of a catalog query.
type RecipeScope string

const (
	ScopeAll       RecipeScope = "all"
	ScopeOwn       RecipeScope = "own"
	ScopeByCreator RecipeScope = "creator"
	ScopeFavorites RecipeScope = "favorites"
)

// CatalogQuery is a catalog listing request. FilterValues are plain value
// strings, category-agnostic; every one of them must be attached to a
// recipe for it to match. Pages are 0-based.
type CatalogQuery struct {
	Scope        RecipeScope
	CreatorID    uuid.UUID // required for ScopeByCreator
	FilterValues []string
	Name         string
	Page         int
	PageSize     int
}

// CatalogService composes catalog listings in two stages: resolve the
// candidate set for the scope, then apply the predicates (conjunctive tag
// filter, name substring, own-recipe exclusion) in order. Keeping the
// predicates out of the SQL keeps each one testable on its own.
type CatalogService struct {
	db        *gorm.DB
	filters   *FilterService
	favorites *FavoriteService
	reviews   *ReviewService
}

func NewCatalogService(db *gorm.DB, filters *FilterService, favorites *FavoriteService, reviews *ReviewService) *CatalogService {
	return &CatalogService{
		db:        db,
		filters:   filters,
		favorites: favorites,
		reviews:   reviews,
	}
}

// ListRecipes resolves a catalog query for the given actor. It returns one
// page of enriched rows and the total size of the filtered result set.
func (s *CatalogService) ListRecipes(ctx context.Context, actorID uuid.UUID, q CatalogQuery) ([]types.RecipeSummary, int64, error) {
	if actorID == uuid.Nil {
		return nil, 0, fmt.Errorf("%w: no resolved identity", ErrUnauthorized)
	}

	candidates, err := s.resolveCandidates(ctx, actorID, q)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]model.Recipe, 0, len(candidates))
	for _, recipe := range candidates {
		if q.Scope == ScopeAll && recipe.UserID == actorID {
			continue
		}
		if q.Name != "" && !strings.Contains(strings.ToLower(recipe.Name), strings.ToLower(q.Name)) {
			continue
		}
		if len(q.FilterValues) > 0 {
			attached, err := s.filters.ValuesForRecipe(ctx, recipe.ID)
			if err != nil {
				return nil, 0, err
			}
			if !hasAllValues(attached, q.FilterValues) {
				continue
			}
		}
		filtered = append(filtered, recipe)
	}

	total := int64(len(filtered))
	page := paginate(filtered, q.Page, q.PageSize)

	summaries := make([]types.RecipeSummary, 0, len(page))
	for _, recipe := range page {
		summary, err := s.enrich(ctx, actorID, recipe)
		if err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, total, nil
}

// resolveCandidates fetches the scope's base set in listing order (newest
// first, id ascending on ties).
func (s *CatalogService) resolveCandidates(ctx context.Context, actorID uuid.UUID, q CatalogQuery) ([]model.Recipe, error) {
	query := s.db.WithContext(ctx).Model(&model.Recipe{}).Order("created_at desc, id asc")

	switch q.Scope {
	case ScopeAll:
	case ScopeOwn:
		query = query.Where("user_id = ?", actorID)
	case ScopeByCreator:
		if q.CreatorID == uuid.Nil {
			return nil, fmt.Errorf("%w: creator id is required for creator scope", ErrInvalidArgument)
		}
		query = query.Where("user_id = ?", q.CreatorID)
	case ScopeFavorites:
		ids, err := s.favorites.ListRecipeIDs(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, nil
		}
		query = query.Where("id IN ?", ids)
	default:
		return nil, fmt.Errorf("%w: unknown scope %q", ErrInvalidArgument, q.Scope)
	}

	var recipes []model.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// enrich attaches the derived, read-only fields callers render per row.
func (s *CatalogService) enrich(ctx context.Context, actorID uuid.UUID, recipe model.Recipe) (types.RecipeSummary, error) {
	avg, err := s.reviews.AverageRating(ctx, recipe.ID)
	if err != nil {
		return types.RecipeSummary{}, err
	}
	count, err := s.reviews.Count(ctx, recipe.ID)
	if err != nil {
		return types.RecipeSummary{}, err
	}
	isFavorite, err := s.favorites.IsFavorite(ctx, actorID, recipe.ID)
	if err != nil {
		return types.RecipeSummary{}, err
	}

	return types.RecipeSummary{
		ID:            recipe.ID,
		CreatorID:     recipe.UserID,
		Name:          recipe.Name,
		Description:   recipe.Description,
		ImageURL:      recipe.ImageURL,
		CreatedAt:     recipe.CreatedAt,
		AverageRating: avg,
		ReviewCount:   count,
		IsFavorite:    isFavorite,
		IsOwn:         recipe.UserID == actorID,
	}, nil
}

// hasAllValues reports whether every requested value string is among the
// attached filter values. The filter is conjunctive: a partial match
// excludes the recipe. Comparison is case-insensitive, matching the
// catalog's case-insensitive category lookup.
func hasAllValues(attached []model.FilterValue, requested []string) bool {
	for _, want := range requested {
		found := false
		for _, value := range attached {
			if strings.EqualFold(value.Value, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// paginate slices one 0-based page out of the filtered set. A page past
// the end is an empty page, never an error.
func paginate(recipes []model.Recipe, page, pageSize int) []model.Recipe {
	page, pageSize = normalizePage(page, pageSize)
	start := page * pageSize
	if start >= len(recipes) {
		return nil
	}
	end := start + pageSize
	if end > len(recipes) {
		end = len(recipes)
	}
	return recipes[start:end]
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
