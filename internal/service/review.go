package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ladlehub/backend/internal/model"
)

// PositiveRatingThreshold splits reviews into positive (rating >= threshold)
// and negative (rating < threshold) listings.
const PositiveRatingThreshold = 3

// ReviewQuery narrows and orders a per-recipe review listing. OrderBy is
// "created_at" (default) or "rating"; ties always break by review id
// ascending so pagination stays deterministic.
type ReviewQuery struct {
	Sentiment string // "", "positive" or "negative"
	OrderBy   string
	Desc      bool
	Page      int
	PageSize  int
}

// ReviewService is the review ledger: one review per (recipe, author),
// aggregates recomputed from live rows on every call.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Submit creates the author's review for a recipe, or updates it in place
// if one already exists.
func (s *ReviewService) Submit(ctx context.Context, authorID, recipeID uuid.UUID, rating int, text string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidArgument)
	}

	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	var existing model.Review
	err := s.db.WithContext(ctx).
		Where("recipe_id = ? AND author_id = ?", recipeID, authorID).
		First(&existing).Error
	if err == nil {
		existing.Rating = rating
		existing.Text = text
		if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := model.Review{
		RecipeID: recipeID,
		AuthorID: authorID,
		Rating:   rating,
		Text:     text,
	}
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent submit from the same author;
			// fall through to the update path.
			return s.Submit(ctx, authorID, recipeID, rating, text)
		}
		return nil, err
	}
	return &review, nil
}

// Get returns a review by id.
func (s *ReviewService) Get(ctx context.Context, reviewID uuid.UUID) (*model.Review, error) {
	var review model.Review
	if err := s.db.WithContext(ctx).First(&review, "id = ?", reviewID).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &review, nil
}

// GetByAuthor returns the author's review for a recipe, or (nil, nil) when
// there is none; absence is a normal outcome, not an error.
func (s *ReviewService) GetByAuthor(ctx context.Context, recipeID, authorID uuid.UUID) (*model.Review, error) {
	var review model.Review
	err := s.db.WithContext(ctx).
		Where("recipe_id = ? AND author_id = ?", recipeID, authorID).
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes a review; only its author may do so.
func (s *ReviewService) Delete(ctx context.Context, reviewID, actorID uuid.UUID) error {
	var review model.Review
	if err := s.db.WithContext(ctx).First(&review, "id = ?", reviewID).Error; err != nil {
		return notFoundOr(err)
	}
	if review.AuthorID != actorID {
		return fmt.Errorf("%w: not the review author", ErrForbidden)
	}
	return s.db.WithContext(ctx).Delete(&model.Review{}, "id = ?", reviewID).Error
}

// ListByRecipe returns one page of a recipe's reviews plus the total count
// of rows matching the query. Pages are 0-based; a page past the end is an
// empty page.
func (s *ReviewService) ListByRecipe(ctx context.Context, recipeID uuid.UUID, q ReviewQuery) ([]model.Review, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Review{}).Where("recipe_id = ?", recipeID)

	switch q.Sentiment {
	case "":
	case "positive":
		query = query.Where("rating >= ?", PositiveRatingThreshold)
	case "negative":
		query = query.Where("rating < ?", PositiveRatingThreshold)
	default:
		return nil, 0, fmt.Errorf("%w: unknown sentiment %q", ErrInvalidArgument, q.Sentiment)
	}

	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = "created_at"
	}
	if orderBy != "created_at" && orderBy != "rating" {
		return nil, 0, fmt.Errorf("%w: cannot order reviews by %q", ErrInvalidArgument, orderBy)
	}
	direction := "asc"
	if q.Desc {
		direction = "desc"
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := normalizePage(q.Page, q.PageSize)
	var reviews []model.Review
	err := query.
		Order(orderBy + " " + direction + ", id asc").
		Limit(pageSize).
		Offset(page * pageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// AverageRating returns the live mean rating of a recipe, 0.0 with no
// reviews.
func (s *ReviewService) AverageRating(ctx context.Context, recipeID uuid.UUID) (float64, error) {
	var row struct {
		Average float64
	}
	err := s.db.WithContext(ctx).Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) as average").
		Where("recipe_id = ?", recipeID).
		Scan(&row).Error
	if err != nil {
		return 0, err
	}
	return row.Average, nil
}

// Count returns the recipe's review count.
func (s *ReviewService) Count(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Review{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	return count, err
}
