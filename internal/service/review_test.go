package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladlehub/backend/internal/model"
)

func TestSubmitReviewUpserts(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)

	cook := createTestUser(t, db, "cook")
	author := createTestUser(t, db, "author")
	recipe := createTestRecipe(t, db, cook.ID, "soup")

	first, err := reviews.Submit(testCtx(), author.ID, recipe.ID, 2, "meh")
	require.NoError(t, err)

	second, err := reviews.Submit(testCtx(), author.ID, recipe.ID, 5, "grew on me")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Rating)
	assert.Equal(t, "grew on me", second.Text)

	count, err := reviews.Count(testCtx(), recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubmitReviewValidation(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)

	cook := createTestUser(t, db, "cook")
	author := createTestUser(t, db, "author")
	recipe := createTestRecipe(t, db, cook.ID, "soup")

	_, err := reviews.Submit(testCtx(), author.ID, recipe.ID, 0, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = reviews.Submit(testCtx(), author.ID, recipe.ID, 6, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = reviews.Submit(testCtx(), author.ID, uuid.New(), 4, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAverageRating(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)

	cook := createTestUser(t, db, "cook")
	recipe := createTestRecipe(t, db, cook.ID, "soup")

	avg, err := reviews.AverageRating(testCtx(), recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	for i, rating := range []int{5, 3, 4} {
		author := createTestUser(t, db, "rater"+string(rune('a'+i)))
		_, err := reviews.Submit(testCtx(), author.ID, recipe.ID, rating, "")
		require.NoError(t, err)
	}

	avg, err = reviews.AverageRating(testCtx(), recipe.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 0.001)
}

func TestListByRecipeSentiment(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)

	cook := createTestUser(t, db, "cook")
	recipe := createTestRecipe(t, db, cook.ID, "soup")

	ratings := []int{1, 2, 3, 4, 5}
	for i, rating := range ratings {
		author := createTestUser(t, db, "rater"+string(rune('a'+i)))
		_, err := reviews.Submit(testCtx(), author.ID, recipe.ID, rating, "")
		require.NoError(t, err)
	}

	positive, total, err := reviews.ListByRecipe(testCtx(), recipe.ID, ReviewQuery{Sentiment: "positive"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, r := range positive {
		assert.GreaterOrEqual(t, r.Rating, PositiveRatingThreshold)
	}

	negative, total, err := reviews.ListByRecipe(testCtx(), recipe.ID, ReviewQuery{Sentiment: "negative"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, r := range negative {
		assert.Less(t, r.Rating, PositiveRatingThreshold)
	}

	_, _, err = reviews.ListByRecipe(testCtx(), recipe.ID, ReviewQuery{Sentiment: "lukewarm"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestListByRecipeOrdering(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)

	cook := createTestUser(t, db, "cook")
	recipe := createTestRecipe(t, db, cook.ID, "soup")

	for i, rating := range []int{3, 1, 5, 2, 4} {
		author := createTestUser(t, db, "rater"+string(rune('a'+i)))
		_, err := reviews.Submit(testCtx(), author.ID, recipe.ID, rating, "")
		require.NoError(t, err)
	}

	asc, _, err := reviews.ListByRecipe(testCtx(), recipe.ID, ReviewQuery{OrderBy: "rating"})
	require.NoError(t, err)
	require.Len(t, asc, 5)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Rating, asc[i].Rating)
	}

	desc, _, err := reviews.ListByRecipe(testCtx(), recipe.ID, ReviewQuery{OrderBy: "rating", Desc: true})
	require.NoError(t, err)
	require.Len(t, desc, 5)
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Rating, desc[i].Rating)
	}

	_, _, err = reviews.ListByRecipe(testCtx(), recipe.ID, ReviewQuery{OrderBy: "author_id"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestListByRecipePagination(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)

	cook := createTestUser(t, db, "cook")
	recipe := createTestRecipe(t, db, cook.ID, "soup")

	for i := 0; i < 5; i++ {
		author := createTestUser(t, db, "rater"+string(rune('a'+i)))
		_, err := reviews.Submit(testCtx(), author.ID, recipe.ID, 4, "")
		require.NoError(t, err)
	}

	seen := make(map[uuid.UUID]bool)
	for page := 0; ; page++ {
		rows, total, err := reviews.ListByRecipe(testCtx(), recipe.ID, ReviewQuery{Page: page, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		if len(rows) == 0 {
			break
		}
		for _, r := range rows {
			assert.False(t, seen[r.ID])
			seen[r.ID] = true
		}
	}
	assert.Len(t, seen, 5)
}

func TestGetByAuthorAbsence(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)

	cook := createTestUser(t, db, "cook")
	author := createTestUser(t, db, "author")
	recipe := createTestRecipe(t, db, cook.ID, "soup")

	review, err := reviews.GetByAuthor(testCtx(), recipe.ID, author.ID)
	require.NoError(t, err)
	assert.Nil(t, review)

	submitted, err := reviews.Submit(testCtx(), author.ID, recipe.ID, 4, "")
	require.NoError(t, err)

	review, err = reviews.GetByAuthor(testCtx(), recipe.ID, author.ID)
	require.NoError(t, err)
	require.NotNil(t, review)
	assert.Equal(t, submitted.ID, review.ID)
}

func TestDeleteReviewOwnership(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)

	cook := createTestUser(t, db, "cook")
	author := createTestUser(t, db, "author")
	stranger := createTestUser(t, db, "stranger")
	recipe := createTestRecipe(t, db, cook.ID, "soup")

	review, err := reviews.Submit(testCtx(), author.ID, recipe.ID, 4, "")
	require.NoError(t, err)

	err = reviews.Delete(testCtx(), review.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, reviews.Delete(testCtx(), review.ID, author.ID))

	err = reviews.Delete(testCtx(), review.ID, author.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}
