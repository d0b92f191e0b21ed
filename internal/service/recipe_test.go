package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladlehub/backend/internal/model"
)

func TestCreateRecipe(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db)

	cook := createTestUser(t, db, "cook")

	created, err := recipes.Create(testCtx(), cook.ID, &model.Recipe{
		Name:        "Lentil Soup",
		Description: "hearty",
		Ingredients: model.JSONStringArray{"lentils", "water"},
		Steps:       model.JSONStringArray{"boil"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, cook.ID, created.UserID)

	_, err = recipes.Create(testCtx(), cook.ID, &model.Recipe{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUpdateRecipeOwnership(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db)

	cook := createTestUser(t, db, "cook")
	stranger := createTestUser(t, db, "stranger")
	recipe := createTestRecipe(t, db, cook.ID, "original")

	_, err := recipes.Update(testCtx(), recipe.ID, stranger.ID, &model.Recipe{Name: "hijacked"})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := recipes.Update(testCtx(), recipe.ID, cook.ID, &model.Recipe{
		Name:        "renamed",
		Description: "new",
		Ingredients: model.JSONStringArray{"pepper"},
		Steps:       model.JSONStringArray{"stir"},
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, cook.ID, updated.UserID)

	_, err = recipes.Update(testCtx(), uuid.New(), cook.ID, &model.Recipe{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRecipeCascades(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db)
	favorites := NewFavoriteService(db)
	reviews := NewReviewService(db)

	cook := createTestUser(t, db, "cook")
	fan := createTestUser(t, db, "fan")
	recipe := createTestRecipe(t, db, cook.ID, "doomed")

	attachTestValue(t, db, recipe.ID, "Diet", "vegan")
	require.NoError(t, favorites.Add(testCtx(), fan.ID, recipe.ID))
	_, err := reviews.Submit(testCtx(), fan.ID, recipe.ID, 4, "")
	require.NoError(t, err)

	err = recipes.Delete(testCtx(), recipe.ID, fan.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, recipes.Delete(testCtx(), recipe.ID, cook.ID))

	_, err = recipes.Get(testCtx(), recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	for _, dependent := range []any{&model.RecipeFilter{}, &model.Favorite{}, &model.Review{}} {
		var count int64
		require.NoError(t, db.Model(dependent).Count(&count).Error)
		assert.Zero(t, count)
	}

	// Catalog reference data is untouched.
	var values int64
	require.NoError(t, db.Model(&model.FilterValue{}).Count(&values).Error)
	assert.Equal(t, int64(1), values)
}

func TestListAllPaged(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db)

	cook := createTestUser(t, db, "cook")
	for i := 0; i < 5; i++ {
		createTestRecipe(t, db, cook.ID, fmt.Sprintf("recipe %d", i))
	}

	first, err := recipes.ListAll(testCtx(), 0, 3)
	require.NoError(t, err)
	assert.Len(t, first, 3)

	second, err := recipes.ListAll(testCtx(), 1, 3)
	require.NoError(t, err)
	assert.Len(t, second, 2)

	empty, err := recipes.ListAll(testCtx(), 2, 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListByCreator(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db)

	cook := createTestUser(t, db, "cook")
	other := createTestUser(t, db, "other")
	mine := createTestRecipe(t, db, cook.ID, "mine")
	createTestRecipe(t, db, other.ID, "theirs")

	found, err := recipes.ListByCreator(testCtx(), cook.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, mine.ID, found[0].ID)
}

func TestListByNameCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db)

	cook := createTestUser(t, db, "cook")
	match := createTestRecipe(t, db, cook.ID, "Chicken Tikka")
	createTestRecipe(t, db, cook.ID, "Beef Stew")

	found, err := recipes.ListByName(testCtx(), "TIKKA", 0, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, match.ID, found[0].ID)
}

func TestListTopByCreator(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db)
	reviews := NewReviewService(db)

	cook := createTestUser(t, db, "cook")
	rater := createTestUser(t, db, "rater")

	low := createTestRecipe(t, db, cook.ID, "low")
	high := createTestRecipe(t, db, cook.ID, "high")
	unrated := createTestRecipe(t, db, cook.ID, "unrated")

	_, err := reviews.Submit(testCtx(), rater.ID, low.ID, 2, "")
	require.NoError(t, err)
	_, err = reviews.Submit(testCtx(), rater.ID, high.ID, 5, "")
	require.NoError(t, err)

	top, err := recipes.ListTopByCreator(testCtx(), cook.ID, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, high.ID, top[0].ID)
	assert.Equal(t, low.ID, top[1].ID)

	all, err := recipes.ListTopByCreator(testCtx(), cook.ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, unrated.ID, all[2].ID)
}

func TestCountByCreator(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db)

	cook := createTestUser(t, db, "cook")
	other := createTestUser(t, db, "other")
	createTestRecipe(t, db, cook.ID, "one")
	createTestRecipe(t, db, cook.ID, "two")
	createTestRecipe(t, db, other.ID, "theirs")

	count, err := recipes.CountByCreator(testCtx(), cook.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
