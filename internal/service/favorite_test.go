package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavorite(t *testing.T) {
	db := setupTestDB(t)
	favorites := NewFavoriteService(db)

	user := createTestUser(t, db, "user")
	cook := createTestUser(t, db, "cook")
	recipe := createTestRecipe(t, db, cook.ID, "pie")

	require.NoError(t, favorites.Add(testCtx(), user.ID, recipe.ID))

	isFav, err := favorites.IsFavorite(testCtx(), user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, isFav)

	err = favorites.Add(testCtx(), user.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	err = favorites.Add(testCtx(), user.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveFavorite(t *testing.T) {
	db := setupTestDB(t)
	favorites := NewFavoriteService(db)

	user := createTestUser(t, db, "user")
	cook := createTestUser(t, db, "cook")
	recipe := createTestRecipe(t, db, cook.ID, "pie")

	err := favorites.Remove(testCtx(), user.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, favorites.Add(testCtx(), user.ID, recipe.ID))
	require.NoError(t, favorites.Remove(testCtx(), user.ID, recipe.ID))

	isFav, err := favorites.IsFavorite(testCtx(), user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, isFav)
}

func TestListRecipeIDsAndCount(t *testing.T) {
	db := setupTestDB(t)
	favorites := NewFavoriteService(db)

	user := createTestUser(t, db, "user")
	cook := createTestUser(t, db, "cook")

	first := createTestRecipe(t, db, cook.ID, "first")
	second := createTestRecipe(t, db, cook.ID, "second")
	createTestRecipe(t, db, cook.ID, "unliked")

	require.NoError(t, favorites.Add(testCtx(), user.ID, first.ID))
	require.NoError(t, favorites.Add(testCtx(), user.ID, second.ID))

	ids, err := favorites.ListRecipeIDs(testCtx(), user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, ids)

	count, err := favorites.CountForRecipe(testCtx(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
