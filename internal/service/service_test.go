package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ladlehub/backend/internal/database"
	"github.com/ladlehub/backend/internal/model"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// TranslateError is on, matching production, so unique-index violations
// surface as gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, nickname string) *model.User {
	t.Helper()

	user := &model.User{
		Nickname:     nickname,
		Email:        nickname + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestRecipe(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string) *model.Recipe {
	t.Helper()

	recipe := &model.Recipe{
		Name:        name,
		Description: "a " + name,
		Ingredients: model.JSONStringArray{"salt"},
		Steps:       model.JSONStringArray{"cook"},
		UserID:      ownerID,
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

// attachTestValue seeds a category/value pair if needed and attaches the
// value to the recipe, returning the value id.
func attachTestValue(t *testing.T, db *gorm.DB, recipeID uuid.UUID, category, value string) uuid.UUID {
	t.Helper()

	var cat model.FilterCategory
	err := db.Where("name = ?", category).First(&cat).Error
	if err == gorm.ErrRecordNotFound {
		cat = model.FilterCategory{Name: category}
		require.NoError(t, db.Create(&cat).Error)
	} else {
		require.NoError(t, err)
	}

	var val model.FilterValue
	err = db.Where("category_id = ? AND value = ?", cat.ID, value).First(&val).Error
	if err == gorm.ErrRecordNotFound {
		val = model.FilterValue{CategoryID: cat.ID, Value: value}
		require.NoError(t, db.Create(&val).Error)
	} else {
		require.NoError(t, err)
	}

	require.NoError(t, db.Create(&model.RecipeFilter{RecipeID: recipeID, FilterValueID: val.ID}).Error)
	return val.ID
}

func testCtx() context.Context {
	return context.Background()
}
