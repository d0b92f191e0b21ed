package database

import (
	"gorm.io/gorm"

	"github.com/ladlehub/backend/internal/model"
)

// AutoMigrate creates or updates the schema for every catalog model,
// including the composite unique indexes the ledgers depend on.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Recipe{},
		&model.FilterCategory{},
		&model.FilterValue{},
		&model.RecipeFilter{},
		&model.Favorite{},
		&model.Follower{},
		&model.Review{},
	)
}
