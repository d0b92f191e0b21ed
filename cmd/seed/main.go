package main

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ladlehub/backend/config"
	"github.com/ladlehub/backend/internal/database"
	"github.com/ladlehub/backend/internal/model"
)

// Reference filter catalog. Categories and their values are seeded once;
// re-running the seeder is harmless.
var filterCatalog = map[string][]string{
	"Diet":   {"vegan", "vegetarian", "pescatarian", "gluten-free", "dairy-free"},
	"Course": {"breakfast", "lunch", "dinner", "dessert", "snack"},
	"Effort": {"quick", "weeknight", "project"},
	"Flavor": {"spicy", "sweet", "savory", "sour"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	for name, values := range filterCatalog {
		category, err := ensureCategory(db, name)
		if err != nil {
			log.Fatalf("Failed to seed category %q: %v", name, err)
		}
		for _, value := range values {
			if err := ensureValue(db, category.ID, value); err != nil {
				log.Fatalf("Failed to seed value %q: %v", value, err)
			}
		}
	}
	log.Println("Filter catalog seeded")
}

func ensureCategory(db *gorm.DB, name string) (*model.FilterCategory, error) {
	var category model.FilterCategory
	err := db.Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category = model.FilterCategory{Name: name}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func ensureValue(db *gorm.DB, categoryID uuid.UUID, value string) error {
	var existing model.FilterValue
	err := db.Where("category_id = ? AND value = ?", categoryID, value).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(&model.FilterValue{CategoryID: categoryID, Value: value}).Error
}
