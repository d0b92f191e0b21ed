package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FilterCategory groups filter values (e.g. "Diet", "Course"). Categories
// are reference data loaded by seeding, not mutated by end users.
type FilterCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

func (FilterCategory) TableName() string {
	return "filter_categories"
}

func (c *FilterCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// FilterValue is a single selectable value within a category.
type FilterValue struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	Value      string    `gorm:"size:100;not null" json:"value"`
}

func (FilterValue) TableName() string {
	return "filter_values"
}

func (v *FilterValue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// RecipeFilter attaches a filter value to a recipe. The composite unique
// index makes a duplicate attachment impossible at the store level.
type RecipeFilter struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_recipe_filter_value" json:"recipe_id"`
	FilterValueID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_recipe_filter_value" json:"filter_value_id"`
}

func (RecipeFilter) TableName() string {
	return "recipe_filters"
}

func (f *RecipeFilter) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
