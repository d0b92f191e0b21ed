package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a star review of a recipe. The composite unique index on
// (recipe_id, author_id) enforces at most one review per author per recipe;
// a second submission updates the existing row.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_recipe_author" json:"recipe_id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_recipe_author" json:"author_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Text      string    `gorm:"type:text" json:"text"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
