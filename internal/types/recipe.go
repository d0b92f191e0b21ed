package types

import (
	"time"

	"github.com/google/uuid"
)

// RecipeSummary is a catalog listing row: the recipe's public fields plus
// the derived per-actor enrichments.
type RecipeSummary struct {
	ID            uuid.UUID `json:"id"`
	CreatorID     uuid.UUID `json:"creator_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int64     `json:"review_count"`
	IsFavorite    bool      `json:"is_favorite"`
	IsOwn         bool      `json:"is_own"`
}

// RecipeDetail is the full public view of a single recipe.
type RecipeDetail struct {
	ID            uuid.UUID `json:"id"`
	CreatorID     uuid.UUID `json:"creator_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	Ingredients   []string  `json:"ingredients"`
	Steps         []string  `json:"steps"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int64     `json:"review_count"`
}
