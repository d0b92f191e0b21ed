package types

import (
	"github.com/google/uuid"
)

// CreatorProfile is the public view of a creator. The counts are computed
// from the ledgers at request time.
type CreatorProfile struct {
	ID            uuid.UUID `json:"id"`
	Nickname      string    `json:"nickname"`
	ImageURL      string    `json:"image_url"`
	RecipeCount   int64     `json:"recipe_count"`
	FollowerCount int64     `json:"follower_count"`
	FollowCount   int64     `json:"follow_count"`
}

// UserSummary is a directory row in follower/follow listings.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Nickname string    `json:"nickname"`
	ImageURL string    `json:"image_url"`
}
