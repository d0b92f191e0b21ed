package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follower is a directed edge: FollowerID follows CreatorID. Both symmetric
// queries (who follows X, who does X follow) read this one edge set.
// Self-edges are rejected in the service before the store is touched.
type Follower struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	FollowerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_follower_creator" json:"follower_id"`
	CreatorID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_follower_creator" json:"creator_id"`
}

func (Follower) TableName() string {
	return "followers"
}

func (f *Follower) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
