package types

import (
	"github.com/google/uuid"
)

// TokenClaims is the identity a validated bearer token resolves to.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
}
