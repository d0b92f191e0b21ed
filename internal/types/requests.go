package types

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RecipeRequest is the body of recipe create/update.
type RecipeRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// ReviewRequest is the body of a review submission.
type ReviewRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Text   string `json:"text"`
}

// FilterAttachmentRequest carries filter value ids for attach/detach. An
// empty list on detach clears every attachment of the recipe.
type FilterAttachmentRequest struct {
	ValueIDs []string `json:"value_ids"`
}
