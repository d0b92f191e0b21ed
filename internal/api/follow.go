package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ladlehub/backend/internal/middleware"
	"github.com/ladlehub/backend/internal/model"
	"github.com/ladlehub/backend/internal/service"
	"github.com/ladlehub/backend/internal/types"
)

type FollowHandler struct {
	followService  *service.FollowService
	profileService *service.ProfileService
	authService    *service.AuthService
}

func NewFollowHandler(
	followService *service.FollowService,
	profileService *service.ProfileService,
	authService *service.AuthService,
) *FollowHandler {
	return &FollowHandler{
		followService:  followService,
		profileService: profileService,
		authService:    authService,
	}
}

func (h *FollowHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	creators := router.Group("/creators")
	{
		creators.GET("/:id", h.GetCreator)
		creators.GET("/:id/followers", h.ListFollowers)
		creators.POST("/:id/follow", auth, h.Follow)
		creators.DELETE("/:id/follow", auth, h.Unfollow)
		creators.GET("/:id/follow", auth, h.CheckFollow)
	}

	router.GET("/me/follows", auth, h.ListFollows)
}

// GetCreator returns the public creator profile with its derived counts.
func (h *FollowHandler) GetCreator(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, err := h.profileService.GetCreator(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *FollowHandler) Follow(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	creatorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.followService.Follow(c.Request.Context(), actor, creatorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "following"})
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	creatorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.followService.Unfollow(c.Request.Context(), actor, creatorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unfollowed"})
}

func (h *FollowHandler) CheckFollow(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	creatorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	isFollowing, err := h.followService.IsFollowing(c.Request.Context(), actor, creatorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_following": isFollowing})
}

// ListFollowers lists who follows a creator, optionally narrowed with
// ?name= substring.
func (h *FollowHandler) ListFollowers(c *gin.Context) {
	creatorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	users, err := h.followService.ListFollowers(c.Request.Context(), creatorID, c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": toUserSummaries(users)})
}

// ListFollows lists the creators the authenticated user follows.
func (h *FollowHandler) ListFollows(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	users, err := h.followService.ListFollows(c.Request.Context(), actor, c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": toUserSummaries(users)})
}

func toUserSummaries(users []model.User) []types.UserSummary {
	summaries := make([]types.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = types.UserSummary{
			ID:       u.ID,
			Nickname: u.Nickname,
			ImageURL: u.ImageURL,
		}
	}
	return summaries
}
