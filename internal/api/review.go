package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ladlehub/backend/internal/middleware"
	"github.com/ladlehub/backend/internal/service"
	"github.com/ladlehub/backend/internal/types"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
	authService   *service.AuthService
	submitLimiter *middleware.RateLimiter
}

func NewReviewHandler(
	reviewService *service.ReviewService,
	authService *service.AuthService,
	submitLimiter *middleware.RateLimiter,
) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		authService:   authService,
		submitLimiter: submitLimiter,
	}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	if h.submitLimiter != nil {
		router.POST("/recipes/:id/reviews", auth, h.submitLimiter.Middleware(), h.SubmitReview)
	} else {
		router.POST("/recipes/:id/reviews", auth, h.SubmitReview)
	}
	router.GET("/recipes/:id/reviews", h.ListReviews)
	router.GET("/recipes/:id/reviews/summary", h.ReviewSummary)
	router.GET("/recipes/:id/reviews/mine", auth, h.GetOwnReview)
	router.GET("/reviews/:id", h.GetReview)
	router.DELETE("/reviews/:id", auth, h.DeleteReview)
}

// SubmitReview creates the actor's review of a recipe, or updates it in
// place when one exists.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Submit(c.Request.Context(), actor, recipeID, req.Rating, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

// ListReviews returns one page of a recipe's reviews. Query parameters:
// sentiment (positive|negative), order (created_at|rating), dir
// (asc|desc), page, page_size.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	reviews, total, err := h.reviewService.ListByRecipe(c.Request.Context(), recipeID, service.ReviewQuery{
		Sentiment: c.Query("sentiment"),
		OrderBy:   c.Query("order"),
		Desc:      c.DefaultQuery("dir", "desc") == "desc",
		Page:      intQuery(c, "page", 0),
		PageSize:  intQuery(c, "page_size", 0),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   total,
	})
}

// ReviewSummary returns the live aggregate rating and count.
func (h *ReviewHandler) ReviewSummary(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	avg, err := h.reviewService.AverageRating(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	count, err := h.reviewService.Count(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"average_rating": avg,
		"review_count":   count,
	})
}

// GetOwnReview returns the actor's review of a recipe; a missing review is
// a normal outcome, rendered as null.
func (h *ReviewHandler) GetOwnReview(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.GetByAuthor(c.Request.Context(), recipeID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.Get(c.Request.Context(), reviewID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), reviewID, actor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
