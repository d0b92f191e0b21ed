package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ladlehub/backend/internal/middleware"
	"github.com/ladlehub/backend/internal/model"
	"github.com/ladlehub/backend/internal/service"
	"github.com/ladlehub/backend/internal/types"
)

type RecipeHandler struct {
	recipeService  *service.RecipeService
	catalogService *service.CatalogService
	reviewService  *service.ReviewService
	authService    *service.AuthService
	createLimiter  *middleware.RateLimiter
}

func NewRecipeHandler(
	recipeService *service.RecipeService,
	catalogService *service.CatalogService,
	reviewService *service.ReviewService,
	authService *service.AuthService,
	createLimiter *middleware.RateLimiter,
) *RecipeHandler {
	return &RecipeHandler{
		recipeService:  recipeService,
		catalogService: catalogService,
		reviewService:  reviewService,
		authService:    authService,
		createLimiter:  createLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", auth, h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		if h.createLimiter != nil {
			recipes.POST("", auth, h.createLimiter.Middleware(), h.CreateRecipe)
		} else {
			recipes.POST("", auth, h.CreateRecipe)
		}
		recipes.PUT("/:id", auth, h.UpdateRecipe)
		recipes.DELETE("/:id", auth, h.DeleteRecipe)
	}

	router.GET("/creators/:id/recipes/top", h.ListTopByCreator)
}

// ListRecipes is the catalog query endpoint: scope, conjunctive filter
// values, name substring and paging all in one request.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	query := service.CatalogQuery{
		Scope:        service.RecipeScope(c.DefaultQuery("scope", string(service.ScopeAll))),
		FilterValues: c.QueryArray("values"),
		Name:         c.Query("name"),
		Page:         intQuery(c, "page", 0),
		PageSize:     intQuery(c, "page_size", 0),
	}
	if creator := c.Query("creator_id"); creator != "" {
		id, err := uuid.Parse(creator)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid creator_id"})
			return
		}
		query.CreatorID = id
	}

	recipes, total, err := h.catalogService.ListRecipes(c.Request.Context(), actor, query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"total":   total,
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	avg, err := h.reviewService.AverageRating(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	count, err := h.reviewService.Count(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.RecipeDetail{
		ID:            recipe.ID,
		CreatorID:     recipe.UserID,
		Name:          recipe.Name,
		Description:   recipe.Description,
		ImageURL:      recipe.ImageURL,
		Ingredients:   recipe.Ingredients,
		Steps:         recipe.Steps,
		CreatedAt:     recipe.CreatedAt,
		UpdatedAt:     recipe.UpdatedAt,
		AverageRating: avg,
		ReviewCount:   count,
	})
}

// ListTopByCreator returns a creator's recipes ranked by average rating.
func (h *RecipeHandler) ListTopByCreator(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	recipes, err := h.recipeService.ListTopByCreator(c.Request.Context(), id, intQuery(c, "limit", 10))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), actor, &model.Recipe{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), id, actor, &model.Recipe{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	value := c.Query(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
