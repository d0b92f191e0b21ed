package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ladlehub/backend/internal/middleware"
	"github.com/ladlehub/backend/internal/service"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
	catalogService  *service.CatalogService
	authService     *service.AuthService
}

func NewFavoriteHandler(
	favoriteService *service.FavoriteService,
	catalogService *service.CatalogService,
	authService *service.AuthService,
) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		catalogService:  catalogService,
		authService:     authService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	router.POST("/recipes/:id/favorite", auth, h.AddFavorite)
	router.DELETE("/recipes/:id/favorite", auth, h.RemoveFavorite)
	router.GET("/recipes/:id/favorite", auth, h.CheckFavorite)
	router.GET("/favorites", auth, h.ListFavorites)
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.favoriteService.Add(c.Request.Context(), actor, recipeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "recipe favorited"})
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), actor, recipeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe unfavorited"})
}

func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(c.Request.Context(), actor, recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": isFavorite})
}

// ListFavorites runs the catalog query with the favorites scope, so the
// response rows carry the same filters and enrichments as any listing.
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	recipes, total, err := h.catalogService.ListRecipes(c.Request.Context(), actor, service.CatalogQuery{
		Scope:        service.ScopeFavorites,
		FilterValues: c.QueryArray("values"),
		Name:         c.Query("name"),
		Page:         intQuery(c, "page", 0),
		PageSize:     intQuery(c, "page_size", 0),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"total":   total,
	})
}
