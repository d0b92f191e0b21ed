package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ladlehub/backend/internal/middleware"
	"github.com/ladlehub/backend/internal/service"
	"github.com/ladlehub/backend/internal/types"
)

type FilterHandler struct {
	filterService *service.FilterService
	authService   *service.AuthService
}

func NewFilterHandler(filterService *service.FilterService, authService *service.AuthService) *FilterHandler {
	return &FilterHandler{
		filterService: filterService,
		authService:   authService,
	}
}

func (h *FilterHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	filters := router.Group("/filters")
	{
		filters.GET("/categories", h.ListCategories)
		filters.GET("/categories/:id/values", h.ListValues)
		filters.GET("/grouped", h.ListGrouped)
	}

	router.GET("/recipes/:id/filters", h.ListRecipeFilters)
	router.POST("/recipes/:id/filters", auth, h.AttachFilters)
	router.DELETE("/recipes/:id/filters", auth, h.DetachFilters)
}

func (h *FilterHandler) ListCategories(c *gin.Context) {
	categories, err := h.filterService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *FilterHandler) ListValues(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	values, err := h.filterService.ListValues(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"values": values})
}

func (h *FilterHandler) ListGrouped(c *gin.Context) {
	grouped, err := h.filterService.ListGrouped(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filters": grouped})
}

func (h *FilterHandler) ListRecipeFilters(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	values, err := h.filterService.ValuesForRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"values": values})
}

func (h *FilterHandler) AttachFilters(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	valueIDs, ok := bindValueIDs(c)
	if !ok {
		return
	}

	if err := h.filterService.AttachValues(c.Request.Context(), recipeID, actor, valueIDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "filters attached"})
}

// DetachFilters removes the listed attachments; an empty list clears them
// all.
func (h *FilterHandler) DetachFilters(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	valueIDs, ok := bindValueIDs(c)
	if !ok {
		return
	}

	if err := h.filterService.DetachValues(c.Request.Context(), recipeID, actor, valueIDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "filters removed"})
}

func bindValueIDs(c *gin.Context) ([]uuid.UUID, bool) {
	var req types.FilterAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	ids := make([]uuid.UUID, 0, len(req.ValueIDs))
	for _, raw := range req.ValueIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter value id: " + raw})
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
