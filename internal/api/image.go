package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ladlehub/backend/internal/middleware"
	"github.com/ladlehub/backend/internal/service"
)

type ImageHandler struct {
	imageService *service.ImageService
	authService  *service.AuthService
}

func NewImageHandler(imageService *service.ImageService, authService *service.AuthService) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		authService:  authService,
	}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/images", middleware.AuthMiddleware(h.authService), h.UploadImage)
}

// UploadImage stores a multipart image and returns the opaque URL the
// caller can put on a recipe or profile.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	if _, ok := actorID(c); !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.imageService.Upload(c.Request.Context(), file, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
