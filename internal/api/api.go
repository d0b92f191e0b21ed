package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ladlehub/backend/config"
	"github.com/ladlehub/backend/internal/middleware"
	"github.com/ladlehub/backend/internal/service"
)

// SetupAPI wires the services and registers every route group under
// /api/v1. redisClient and s3Config may be nil; rate limiting and image
// upload are then left out.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config, jwtSecret string) {
	v1 := router.Group("/api/v1")

	authService := service.NewAuthService(db, jwtSecret)
	recipeService := service.NewRecipeService(db)
	filterService := service.NewFilterService(db)
	favoriteService := service.NewFavoriteService(db)
	followService := service.NewFollowService(db)
	reviewService := service.NewReviewService(db)
	catalogService := service.NewCatalogService(db, filterService, favoriteService, reviewService)
	profileService := service.NewProfileService(db, recipeService, followService)

	var createLimiter, reviewLimiter *middleware.RateLimiter
	if redisClient != nil {
		createLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
		reviewLimiter = middleware.NewReviewSubmissionRateLimiter(redisClient)
	}

	NewAuthHandler(authService).RegisterRoutes(v1)
	NewRecipeHandler(recipeService, catalogService, reviewService, authService, createLimiter).RegisterRoutes(v1)
	NewFilterHandler(filterService, authService).RegisterRoutes(v1)
	NewFavoriteHandler(favoriteService, catalogService, authService).RegisterRoutes(v1)
	NewFollowHandler(followService, profileService, authService).RegisterRoutes(v1)
	NewReviewHandler(reviewService, authService, reviewLimiter).RegisterRoutes(v1)

	if s3Config != nil {
		NewImageHandler(service.NewImageService(s3Config), authService).RegisterRoutes(v1)
	}
}
