package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/modacart/internal/config"
	"github.com/xyz-asif/modacart/internal/features/accounts"
	"github.com/xyz-asif/modacart/internal/features/media"
	"github.com/xyz-asif/modacart/internal/features/products"
	"github.com/xyz-asif/modacart/internal/features/reviews"
	"github.com/xyz-asif/modacart/internal/features/users"
	"github.com/xyz-asif/modacart/internal/middleware"
	"github.com/xyz-asif/modacart/internal/pkg/cloudinary"
	"github.com/xyz-asif/modacart/internal/pkg/response"
)

// SetupRoutes registers every feature under /api/v1.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	v1 := router.Group("/api/v1")

	usersRepo := users.RegisterRoutes(v1, db, cfg)
	protect := middleware.Protect(cfg, usersRepo)

	accounts.RegisterRoutes(v1, db, protect)
	products.RegisterRoutes(v1, db, protect)
	reviews.RegisterRoutes(v1, db, protect)

	uploads, err := cloudinary.NewService(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		"modacart",
	)
	if err != nil {
		// The rest of the API works without uploads; the media handler
		// reports the missing configuration per request.
		log.Printf("cloudinary disabled: %v", err)
	}
	media.RegisterRoutes(v1, uploads, protect)
}

// NotFoundHandler answers requests that match no route.
func NotFoundHandler(c *gin.Context) {
	response.NotFound(c, "Can't find "+c.Request.URL.Path+" on the server")
}
