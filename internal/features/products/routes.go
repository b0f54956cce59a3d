package products

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/modacart/internal/features/users"
	"github.com/xyz-asif/modacart/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, protect gin.HandlerFunc) {
	repo := NewRepository(db)
	handler := NewHandler(repo)
	adminOnly := middleware.Authorize(users.RoleAdmin)

	products := router.Group("/products")
	{
		products.GET("", handler.List)
		products.GET("/:id", handler.Get)
		products.POST("", protect, adminOnly, handler.Create)
		products.POST("/productseeder", protect, adminOnly, handler.Seed)
		products.PATCH("/:id", protect, adminOnly, handler.Update)
		products.DELETE("/:id", protect, adminOnly, handler.Delete)
		products.DELETE("", protect, adminOnly, handler.BulkDelete)
	}
}
