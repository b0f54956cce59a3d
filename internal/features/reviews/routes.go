package reviews

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/modacart/internal/features/users"
	"github.com/xyz-asif/modacart/internal/middleware"
)

// RegisterRoutes wires the reviews endpoints. Reading is public;
// writing needs a logged-in user and publishers are not allowed to post.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, protect gin.HandlerFunc) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	group := router.Group("/reviews")
	{
		group.GET("", handler.List)
		group.GET("/:id", handler.Get)

		group.POST("", protect, middleware.Authorize(users.RoleAdmin, users.RoleUser), handler.Create)
		group.PATCH("/:id", protect, handler.Update)
		group.DELETE("/:id", protect, handler.Delete)

		group.DELETE("", protect, middleware.Authorize(users.RoleAdmin), handler.BulkDelete)
	}
}
