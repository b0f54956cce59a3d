package accounts

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/modacart/internal/features/users"
	"github.com/xyz-asif/modacart/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, protect gin.HandlerFunc) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	accounts := router.Group("/accounts")
	{
		accounts.GET("", protect, handler.List)
		accounts.POST("", handler.BatchCreate)
		accounts.GET("/preview", handler.Preview)
		accounts.GET("/keepAccounts/names", handler.KeptNames)
		accounts.DELETE("/oldRecords", handler.PurgeOld)
		accounts.DELETE("", handler.BulkDelete)
		accounts.GET("/:id", handler.Get)
		accounts.PATCH("/:id", handler.Update)
		accounts.DELETE("/:id", protect, middleware.Authorize(users.RoleAdmin), handler.Delete)
	}
}
