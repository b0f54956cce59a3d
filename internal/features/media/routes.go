package media

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/modacart/internal/features/users"
	"github.com/xyz-asif/modacart/internal/middleware"
	"github.com/xyz-asif/modacart/internal/pkg/cloudinary"
)

// RegisterRoutes wires the media upload endpoint. Uploads are admin-only.
func RegisterRoutes(router *gin.RouterGroup, uploads *cloudinary.Service, protect gin.HandlerFunc) {
	handler := NewHandler(uploads)

	group := router.Group("/media")
	{
		group.POST("/upload", protect, middleware.Authorize(users.RoleAdmin), handler.Upload)
	}
}
