package users

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/modacart/internal/config"
	"github.com/xyz-asif/modacart/internal/middleware"
	"github.com/xyz-asif/modacart/internal/pkg/ratelimit"
)

// RegisterRoutes wires the user routes. The repository is returned so the
// other features can share the same auth middleware.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) *Repository {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg)
	protect := middleware.Protect(cfg, repo)

	// Credential endpoints are rate limited per client IP
	limiter := ratelimit.New(10, time.Minute)

	user := router.Group("/user")
	{
		user.POST("/register", ratelimit.Middleware(limiter), handler.Register)
		user.POST("/login", ratelimit.Middleware(limiter), handler.Login)
		user.GET("/me", protect, handler.Me)
		user.PATCH("/updatedetails", protect, handler.UpdateDetails)
	}

	return repo
}
