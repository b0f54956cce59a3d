package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/modacart/internal/config"
	"github.com/xyz-asif/modacart/internal/pkg/response"
	"github.com/xyz-asif/modacart/internal/pkg/token"
)

// CurrentUser is the authenticated principal attached to the request context.
type CurrentUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// UserLoader looks up the requesting user. Implemented by the users
// repository; an interface here keeps the middleware free of a feature
// package import.
type UserLoader interface {
	LoadUser(ctx context.Context, id string) (*CurrentUser, error)
}

// Protect verifies the bearer or cookie token and loads the requesting
// user into the context under "user", "userID" and "role".
func Protect(cfg *config.Config, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := token.FromRequest(c)
		if tokenString == "" {
			response.Unauthorized(c, "Not authorized to access this route", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		claims, err := token.Validate(tokenString, cfg)
		if err != nil {
			response.Unauthorized(c, "Not authorized to access this route", "INVALID_TOKEN")
			c.Abort()
			return
		}

		user, err := users.LoadUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Unauthorized(c, "Not authorized to access this route", "USER_NOT_FOUND")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Next()
	}
}

// Authorize gates a route to the given roles. Must run after Protect.
func Authorize(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "User role "+role+" is not authorized to access this route", "FORBIDDEN")
		c.Abort()
	}
}

// GetCurrentUser pulls the authenticated user out of the context.
func GetCurrentUser(c *gin.Context) (*CurrentUser, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*CurrentUser)
	return user, ok
}
