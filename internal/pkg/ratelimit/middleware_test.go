package ratelimit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(0, time.Minute) // limit 0 -> always deny
	r := gin.New()
	r.Use(Middleware(lim))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 429, w.Code)
	require.Equal(t, "60", w.Header().Get("Retry-After"))
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, false, body["success"])
	require.Equal(t, float64(429), body["statusCode"])
	require.Equal(t, "Too many requests, try again later", body["message"])
}

func TestLimiter_WindowSlides(t *testing.T) {
	lim := New(2, 50*time.Millisecond)

	require.True(t, lim.Allow("ip"))
	require.True(t, lim.Allow("ip"))
	require.False(t, lim.Allow("ip"))
	require.Equal(t, 0, lim.Remaining("ip"))

	// other clients have their own window
	require.True(t, lim.Allow("other"))

	time.Sleep(60 * time.Millisecond)
	require.True(t, lim.Allow("ip"))
}
