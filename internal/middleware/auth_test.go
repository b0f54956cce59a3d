package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/modacart/internal/config"
	"github.com/xyz-asif/modacart/internal/pkg/token"
)

type stubLoader struct {
	user *CurrentUser
	err  error
}

func (s *stubLoader) LoadUser(ctx context.Context, id string) (*CurrentUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		JWTExpireHours: 1,
	}
}

func newProtectedRouter(cfg *config.Config, loader UserLoader, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{Protect(cfg, loader)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(200, gin.H{"userID": c.GetString("userID"), "role": c.GetString("role")})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestProtect_NoToken(t *testing.T) {
	cfg := authTestConfig()
	r := newProtectedRouter(cfg, &stubLoader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, false, body["success"])
	require.Equal(t, float64(401), body["statusCode"])
	require.Equal(t, "Not authorized to access this route", body["message"])
	require.Equal(t, "AUTH_REQUIRED", body["code"])
}

func TestProtect_BadToken(t *testing.T) {
	cfg := authTestConfig()
	r := newProtectedRouter(cfg, &stubLoader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestProtect_UnknownUser(t *testing.T) {
	cfg := authTestConfig()
	r := newProtectedRouter(cfg, &stubLoader{err: errors.New("not found")})

	tokenString, err := token.Generate("ghost", "user", cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "USER_NOT_FOUND", body["code"])
}

func TestProtect_ValidToken(t *testing.T) {
	cfg := authTestConfig()
	loader := &stubLoader{user: &CurrentUser{ID: "u1", Name: "Asif", Role: "admin"}}
	r := newProtectedRouter(cfg, loader)

	tokenString, err := token.Generate("u1", "admin", cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "u1", body["userID"])
	require.Equal(t, "admin", body["role"])
}

func TestProtect_CookieToken(t *testing.T) {
	cfg := authTestConfig()
	loader := &stubLoader{user: &CurrentUser{ID: "u1", Role: "user"}}
	r := newProtectedRouter(cfg, loader)

	tokenString, err := token.Generate("u1", "user", cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Cookie", "token="+tokenString)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
}

func TestAuthorize_RoleGate(t *testing.T) {
	cfg := authTestConfig()
	loader := &stubLoader{user: &CurrentUser{ID: "u1", Role: "user"}}
	r := newProtectedRouter(cfg, loader, Authorize("admin"))

	tokenString, err := token.Generate("u1", "user", cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	r.ServeHTTP(w, req)

	require.Equal(t, 403, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, false, body["success"])
	require.Equal(t, "User role user is not authorized to access this route", body["message"])
}

func TestAuthorize_AllowsListedRole(t *testing.T) {
	cfg := authTestConfig()
	loader := &stubLoader{user: &CurrentUser{ID: "u1", Role: "publisher"}}
	r := newProtectedRouter(cfg, loader, Authorize("admin", "publisher"))

	tokenString, err := token.Generate("u1", "publisher", cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
}
