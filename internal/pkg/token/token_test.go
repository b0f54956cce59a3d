package token

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/modacart/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTExpireHours:   1,
		CookieExpireDays: 30,
		AppEnv:           "development",
	}
}

func TestGenerateAndValidate(t *testing.T) {
	cfg := testConfig()

	tokenString, err := Generate("user-1", "admin", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := Validate(tokenString, cfg)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "user-1", claims.Subject)
}

func TestValidate_WrongSecret(t *testing.T) {
	cfg := testConfig()

	tokenString, err := Generate("user-1", "user", cfg)
	require.NoError(t, err)

	other := testConfig()
	other.JWTSecret = "another-secret"
	_, err = Validate(tokenString, other)
	require.Error(t, err)
}

func TestValidate_RejectsNonHMAC(t *testing.T) {
	cfg := testConfig()

	// alg=none tokens must never validate
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Validate(tokenString, cfg)
	require.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	cfg := testConfig()

	claims := &Claims{
		UserID: "user-1",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := expired.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = Validate(tokenString, cfg)
	require.Error(t, err)
}

func TestFromRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Bearer header wins
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Authorization", "Bearer abc123")
	require.Equal(t, "abc123", FromRequest(c))

	// raw header value passes through untouched
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Authorization", "abc123")
	require.Equal(t, "abc123", FromRequest(c))
}

func TestFromRequest_Cookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Cookie", "token=cookie-token")
	require.Equal(t, "cookie-token", FromRequest(c))

	// nothing at all
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	require.Equal(t, "", FromRequest(c))
}
