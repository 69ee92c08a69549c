package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rahul-rk007/shopping-kart-api/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			UserSecret:  "user-secret",
			AdminSecret: "admin-secret",
			TokenTTL:    time.Hour,
		},
	}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runMiddleware(mw gin.HandlerFunc, token string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		c.Request.Header.Set("Authorization", token)
	}
	mw(c)
	return w, c
}

func TestValidateUserTokenAccepts(t *testing.T) {
	cfg := testConfig()
	token := signToken(t, cfg.Auth.UserSecret, jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	_, c := runMiddleware(ValidateUserToken(cfg), token)

	id, ok := UserID(c)
	require.True(t, ok)
	assert.EqualValues(t, 7, id)
}

func TestValidateUserTokenMissing(t *testing.T) {
	w, _ := runMiddleware(ValidateUserToken(testConfig()), "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestValidateUserTokenWrongSecret(t *testing.T) {
	cfg := testConfig()
	token := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w, c := runMiddleware(ValidateUserToken(cfg), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	_, ok := UserID(c)
	assert.False(t, ok)
}

func TestValidateUserTokenExpired(t *testing.T) {
	cfg := testConfig()
	token := signToken(t, cfg.Auth.UserSecret, jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})

	w, _ := runMiddleware(ValidateUserToken(cfg), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminTokenIsNotValidForUserRoutes(t *testing.T) {
	cfg := testConfig()
	token := signToken(t, cfg.Auth.AdminSecret, jwt.MapClaims{
		"admin_id":   3,
		"admin_type": "superadmin",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	w, _ := runMiddleware(ValidateUserToken(cfg), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateAdminToken(t *testing.T) {
	cfg := testConfig()
	token := signToken(t, cfg.Auth.AdminSecret, jwt.MapClaims{
		"admin_id":   3,
		"admin_type": "superadmin",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	_, c := runMiddleware(ValidateAdminToken(cfg), token)

	id, ok := AdminID(c)
	require.True(t, ok)
	assert.EqualValues(t, 3, id)
	assert.Equal(t, "superadmin", c.GetString("admin_type"))
}
