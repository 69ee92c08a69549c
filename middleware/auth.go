package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Rahul-rk007/shopping-kart-api/config"
)

// ValidateUserToken checks the Authorization bearer token and puts the
// authenticated user's id into the context under "user_id".
func ValidateUserToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, cfg.Auth.UserSecret)
		if !ok {
			return
		}

		id, ok := claims["user_id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set("user_id", uint(id))
		c.Next()
	}
}

// ValidateAdminToken is the admin-panel counterpart; admin tokens are signed
// with a separate secret and carry "admin_id" and "admin_type".
func ValidateAdminToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, cfg.Auth.AdminSecret)
		if !ok {
			return
		}

		id, ok := claims["admin_id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set("admin_id", uint(id))
		if adminType, ok := claims["admin_type"].(string); ok {
			c.Set("admin_type", adminType)
		}
		c.Next()
	}
}

func parseToken(c *gin.Context, secret string) (jwt.MapClaims, bool) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusForbidden, gin.H{"message": "Token is required"})
		c.Abort()
		return nil, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		c.Abort()
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
		c.Abort()
		return nil, false
	}
	return claims, true
}

// UserID returns the authenticated user's id set by ValidateUserToken.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// AdminID returns the authenticated admin's id set by ValidateAdminToken.
func AdminID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("admin_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
