package userControllers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/config"
	"github.com/Rahul-rk007/shopping-kart-api/mailer"
	"github.com/Rahul-rk007/shopping-kart-api/middleware"
	"github.com/Rahul-rk007/shopping-kart-api/models"
)

const resetTokenTTL = time.Hour

func newResetToken() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// PUT /api/user/change-password
func ChangePassword(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var req ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Current password is incorrect"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("failed to hash password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		if err := db.Model(&user).Update("password", string(hash)).Error; err != nil {
			logger.Error("failed to update password", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
	}
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/user/forgot-password
func ForgotPassword(db *gorm.DB, cfg *config.Config, mail mailer.Mailer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ForgotPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			logger.Error("failed to fetch user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		token, err := newResetToken()
		if err != nil {
			logger.Error("failed to generate reset token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		expires := time.Now().Add(resetTokenTTL)
		updates := map[string]interface{}{
			"reset_password_token":   token,
			"reset_password_expires": expires,
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			logger.Error("failed to store reset token", zap.Uint("user_id", user.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		resetURL := fmt.Sprintf("%s/reset-password/%s", cfg.PublicBaseURL, token)
		body := fmt.Sprintf(
			"You requested a password reset.\n\nClick the link below to reset your password:\n%s\n\nThis link expires in 1 hour. If you did not request this, you can ignore this email.",
			resetURL,
		)
		if err := mail.Send(user.Email, "Password Reset Request", body); err != nil {
			// Token is stored; reset still works if the user retries.
			logger.Warn("failed to send reset email", zap.String("email", user.Email), zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password reset link sent to your email"})
	}
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// POST /api/user/reset-password/:token
func ResetPassword(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")

		var req ResetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		err := db.Where("reset_password_token = ? AND reset_password_expires > ?", token, time.Now()).
			First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired reset token"})
				return
			}
			logger.Error("failed to fetch user by reset token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("failed to hash password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		updates := map[string]interface{}{
			"password":               string(hash),
			"reset_password_token":   "",
			"reset_password_expires": nil,
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			logger.Error("failed to reset password", zap.Uint("user_id", user.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully"})
	}
}
