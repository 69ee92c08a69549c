package adminControllers

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

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/admin/forgot-password
func ForgotPassword(db *gorm.DB, cfg *config.Config, mail mailer.Mailer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ForgotPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found"})
				return
			}
			logger.Error("failed to fetch admin", zap.Error(err))
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
		if err := db.Model(&admin).Updates(updates).Error; err != nil {
			logger.Error("failed to store reset token", zap.Uint("admin_id", admin.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		resetURL := fmt.Sprintf("%s/admin/reset-password/%s", cfg.PublicBaseURL, token)
		body := fmt.Sprintf(
			"You requested a password reset.\n\nClick the link below to reset your password:\n%s\n\nThis link expires in 1 hour.",
			resetURL,
		)
		if err := mail.Send(admin.Email, "Admin Password Reset Request", body); err != nil {
			logger.Warn("failed to send reset email", zap.String("email", admin.Email), zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password reset link sent to your email"})
	}
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// POST /api/admin/reset-password/:token
func ResetPassword(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")

		var req ResetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var admin models.Admin
		err := db.Where("reset_password_token = ? AND reset_password_expires > ?", token, time.Now()).
			First(&admin).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired reset token"})
				return
			}
			logger.Error("failed to fetch admin by reset token", zap.Error(err))
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
		if err := db.Model(&admin).Updates(updates).Error; err != nil {
			logger.Error("failed to reset password", zap.Uint("admin_id", admin.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully"})
	}
}
