package contactControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/config"
	"github.com/Rahul-rk007/shopping-kart-api/mailer"
	"github.com/Rahul-rk007/shopping-kart-api/models"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// POST /api/contact
func SubmitContactForm(db *gorm.DB, cfg *config.Config, mail mailer.Mailer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		msg := models.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		}
		if err := db.Create(&msg).Error; err != nil {
			logger.Error("failed to save contact message", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		// Mail delivery is best effort; the message is already persisted.
		ack := fmt.Sprintf("Hi %s,\n\nThanks for reaching out. We received your message and will get back to you soon.\n\nSubject: %s", req.Name, req.Subject)
		if err := mail.Send(req.Email, "We received your message", ack); err != nil {
			logger.Warn("failed to send contact acknowledgement", zap.String("email", req.Email), zap.Error(err))
		}

		if cfg.SMTP.AdminEmail != "" {
			notice := fmt.Sprintf("New contact message from %s <%s>\n\nSubject: %s\n\n%s", req.Name, req.Email, req.Subject, req.Message)
			if err := mail.Send(cfg.SMTP.AdminEmail, "New contact form submission: "+req.Subject, notice); err != nil {
				logger.Warn("failed to notify admin of contact message", zap.Error(err))
			}
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Your message has been sent successfully!"})
	}
}

// GET /api/contact (admin)
func ListContactMessages(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var messages []models.ContactMessage
		if err := db.Order("created_at DESC").Find(&messages).Error; err != nil {
			logger.Error("failed to list contact messages", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}
