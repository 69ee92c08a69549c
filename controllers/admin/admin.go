package adminControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/config"
	"github.com/Rahul-rk007/shopping-kart-api/middleware"
	"github.com/Rahul-rk007/shopping-kart-api/models"
)

type RegisterRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName"`
	Email        string `json:"email" binding:"required,email"`
	MobileNumber string `json:"mobileNumber"`
	Gender       string `json:"gender"`
	Password     string `json:"password" binding:"required,min=6"`
	AdminType    string `json:"adminType" binding:"required,oneof=superadmin subadmin"`
}

type LoginRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	AdminType string `json:"adminType" binding:"required"`
}

func signAdminToken(cfg *config.Config, admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"admin_id":   admin.ID,
		"admin_type": string(admin.AdminType),
		"exp":        time.Now().Add(cfg.Auth.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Auth.AdminSecret))
}

// POST /api/admin/register
func Register(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var existing models.Admin
		if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Admin already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("failed to check existing admin", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("failed to hash password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		admin := models.Admin{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			MobileNumber: req.MobileNumber,
			Gender:       req.Gender,
			Password:     string(hash),
			AdminType:    models.AdminType(req.AdminType),
		}
		if err := db.Create(&admin).Error; err != nil {
			logger.Error("failed to create admin", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Admin registered successfully"})
	}
}

// POST /api/admin/login
func Login(db *gorm.DB, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
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

		if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		if string(admin.AdminType) != req.AdminType {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid admin type"})
			return
		}

		token, err := signAdminToken(cfg, &admin)
		if err != nil {
			logger.Error("failed to sign token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "adminType": admin.AdminType})
	}
}

// GET /api/admin/profile
func GetProfile(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := middleware.AdminID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var admin models.Admin
		if err := db.First(&admin, "id = ?", adminID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found"})
				return
			}
			logger.Error("failed to fetch admin", zap.Uint("admin_id", adminID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, admin)
	}
}

// GET /api/admin
func GetAllAdmins(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin
		if err := db.Find(&admins).Error; err != nil {
			logger.Error("failed to list admins", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}

// GET /api/admin/:id
func GetAdmin(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var admin models.Admin
		if err := db.First(&admin, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found"})
				return
			}
			logger.Error("failed to fetch admin", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, admin)
	}
}

type UpdateAdminRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	MobileNumber string `json:"mobileNumber"`
	Gender       string `json:"gender"`
	AdminType    string `json:"adminType"`
}

// PUT /api/admin/:id
func UpdateAdmin(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req UpdateAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var admin models.Admin
		if err := db.First(&admin, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found"})
				return
			}
			logger.Error("failed to fetch admin", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		admin.FirstName = req.FirstName
		admin.LastName = req.LastName
		admin.MobileNumber = req.MobileNumber
		admin.Gender = req.Gender
		if req.AdminType != "" {
			if req.AdminType != string(models.AdminTypeSuper) && req.AdminType != string(models.AdminTypeSub) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid admin type"})
				return
			}
			admin.AdminType = models.AdminType(req.AdminType)
		}

		if err := db.Save(&admin).Error; err != nil {
			logger.Error("failed to update admin", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, admin)
	}
}

// DELETE /api/admin/:id
func DeleteAdmin(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		res := db.Delete(&models.Admin{}, "id = ?", id)
		if res.Error != nil {
			logger.Error("failed to delete admin", zap.String("id", id), zap.Error(res.Error))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully"})
	}
}
