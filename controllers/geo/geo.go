package geoControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/models"
)

// GET /api/country
func GetCountries(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var countries []models.Country
		if err := db.Find(&countries).Error; err != nil {
			logger.Error("failed to list countries", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, countries)
	}
}

// GET /api/state/country/:countryId
func GetStatesByCountry(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		countryID := c.Param("countryId")

		var states []models.State
		if err := db.Where("country_id = ?", countryID).Find(&states).Error; err != nil {
			logger.Error("failed to list states", zap.String("country_id", countryID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, states)
	}
}

// GET /api/country/:id
func GetCountry(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var country models.Country
		if err := db.First(&country, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Country not found"})
				return
			}
			logger.Error("failed to fetch country", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, country)
	}
}

type CountryInput struct {
	CountryName string `json:"countryName" binding:"required"`
}

// POST /api/country
func CreateCountry(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CountryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		country := models.Country{CountryName: input.CountryName}
		if err := db.Create(&country).Error; err != nil {
			logger.Error("failed to create country", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating country"})
			return
		}
		c.JSON(http.StatusCreated, country)
	}
}

// PUT /api/country/:id
func UpdateCountry(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input CountryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var country models.Country
		if err := db.First(&country, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Country not found"})
				return
			}
			logger.Error("failed to fetch country", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		country.CountryName = input.CountryName
		if err := db.Save(&country).Error; err != nil {
			logger.Error("failed to update country", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating country"})
			return
		}
		c.JSON(http.StatusOK, country)
	}
}

// DELETE /api/country/:id
func DeleteCountry(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		res := db.Delete(&models.Country{}, "id = ?", id)
		if res.Error != nil {
			logger.Error("failed to delete country", zap.String("id", id), zap.Error(res.Error))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting country"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Country not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Country deleted successfully"})
	}
}
