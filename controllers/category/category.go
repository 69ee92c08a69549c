package categoryControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/models"
)

// GET /api/category
func GetCategories(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Where("is_active = ?", true).Find(&categories).Error; err != nil {
			logger.Error("failed to list categories", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

type CategoryInput struct {
	CategoryName string `json:"categoryName" binding:"required"`
	Description  string `json:"description" binding:"required"`
	ImageURL     string `json:"imageUrl"`
	IsActive     *bool  `json:"isActive"`
}

// POST /api/category
func CreateCategory(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		category := models.Category{
			CategoryName: input.CategoryName,
			Description:  input.Description,
			ImageURL:     input.ImageURL,
			IsActive:     isActive,
		}
		if err := db.Create(&category).Error; err != nil {
			logger.Error("failed to create category", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// PUT /api/category/:id
func UpdateCategory(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
				return
			}
			logger.Error("failed to fetch category", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		category.CategoryName = input.CategoryName
		category.Description = input.Description
		category.ImageURL = input.ImageURL
		if input.IsActive != nil {
			category.IsActive = *input.IsActive
		}

		if err := db.Save(&category).Error; err != nil {
			logger.Error("failed to update category", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// DELETE /api/category/:id
func DeleteCategory(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		res := db.Delete(&models.Category{}, "id = ?", id)
		if res.Error != nil {
			logger.Error("failed to delete category", zap.String("id", id), zap.Error(res.Error))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
