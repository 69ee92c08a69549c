package categoryControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/models"
)

type categoryWithSubcategories struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Subcategories []subcategoryItem `json:"subcategories"`
}

type subcategoryItem struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// GET /api/subcategory/category/:categoryId
func GetSubcategoriesByCategory(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("categoryId")

		var category models.Category
		if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
				return
			}
			logger.Error("failed to fetch category", zap.String("id", categoryID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		var subcategories []models.Subcategory
		if err := db.Where("category_id = ? AND is_active = ?", category.ID, true).
			Find(&subcategories).Error; err != nil {
			logger.Error("failed to list subcategories", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, subcategories)
	}
}

// GET /api/subcategory/list
func ListCategoriesWithSubcategories(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return listCategoryTree(db, logger, true, false)
}

// GET /api/subcategory/admin/list
func ListCategoriesWithSubcategoriesAdmin(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return listCategoryTree(db, logger, false, true)
}

func listCategoryTree(db *gorm.DB, logger *zap.Logger, activeOnly, withDescription bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			logger.Error("failed to list categories", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		subQuery := db.Model(&models.Subcategory{})
		if activeOnly {
			subQuery = subQuery.Where("is_active = ?", true)
		}
		var subcategories []models.Subcategory
		if err := subQuery.Find(&subcategories).Error; err != nil {
			logger.Error("failed to list subcategories", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		byCategory := make(map[uint][]subcategoryItem)
		for _, sub := range subcategories {
			item := subcategoryItem{ID: sub.ID, Name: sub.SubcategoryName}
			if withDescription {
				item.Description = sub.Description
				if item.Description == "" {
					item.Description = "No description available"
				}
			}
			byCategory[sub.CategoryID] = append(byCategory[sub.CategoryID], item)
		}

		result := make([]categoryWithSubcategories, 0, len(categories))
		for _, cat := range categories {
			subs := byCategory[cat.ID]
			if subs == nil {
				subs = []subcategoryItem{}
			}
			result = append(result, categoryWithSubcategories{
				ID:            cat.ID,
				Name:          cat.CategoryName,
				Subcategories: subs,
			})
		}

		c.JSON(http.StatusOK, result)
	}
}

type SubcategoryInput struct {
	SubcategoryName string `json:"subcategoryName" binding:"required"`
	CategoryID      uint   `json:"categoryId" binding:"required"`
	Description     string `json:"description"`
	ImageURL        string `json:"imageUrl"`
	IsActive        *bool  `json:"isActive"`
}

// POST /api/subcategory
func CreateSubcategory(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubcategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		subcategory := models.Subcategory{
			SubcategoryName: input.SubcategoryName,
			CategoryID:      input.CategoryID,
			Description:     input.Description,
			ImageURL:        input.ImageURL,
			IsActive:        isActive,
		}
		if err := db.Create(&subcategory).Error; err != nil {
			logger.Error("failed to create subcategory", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusCreated, subcategory)
	}
}

// PUT /api/subcategory/:id
func UpdateSubcategory(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var subcategory models.Subcategory
		if err := db.First(&subcategory, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Subcategory not found"})
				return
			}
			logger.Error("failed to fetch subcategory", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		var input SubcategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		subcategory.SubcategoryName = input.SubcategoryName
		subcategory.CategoryID = input.CategoryID
		subcategory.Description = input.Description
		subcategory.ImageURL = input.ImageURL
		if input.IsActive != nil {
			subcategory.IsActive = *input.IsActive
		}

		if err := db.Save(&subcategory).Error; err != nil {
			logger.Error("failed to update subcategory", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, subcategory)
	}
}

// DELETE /api/subcategory/:id
func DeleteSubcategory(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		res := db.Delete(&models.Subcategory{}, "id = ?", id)
		if res.Error != nil {
			logger.Error("failed to delete subcategory", zap.String("id", id), zap.Error(res.Error))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Subcategory not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
	}
}

// GET /api/subcategory/:id
func GetSubcategoryByID(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var subcategory models.Subcategory
		if err := db.First(&subcategory, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Subcategory not found"})
				return
			}
			logger.Error("failed to fetch subcategory", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, subcategory)
	}
}
