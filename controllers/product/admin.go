package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/models"
)

type ProductInput struct {
	ProductName   string  `json:"productName" binding:"required"`
	SubcategoryID uint    `json:"subcategoryId" binding:"required"`
	Price         float64 `json:"price" binding:"required,min=0"`
	StockQuantity int     `json:"stockQuantity" binding:"min=0"`
	Description   string  `json:"description"`
	SKU           string  `json:"sku" binding:"required"`
	IsActive      *bool   `json:"isActive"`
	ProductType   string  `json:"productType"`
	Brand         string  `json:"brand"`
	Color         string  `json:"color"`
	Size          string  `json:"size"`
	Featured      bool    `json:"featured"`
}

// POST /api/product
func CreateProduct(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var subcategory models.Subcategory
		if err := db.First(&subcategory, "id = ?", input.SubcategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Subcategory not found"})
				return
			}
			logger.Error("failed to validate subcategory", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		product := models.Product{
			ProductName:   input.ProductName,
			SubcategoryID: input.SubcategoryID,
			Price:         input.Price,
			StockQuantity: input.StockQuantity,
			Description:   input.Description,
			SKU:           input.SKU,
			IsActive:      isActive,
			ProductType:   input.ProductType,
			Brand:         input.Brand,
			Color:         input.Color,
			Size:          input.Size,
			Featured:      input.Featured,
		}
		if err := db.Create(&product).Error; err != nil {
			logger.Error("failed to create product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// PUT /api/product/:id
func UpdateProduct(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			logger.Error("failed to fetch product", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		product.ProductName = input.ProductName
		product.SubcategoryID = input.SubcategoryID
		product.Price = input.Price
		product.StockQuantity = input.StockQuantity
		product.Description = input.Description
		product.SKU = input.SKU
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}
		product.ProductType = input.ProductType
		product.Brand = input.Brand
		product.Color = input.Color
		product.Size = input.Size
		product.Featured = input.Featured

		if err := db.Save(&product).Error; err != nil {
			logger.Error("failed to update product", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// DELETE /api/product/:id
func DeleteProduct(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		res := db.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			logger.Error("failed to delete product", zap.String("id", id), zap.Error(res.Error))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
