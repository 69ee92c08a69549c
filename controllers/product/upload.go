package productControllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/config"
	"github.com/Rahul-rk007/shopping-kart-api/models"
)

// POST /api/upload/:productId
// Accepts multipart "images" files, stores them under uploads/products/<productId>/
// and replaces the product's image list with the uploaded filenames.
func UploadProductImages(db *gorm.DB, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			logger.Error("failed to fetch product", zap.String("id", productID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form"})
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "At least one image is required"})
			return
		}

		saveDir := filepath.Join(cfg.UploadsDir, "products", productID)
		if err := os.MkdirAll(saveDir, 0o755); err != nil {
			logger.Error("failed to create upload folder", zap.String("dir", saveDir), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading images"})
			return
		}

		var filenames []string
		for _, file := range files {
			name := sanitizeFilename(file.Filename)
			if err := c.SaveUploadedFile(file, filepath.Join(saveDir, name)); err != nil {
				logger.Error("failed to save image", zap.String("file", name), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading images"})
				return
			}
			filenames = append(filenames, name)
		}

		product.ImageURLs = filenames
		if err := db.Model(&product).Update("image_urls", product.ImageURLs).Error; err != nil {
			logger.Error("failed to update product images", zap.String("id", productID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading images"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Images uploaded successfully", "imageUrls": filenames})
	}
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ReplaceAll(name, "'", "")
}
