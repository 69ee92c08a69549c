package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/config"
	"github.com/Rahul-rk007/shopping-kart-api/images"
	"github.com/Rahul-rk007/shopping-kart-api/models"
)

type productPage struct {
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
	Items  []models.Product `json:"products"`
}

// expandProductImages rewrites bare filenames into full retrieval URLs
// (uploads/products/<productId>/<filename>).
func expandProductImages(c *gin.Context, cfg *config.Config, products []models.Product) {
	for i := range products {
		urls := make([]string, 0, len(products[i].ImageURLs))
		for _, name := range products[i].ImageURLs {
			urls = append(urls, images.ProductURL(c, cfg, products[i].ID, name))
		}
		products[i].ImageURLs = urls
	}
}

func pagination(c *gin.Context, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	offset = 0
	if v, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit))); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}

// GET /api/product
// Query params: limit (default 9), offset, subcategoryId, minPrice, maxPrice, color.
func GetProducts(db *gorm.DB, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pagination(c, 9)

		query := db.Model(&models.Product{}).Where("is_active = ?", true)

		if subcategoryID := c.Query("subcategoryId"); subcategoryID != "" {
			query = query.Where("subcategory_id = ?", subcategoryID)

			minPrice := c.Query("minPrice")
			maxPrice := c.Query("maxPrice")
			if minPrice != "" && maxPrice != "" {
				query = query.Where("price BETWEEN ? AND ?", minPrice, maxPrice)
			}
		}
		if color := c.Query("color"); color != "" {
			query = query.Where("color = ?", color)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			logger.Error("failed to count products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		var products []models.Product
		if err := query.Preload("Subcategory").
			Offset(offset).Limit(limit).
			Find(&products).Error; err != nil {
			logger.Error("failed to list products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		expandProductImages(c, cfg, products)
		c.JSON(http.StatusOK, productPage{Total: total, Limit: limit, Offset: offset, Items: products})
	}
}

// GET /api/product/:id
func GetProductByID(db *gorm.DB, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Subcategory").Preload("Subcategory.Category").
			First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			logger.Error("failed to fetch product", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		products := []models.Product{product}
		expandProductImages(c, cfg, products)
		c.JSON(http.StatusOK, products[0])
	}
}

// GET /api/product/featured
func GetFeaturedProducts(db *gorm.DB, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pagination(c, 10)

		query := db.Model(&models.Product{}).Where("featured = ? AND is_active = ?", true, true)

		var total int64
		if err := query.Count(&total).Error; err != nil {
			logger.Error("failed to count featured products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		var products []models.Product
		if err := query.Preload("Subcategory").
			Offset(offset).Limit(limit).
			Find(&products).Error; err != nil {
			logger.Error("failed to list featured products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		expandProductImages(c, cfg, products)
		c.JSON(http.StatusOK, gin.H{
			"total":            total,
			"limit":            limit,
			"offset":           offset,
			"featuredProducts": products,
		})
	}
}

// GET /api/product/new-arrivals
// Optional ?category=<CategoryName> narrows by category via the subcategory link.
func GetNewArrivals(db *gorm.DB, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pagination(c, 10)

		query := db.Model(&models.Product{}).Where("products.is_active = ?", true)

		if category := c.Query("category"); category != "" && category != "All" {
			var cat models.Category
			if err := db.Where("category_name = ?", category).First(&cat).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Category not found"})
				return
			}
			query = query.
				Joins("JOIN subcategories ON subcategories.id = products.subcategory_id").
				Where("subcategories.category_id = ?", cat.ID)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			logger.Error("failed to count new arrivals", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		var products []models.Product
		if err := query.Preload("Subcategory").
			Order("products.created_at DESC").
			Offset(offset).Limit(limit).
			Find(&products).Error; err != nil {
			logger.Error("failed to list new arrivals", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		expandProductImages(c, cfg, products)
		c.JSON(http.StatusOK, gin.H{
			"total":       total,
			"limit":       limit,
			"offset":      offset,
			"newArrivals": products,
		})
	}
}

type colorCount struct {
	Color string `json:"color"`
	Count int64  `json:"count"`
}

// GET /api/product/colors — color facet counts for the current filter.
func GetProductColors(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Where("is_active = ?", true)

		if subcategoryID := c.Query("subcategoryId"); subcategoryID != "" {
			query = query.Where("subcategory_id = ?", subcategoryID)
		}
		minPrice := c.Query("minPrice")
		maxPrice := c.Query("maxPrice")
		if minPrice != "" && maxPrice != "" {
			query = query.Where("price BETWEEN ? AND ?", minPrice, maxPrice)
		}

		var counts []colorCount
		if err := query.Select("color, COUNT(*) AS count").
			Group("color").
			Scan(&counts).Error; err != nil {
			logger.Error("failed to aggregate product colors", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, counts)
	}
}

// GET /api/product/subcategory/:subcategoryId
func GetProductsBySubcategory(db *gorm.DB, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		subcategoryID := c.Param("subcategoryId")

		var products []models.Product
		if err := db.Where("subcategory_id = ?", subcategoryID).Find(&products).Error; err != nil {
			logger.Error("failed to list products by subcategory", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products"})
			return
		}

		expandProductImages(c, cfg, products)
		c.JSON(http.StatusOK, products)
	}
}
