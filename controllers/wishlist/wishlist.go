package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/config"
	"github.com/Rahul-rk007/shopping-kart-api/images"
	"github.com/Rahul-rk007/shopping-kart-api/middleware"
	"github.com/Rahul-rk007/shopping-kart-api/models"
)

type AddToWishlistRequest struct {
	ProductID uint `json:"productId" binding:"required"`
}

// GET /api/wishlist
func GetWishlist(db *gorm.DB, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var wishlist models.Wishlist
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&wishlist).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Wishlist not found"})
				return
			}
			logger.Error("failed to fetch wishlist", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		for i := range wishlist.Items {
			if wishlist.Items[i].Image != "" {
				wishlist.Items[i].Image = images.ProductURL(c, cfg, wishlist.Items[i].ProductID, wishlist.Items[i].Image)
			}
		}

		c.JSON(http.StatusOK, wishlist)
	}
}

// POST /api/wishlist
func AddToWishlist(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var req AddToWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			logger.Error("failed to fetch product", zap.Uint("product_id", req.ProductID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		var wishlist models.Wishlist
		err := db.Preload("Items").Where("user_id = ?", userID).First(&wishlist).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			wishlist = models.Wishlist{UserID: userID}
			if err := db.Create(&wishlist).Error; err != nil {
				logger.Error("failed to create wishlist", zap.Uint("user_id", userID), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
		} else if err != nil {
			logger.Error("failed to fetch wishlist", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		for _, item := range wishlist.Items {
			if item.ProductID == req.ProductID {
				c.JSON(http.StatusCreated, gin.H{"message": "Product is already exist in the wishlist.", "wishlist": wishlist})
				return
			}
		}

		image := ""
		if len(product.ImageURLs) > 0 {
			image = product.ImageURLs[0]
		}
		item := models.WishlistItem{
			WishlistID:  wishlist.ID,
			ProductID:   product.ID,
			ProductName: product.ProductName,
			Quantity:    1,
			Price:       product.Price,
			Image:       image,
		}
		if err := db.Create(&item).Error; err != nil {
			logger.Error("failed to add wishlist item", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		wishlist.Items = append(wishlist.Items, item)

		c.JSON(http.StatusCreated, gin.H{"message": "Product added to wishlist successfully!", "wishlist": wishlist})
	}
}

// DELETE /api/wishlist/:productId
func RemoveFromWishlist(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
			return
		}

		var wishlist models.Wishlist
		if err := db.Where("user_id = ?", userID).First(&wishlist).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Wishlist not found"})
				return
			}
			logger.Error("failed to fetch wishlist", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		res := db.Where("wishlist_id = ? AND product_id = ?", wishlist.ID, productID).
			Delete(&models.WishlistItem{})
		if res.Error != nil {
			logger.Error("failed to remove wishlist item", zap.Uint("user_id", userID), zap.Error(res.Error))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found in wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product removed from wishlist successfully!"})
	}
}
