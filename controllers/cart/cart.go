package cartControllers

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

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("product not found in cart")

	errVersionConflict = errors.New("cart version conflict")
	errCartContention  = errors.New("cart is being modified concurrently")
)

// casAttempts bounds the reload-and-retry loop on version conflicts.
const casAttempts = 3

type AddToCartRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// -------- Core Logic --------

func cartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// mutateCart loads the user's cart, applies fn inside a transaction guarded by a
// conditional version bump, and retries on conflict. Two concurrent mutations of
// the same cart therefore serialize instead of losing an update.
func mutateCart(db *gorm.DB, userID uint, createIfMissing bool, fn func(tx *gorm.DB, cart *models.Cart) error) (*models.Cart, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		var cart models.Cart
		err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if !createIfMissing {
				return nil, ErrCartNotFound
			}
			cart = models.Cart{UserID: userID}
			if createErr := db.Create(&cart).Error; createErr != nil {
				if errors.Is(createErr, gorm.ErrDuplicatedKey) {
					// Lost the create race on unique(user_id); reload and retry.
					continue
				}
				return nil, createErr
			}
		} else if err != nil {
			return nil, err
		}

		txErr := db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.Cart{}).
				Where("id = ? AND version = ?", cart.ID, cart.Version).
				Update("version", cart.Version+1)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errVersionConflict
			}
			return fn(tx, &cart)
		})
		if txErr == nil {
			cart.Version++
			return &cart, nil
		}
		if errors.Is(txErr, errVersionConflict) {
			continue
		}
		return nil, txErr
	}
	return nil, errCartContention
}

// AddProductToCart adds quantity of a product to the user's cart, creating the
// cart on first add. Quantities are additive; price and primary image are
// snapshotted from the product at add time.
func AddProductToCart(db *gorm.DB, userID, productID uint, quantity int) (*models.Cart, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	image := ""
	if len(product.ImageURLs) > 0 {
		image = product.ImageURLs[0]
	}

	return mutateCart(db, userID, true, func(tx *gorm.DB, cart *models.Cart) error {
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				cart.Items[i].Quantity += quantity
				if err := tx.Save(&cart.Items[i]).Error; err != nil {
					return err
				}
				return saveCartTotal(tx, cart)
			}
		}

		item := models.CartItem{
			CartID:      cart.ID,
			ProductID:   product.ID,
			ProductName: product.ProductName,
			Quantity:    quantity,
			Price:       product.Price,
			Image:       image,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		cart.Items = append(cart.Items, item)
		return saveCartTotal(tx, cart)
	})
}

// RemoveProductFromCart drops the matching line item. Removing a product that is
// not in the cart is a no-op, not an error.
func RemoveProductFromCart(db *gorm.DB, userID, productID uint) (*models.Cart, error) {
	return mutateCart(db, userID, false, func(tx *gorm.DB, cart *models.Cart) error {
		kept := cart.Items[:0]
		for _, item := range cart.Items {
			if item.ProductID != productID {
				kept = append(kept, item)
			}
		}
		if err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		cart.Items = kept
		return saveCartTotal(tx, cart)
	})
}

// ChangeQuantity adjusts a line item by delta (+1/-1). Decreasing a quantity of 1
// removes the line item entirely; a missing line item is ErrItemNotFound.
func ChangeQuantity(db *gorm.DB, userID, productID uint, delta int) (*models.Cart, error) {
	return mutateCart(db, userID, false, func(tx *gorm.DB, cart *models.Cart) error {
		idx := -1
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return ErrItemNotFound
		}

		item := &cart.Items[idx]
		if item.Quantity+delta < 1 {
			if err := tx.Delete(&models.CartItem{}, item.ID).Error; err != nil {
				return err
			}
			cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
			return saveCartTotal(tx, cart)
		}

		item.Quantity += delta
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		return saveCartTotal(tx, cart)
	})
}

// ClearCart deletes the cart row outright, items cascading with it.
func ClearCart(db *gorm.DB, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
}

func saveCartTotal(tx *gorm.DB, cart *models.Cart) error {
	cart.CartTotal = cartTotal(cart.Items)
	return tx.Model(cart).Update("cart_total", cart.CartTotal).Error
}

// -------- Handlers --------

// POST /api/cart
func AddToCart(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := AddProductToCart(db, userID, req.ProductID, req.Quantity)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			logger.Error("failed to add product to cart", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cart, "message": "Product added to cart successfully!"})
	}
}

// GET /api/cart
func GetUserCart(db *gorm.DB, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
				return
			}
			logger.Error("failed to fetch cart", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		for i := range cart.Items {
			if cart.Items[i].Image != "" {
				cart.Items[i].Image = images.ProductURL(c, cfg, cart.Items[i].ProductID, cart.Items[i].Image)
			}
		}

		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart/remove/:productId
func RemoveFromCart(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
			return
		}

		cart, err := RemoveProductFromCart(db, userID, productID)
		if err != nil {
			if errors.Is(err, ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
				return
			}
			logger.Error("failed to remove product from cart", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart successfully!", "cart": cart})
	}
}

// PATCH /api/cart/increase/:productId
func IncreaseQuantity(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return changeQuantityHandler(db, logger, +1, "Product quantity increased")
}

// PATCH /api/cart/decrease/:productId
func DecreaseQuantity(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return changeQuantityHandler(db, logger, -1, "Product quantity decreased")
}

func changeQuantityHandler(db *gorm.DB, logger *zap.Logger, delta int, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
			return
		}

		cart, err := ChangeQuantity(db, userID, productID, delta)
		if err != nil {
			switch {
			case errors.Is(err, ErrCartNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
			case errors.Is(err, ErrItemNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found in cart"})
			default:
				logger.Error("failed to change cart quantity", zap.Uint("user_id", userID), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": message, "cart": cart})
	}
}

// DELETE /api/cart/clear
func ClearUserCart(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		if err := ClearCart(db, userID); err != nil {
			if errors.Is(err, ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
				return
			}
			logger.Error("failed to clear cart", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully!"})
	}
}

func parseProductID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
