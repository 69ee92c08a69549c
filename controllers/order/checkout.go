package orderControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	addressControllers "github.com/Rahul-rk007/shopping-kart-api/controllers/address"
	"github.com/Rahul-rk007/shopping-kart-api/middleware"
	"github.com/Rahul-rk007/shopping-kart-api/models"
)

var (
	ErrEmptyCart              = errors.New("cart is empty")
	ErrInvalidShippingCharges = errors.New("invalid shipping charges")

	errCartChanged = errors.New("cart changed during checkout")
)

// checkoutAttempts bounds the reload-and-retry loop when a cart mutation
// commits between the snapshot read and the cart delete.
const checkoutAttempts = 3

type CheckoutRequest struct {
	ShippingAddressID uint                             `json:"shippingAddressId"`
	ShippingAddress   *addressControllers.AddressInput `json:"shippingAddress"`
	PaymentMethod     string                           `json:"paymentMethod" binding:"required"`
	CouponCode        string                           `json:"couponCode"`
	CouponDetails     *models.CouponDetails            `json:"couponDetails"`
	PhoneNumber       string                           `json:"phoneNumber" binding:"required"`
	ShippingMethod    string                           `json:"shippingMethod" binding:"required"`
	// Raw on the wire; may arrive as a string or a number.
	ShippingCharges json.Number `json:"shippingCharges"`
}

// generateOrderNumber yields a unique order reference, e.g. ORD-20250908130500-1b9d6bcd.
func generateOrderNumber() string {
	return "ORD-" + time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// Checkout materializes the user's cart into an immutable order snapshot.
// Address resolution, the order insert and the cart delete run in a single
// transaction, so a failure leaves neither a stale cart nor a half-written order.
// The cart delete is conditioned on the version the snapshot was read at; a
// concurrent cart mutation rolls the attempt back and the checkout re-reads.
func Checkout(db *gorm.DB, userID uint, req CheckoutRequest) (*models.Order, error) {
	for attempt := 0; attempt < checkoutAttempts; attempt++ {
		order, err := checkout(db, userID, req)
		if errors.Is(err, errCartChanged) {
			continue
		}
		return order, err
	}
	return nil, errCartChanged
}

func checkout(db *gorm.DB, userID uint, req CheckoutRequest) (*models.Order, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(cart.Items) == 0) {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}

	subTotal := cart.CartTotal

	shippingCharges, err := strconv.ParseFloat(req.ShippingCharges.String(), 64)
	if err != nil || shippingCharges < 0 {
		return nil, ErrInvalidShippingCharges
	}

	discount, err := Discount(subTotal, req.CouponDetails)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		addressID, resolveErr := addressControllers.Resolve(tx, userID, req.ShippingAddressID, req.ShippingAddress)
		if resolveErr != nil {
			return resolveErr
		}

		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			items = append(items, models.OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				Price:       item.Price,
				Image:       item.Image,
			})
		}

		order = models.Order{
			UserID:            userID,
			OrderNumber:       generateOrderNumber(),
			OrderDate:         time.Now(),
			Items:             items,
			SubTotal:          subTotal,
			CouponCode:        req.CouponCode,
			CouponDetails:     req.CouponDetails,
			ShippingAddressID: addressID,
			PhoneNumber:       req.PhoneNumber,
			ShippingMethod:    req.ShippingMethod,
			ShippingCharges:   shippingCharges,
			TotalAmount:       subTotal + shippingCharges - discount,
			PaymentMethod:     req.PaymentMethod,
			Status:            models.OrderStatusPending,
		}
		if createErr := tx.Create(&order).Error; createErr != nil {
			return createErr
		}

		if delErr := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; delErr != nil {
			return delErr
		}

		res := tx.Where("id = ? AND version = ?", cart.ID, cart.Version).Delete(&models.Cart{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errCartChanged
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /api/order/checkout
func CheckoutHandler(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		order, err := Checkout(db, userID, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
			case errors.Is(err, ErrInvalidShippingCharges):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid shipping charges"})
			case errors.Is(err, ErrInvalidCoupon):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid coupon value"})
			case errors.Is(err, addressControllers.ErrInvalidAddress):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid shipping address"})
			case errors.Is(err, addressControllers.ErrMissingAddress):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Shipping address is required"})
			default:
				logger.Error("checkout failed", zap.Uint("user_id", userID), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong. Please try after sometime."})
			}
			return
		}

		logger.Info("order placed",
			zap.Uint("user_id", userID),
			zap.String("order_number", order.OrderNumber),
			zap.Float64("total_amount", order.TotalAmount),
		)

		go broadcastNewOrder(*order)

		c.JSON(http.StatusCreated, gin.H{"message": "Your order placed successfully!", "order": order})
	}
}
