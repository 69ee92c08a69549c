package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/config"
	"github.com/Rahul-rk007/shopping-kart-api/images"
	"github.com/Rahul-rk007/shopping-kart-api/middleware"
	"github.com/Rahul-rk007/shopping-kart-api/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// parseOrderStatus maps a client string onto a known status, case-insensitively.
func parseOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case strings.ToLower(string(models.OrderStatusPending)):
		return models.OrderStatusPending, nil
	case strings.ToLower(string(models.OrderStatusShipped)):
		return models.OrderStatusShipped, nil
	case strings.ToLower(string(models.OrderStatusDelivered)):
		return models.OrderStatusDelivered, nil
	case strings.ToLower(string(models.OrderStatusCancelled)):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid status value")
	}
}

func expandOrderImages(c *gin.Context, cfg *config.Config, order *models.Order) {
	for i := range order.Items {
		if order.Items[i].Image != "" {
			order.Items[i].Image = images.ProductURL(c, cfg, order.Items[i].ProductID, order.Items[i].Image)
		}
	}
}

// -------- Handlers --------

// GET /api/order
func GetMyOrders(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Preload("ShippingAddress").
			Preload("ShippingAddress.State").
			Preload("ShippingAddress.Country").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			logger.Error("failed to list orders", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/order/:orderId
func GetOrderDetail(db *gorm.DB, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		order, httpStatus, err := loadOrder(db, c.Param("orderId"))
		if err != nil {
			c.JSON(httpStatus, gin.H{"message": "Order not found"})
			return
		}
		if order.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		expandOrderImages(c, cfg, order)
		c.JSON(http.StatusOK, order)
	}
}

// PATCH /api/order/:orderId/cancel
func CancelOrder(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		order, httpStatus, err := loadOrder(db, c.Param("orderId"))
		if err != nil {
			c.JSON(httpStatus, gin.H{"message": "Order not found"})
			return
		}
		if order.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", models.OrderStatusCancelled).Error; err != nil {
			logger.Error("failed to cancel order", zap.Uint("order_id", order.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order canceled successfully!"})
	}
}

// DELETE /api/order/delete/:orderId
func DeleteOrder(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		order, httpStatus, err := loadOrder(db, c.Param("orderId"))
		if err != nil {
			c.JSON(httpStatus, gin.H{"message": "Order not found"})
			return
		}
		if order.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Order{}, order.ID).Error
		})
		if err != nil {
			logger.Error("failed to delete order", zap.Uint("order_id", order.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully!"})
	}
}

// GET /api/order/admin
func GetAllOrders(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("ShippingAddress").
			Preload("ShippingAddress.State").
			Preload("ShippingAddress.Country").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			logger.Error("failed to list all orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/order/admin/:orderId
func GetOrderDetailAdmin(db *gorm.DB, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, httpStatus, err := loadOrder(db, c.Param("orderId"))
		if err != nil {
			c.JSON(httpStatus, gin.H{"message": "Order not found"})
			return
		}

		expandOrderImages(c, cfg, order)
		c.JSON(http.StatusOK, order)
	}
}

// PATCH /api/order/admin/:orderId/status
//
// A bare membership test; no transition ordering is enforced.
func UpdateOrderStatus(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		newStatus, err := parseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
			return
		}

		order, httpStatus, err := loadOrder(db, c.Param("orderId"))
		if err != nil {
			c.JSON(httpStatus, gin.H{"message": "Order not found"})
			return
		}

		if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", newStatus).Error; err != nil {
			logger.Error("failed to update order status", zap.Uint("order_id", order.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		order.Status = newStatus
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully!", "order": order})
	}
}

func loadOrder(db *gorm.DB, idParam string) (*models.Order, int, error) {
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	var order models.Order
	if err := db.
		Preload("Items").
		Preload("ShippingAddress").
		Preload("ShippingAddress.State").
		Preload("ShippingAddress.Country").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusInternalServerError, err
	}
	return &order, http.StatusOK, nil
}
