package orderControllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/models"
)

func seedOrder(t *testing.T, db *gorm.DB, userID uint) *models.Order {
	t.Helper()
	addr := models.ShippingAddress{
		UserID:      userID,
		FullName:    "Asha Rao",
		PhoneNumber: "9876543210",
		Address1:    "12 MG Road",
		City:        "Bengaluru",
		StateID:     1,
		ZipCode:     "560001",
		CountryID:   1,
	}
	require.NoError(t, db.Create(&addr).Error)

	order := models.Order{
		UserID:            userID,
		OrderNumber:       generateOrderNumber(),
		OrderDate:         time.Now(),
		SubTotal:          100,
		ShippingAddressID: addr.ID,
		PhoneNumber:       "9876543210",
		ShippingMethod:    "standard",
		TotalAmount:       100,
		PaymentMethod:     "cod",
		Status:            models.OrderStatusPending,
		Items: []models.OrderItem{{
			ProductID:   1,
			ProductName: "hoodie",
			Quantity:    1,
			Price:       100,
		}},
	}
	require.NoError(t, db.Create(&order).Error)
	return &order
}

func performAs(userID uint, handler gin.HandlerFunc, method, orderID string, body []byte) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "orderId", Value: orderID}}
	if userID != 0 {
		c.Set("user_id", userID)
	}
	handler(c)
	return w
}

func TestCancelOrderByOwner(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrder(t, db, 1)

	w := performAs(1, CancelOrder(db, zap.NewNop()), http.MethodPatch, uintString(order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, models.OrderStatusCancelled, stored.Status)
}

func TestCancelOrderRejectsForeignOwner(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrder(t, db, 2)

	w := performAs(1, CancelOrder(db, zap.NewNop()), http.MethodPatch, uintString(order.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestDeleteOrderByOwnerRemovesItems(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrder(t, db, 1)

	w := performAs(1, DeleteOrder(db, zap.NewNop()), http.MethodDelete, uintString(order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateOrderStatusMembership(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrder(t, db, 1)

	w := performAs(0, UpdateOrderStatus(db, zap.NewNop()), http.MethodPatch, uintString(order.ID),
		[]byte(`{"status":"shipped"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, stored.Status)

	w = performAs(0, UpdateOrderStatus(db, zap.NewNop()), http.MethodPatch, uintString(order.ID),
		[]byte(`{"status":"Refunded"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, stored.Status)
}
