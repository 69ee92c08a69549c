package orderControllers

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	addressControllers "github.com/Rahul-rk007/shopping-kart-api/controllers/address"
	"github.com/Rahul-rk007/shopping-kart-api/models"
)

func openTestDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Country{},
		&models.State{},
		&models.ShippingAddress{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func setupTestDB(t *testing.T) *gorm.DB {
	return openTestDB(t, ":memory:")
}

// setupFileTestDB backs the DB with a file so writes from a second connection
// land in the same database.
func setupFileTestDB(t *testing.T) *gorm.DB {
	return openTestDB(t, filepath.Join(t.TempDir(), "checkout.db"))
}

func seedCart(t *testing.T, db *gorm.DB, userID uint, lines map[string]struct {
	Price    float64
	Quantity int
}) *models.Cart {
	t.Helper()
	cart := models.Cart{UserID: userID}
	var total float64
	for name, line := range lines {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID:   uint(len(cart.Items) + 1),
			ProductName: name,
			Quantity:    line.Quantity,
			Price:       line.Price,
			Image:       name + ".jpg",
		})
		total += line.Price * float64(line.Quantity)
	}
	cart.CartTotal = total
	require.NoError(t, db.Create(&cart).Error)
	return &cart
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) *models.ShippingAddress {
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
	return &addr
}

func baseRequest(addressID uint) CheckoutRequest {
	return CheckoutRequest{
		ShippingAddressID: addressID,
		PaymentMethod:     "cod",
		PhoneNumber:       "9876543210",
		ShippingMethod:    "standard",
		ShippingCharges:   json.Number("0"),
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	addr := seedAddress(t, db, 1)

	_, err := Checkout(db, 1, baseRequest(addr.ID))
	assert.ErrorIs(t, err, ErrEmptyCart)

	// A cart row with no items counts as empty too.
	require.NoError(t, db.Create(&models.Cart{UserID: 1}).Error)
	_, err = Checkout(db, 1, baseRequest(addr.ID))
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckoutMaterializesOrderAndDeletesCart(t *testing.T) {
	db := setupTestDB(t)
	addr := seedAddress(t, db, 1)
	seedCart(t, db, 1, map[string]struct {
		Price    float64
		Quantity int
	}{
		"hoodie": {Price: 100, Quantity: 2},
		"cap":    {Price: 50, Quantity: 1},
	})

	req := baseRequest(addr.ID)
	req.ShippingCharges = json.Number("50")
	req.CouponCode = "SAVE20"
	req.CouponDetails = &models.CouponDetails{Type: models.CouponTypePercentage, Value: "20"}

	order, err := Checkout(db, 1, req)
	require.NoError(t, err)

	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, addr.ID, order.ShippingAddressID)
	assert.InDelta(t, 250, order.SubTotal, 0.001)
	assert.InDelta(t, 50, order.ShippingCharges, 0.001)
	// 250 + 50 - 20% of 250
	assert.InDelta(t, 250, order.TotalAmount, 0.001)
	assert.Len(t, order.Items, 2)

	var cartCount int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", 1).Count(&cartCount).Error)
	assert.Zero(t, cartCount)
	var itemCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestCheckoutShippingChargesAcceptsStringOrNumber(t *testing.T) {
	db := setupTestDB(t)
	addr := seedAddress(t, db, 1)
	seedCart(t, db, 1, map[string]struct {
		Price    float64
		Quantity int
	}{"tee": {Price: 40, Quantity: 1}})

	var req CheckoutRequest
	payload := `{"shippingAddressId":` + uintString(addr.ID) + `,"paymentMethod":"cod","phoneNumber":"1","shippingMethod":"standard","shippingCharges":"25.5"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	order, err := Checkout(db, 1, req)
	require.NoError(t, err)
	assert.InDelta(t, 25.5, order.ShippingCharges, 0.001)
	assert.InDelta(t, 65.5, order.TotalAmount, 0.001)
}

func TestCheckoutRejectsBadShippingCharges(t *testing.T) {
	db := setupTestDB(t)
	addr := seedAddress(t, db, 1)
	seedCart(t, db, 1, map[string]struct {
		Price    float64
		Quantity int
	}{"tee": {Price: 40, Quantity: 1}})

	req := baseRequest(addr.ID)
	req.ShippingCharges = json.Number("not-a-number")
	_, err := Checkout(db, 1, req)
	assert.ErrorIs(t, err, ErrInvalidShippingCharges)

	req.ShippingCharges = json.Number("-5")
	_, err = Checkout(db, 1, req)
	assert.ErrorIs(t, err, ErrInvalidShippingCharges)
}

func TestCheckoutForeignAddressLeavesCartIntact(t *testing.T) {
	db := setupTestDB(t)
	other := seedAddress(t, db, 2)
	seedCart(t, db, 1, map[string]struct {
		Price    float64
		Quantity int
	}{"tee": {Price: 40, Quantity: 1}})

	_, err := Checkout(db, 1, baseRequest(other.ID))
	assert.ErrorIs(t, err, addressControllers.ErrInvalidAddress)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
	var cartCount int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", 1).Count(&cartCount).Error)
	assert.EqualValues(t, 1, cartCount)
}

func TestCheckoutWithInlineAddress(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, 1, map[string]struct {
		Price    float64
		Quantity int
	}{"tee": {Price: 40, Quantity: 2}})

	req := baseRequest(0)
	req.ShippingAddress = &addressControllers.AddressInput{
		FullName:    "Asha Rao",
		PhoneNumber: "9876543210",
		Address1:    "12 MG Road",
		City:        "Bengaluru",
		StateID:     1,
		ZipCode:     "560001",
		CountryID:   1,
	}

	order, err := Checkout(db, 1, req)
	require.NoError(t, err)
	assert.NotZero(t, order.ShippingAddressID)

	var addr models.ShippingAddress
	require.NoError(t, db.First(&addr, order.ShippingAddressID).Error)
	assert.EqualValues(t, 1, addr.UserID)
}

func TestCheckoutWithoutAnyAddress(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, 1, map[string]struct {
		Price    float64
		Quantity int
	}{"tee": {Price: 40, Quantity: 1}})

	_, err := Checkout(db, 1, baseRequest(0))
	assert.ErrorIs(t, err, addressControllers.ErrMissingAddress)
}

func TestCheckoutSnapshotSurvivesProductEdit(t *testing.T) {
	db := setupTestDB(t)
	addr := seedAddress(t, db, 1)
	product := models.Product{
		ProductName:   "hoodie",
		SubcategoryID: 1,
		Price:         100,
		StockQuantity: 10,
		SKU:           "SKU-hoodie",
	}
	require.NoError(t, db.Create(&product).Error)
	cart := models.Cart{
		UserID: 1,
		Items: []models.CartItem{{
			ProductID:   product.ID,
			ProductName: product.ProductName,
			Quantity:    1,
			Price:       product.Price,
		}},
		CartTotal: 100,
	}
	require.NoError(t, db.Create(&cart).Error)

	order, err := Checkout(db, 1, baseRequest(addr.ID))
	require.NoError(t, err)

	require.NoError(t, db.Model(&product).Updates(map[string]interface{}{
		"price":        999,
		"product_name": "renamed",
	}).Error)

	var stored models.Order
	require.NoError(t, db.Preload("Items").First(&stored, order.ID).Error)
	assert.Equal(t, "hoodie", stored.Items[0].ProductName)
	assert.Equal(t, 100.0, stored.Items[0].Price)
	assert.InDelta(t, 100, stored.SubTotal, 0.001)
}

func TestCheckoutRetriesWhenCartChangesUnderneath(t *testing.T) {
	db := setupFileTestDB(t)
	addr := seedAddress(t, db, 1)
	cart := seedCart(t, db, 1, map[string]struct {
		Price    float64
		Quantity int
	}{"hoodie": {Price: 100, Quantity: 1}})

	// Slip a new line into the cart right after the snapshot read; the
	// version-conditioned delete then misses and the checkout re-reads.
	fired := false
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("late_add", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "carts" {
			return
		}
		fired = true
		s := tx.Session(&gorm.Session{NewDB: true})
		require.NoError(t, s.Create(&models.CartItem{
			CartID:      cart.ID,
			ProductID:   42,
			ProductName: "late",
			Quantity:    1,
			Price:       10,
		}).Error)
		require.NoError(t, s.Model(&models.Cart{}).Where("id = ?", cart.ID).Updates(map[string]interface{}{
			"version":    gorm.Expr("version + 1"),
			"cart_total": gorm.Expr("cart_total + 10"),
		}).Error)
	}))
	t.Cleanup(func() { db.Callback().Query().Remove("late_add") })

	order, err := Checkout(db, 1, baseRequest(addr.ID))
	require.NoError(t, err)
	require.True(t, fired)

	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 110, order.SubTotal, 0.001)
	assert.InDelta(t, 110, order.TotalAmount, 0.001)

	var cartCount int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&cartCount).Error)
	assert.Zero(t, cartCount)
	var itemCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestCheckoutInvalidCouponAbortsBeforeWriting(t *testing.T) {
	db := setupTestDB(t)
	addr := seedAddress(t, db, 1)
	seedCart(t, db, 1, map[string]struct {
		Price    float64
		Quantity int
	}{"tee": {Price: 40, Quantity: 1}})

	req := baseRequest(addr.ID)
	req.CouponDetails = &models.CouponDetails{Type: models.CouponTypeAmount, Value: "junk"}

	_, err := Checkout(db, 1, req)
	assert.ErrorIs(t, err, ErrInvalidCoupon)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestParseOrderStatus(t *testing.T) {
	for _, in := range []string{"pending", "Pending", "PENDING"} {
		got, err := parseOrderStatus(in)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPending, got)
	}

	got, err := parseOrderStatus("cancelled")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, got)

	_, err = parseOrderStatus("Refunded")
	assert.Error(t, err)
}

func uintString(v uint) string {
	b, _ := json.Marshal(v)
	return string(b)
}
