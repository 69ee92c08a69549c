package wishlistControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rahul-rk007/shopping-kart-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Wishlist{},
		&models.WishlistItem{},
	))
	return db
}

func addProduct(t *testing.T, db *gorm.DB, userID, productID uint) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(gin.H{"productId": productID})
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", userID)
	AddToWishlist(db, zap.NewNop())(c)
	return w
}

func TestAddToWishlistCreatesLazilyAndSnapshots(t *testing.T) {
	db := setupTestDB(t)
	p := models.Product{
		ProductName:   "hoodie",
		SubcategoryID: 1,
		Price:         49.99,
		StockQuantity: 10,
		ImageURLs:     []string{"front.jpg"},
		SKU:           "SKU-1",
	}
	require.NoError(t, db.Create(&p).Error)

	w := addProduct(t, db, 1, p.ID)
	assert.Equal(t, http.StatusCreated, w.Code)

	var wishlist models.Wishlist
	require.NoError(t, db.Preload("Items").Where("user_id = ?", 1).First(&wishlist).Error)
	require.Len(t, wishlist.Items, 1)
	assert.Equal(t, "hoodie", wishlist.Items[0].ProductName)
	assert.Equal(t, 1, wishlist.Items[0].Quantity)
	assert.Equal(t, "front.jpg", wishlist.Items[0].Image)
}

func TestAddToWishlistDuplicateIsNotDoubled(t *testing.T) {
	db := setupTestDB(t)
	p := models.Product{
		ProductName:   "cap",
		SubcategoryID: 1,
		Price:         15,
		StockQuantity: 10,
		SKU:           "SKU-2",
	}
	require.NoError(t, db.Create(&p).Error)

	require.Equal(t, http.StatusCreated, addProduct(t, db, 1, p.ID).Code)
	w := addProduct(t, db, 1, p.ID)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "already exist")

	var count int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddToWishlistUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	w := addProduct(t, db, 1, 999)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
