package cartControllers

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rahul-rk007/shopping-kart-api/models"
)

func openTestDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	))
	return db
}

func setupTestDB(t *testing.T) *gorm.DB {
	return openTestDB(t, ":memory:")
}

// setupFileTestDB backs the DB with a file so writes from a second connection
// land in the same database.
func setupFileTestDB(t *testing.T) *gorm.DB {
	return openTestDB(t, filepath.Join(t.TempDir(), "cart.db"))
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *models.Product {
	t.Helper()
	p := models.Product{
		ProductName:   name,
		SubcategoryID: 1,
		Price:         price,
		StockQuantity: 100,
		ImageURLs:     []string{name + ".jpg"},
		SKU:           "SKU-" + name,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func TestAddProductToCartCreatesCartAndSnapshotsProduct(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "hoodie", 49.99)

	cart, err := AddProductToCart(db, 1, p.ID, 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, p.ID, item.ProductID)
	assert.Equal(t, "hoodie", item.ProductName)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 49.99, item.Price)
	assert.Equal(t, "hoodie.jpg", item.Image)
	assert.InDelta(t, 99.98, cart.CartTotal, 0.001)
}

func TestAddProductToCartIsAdditiveForSameProduct(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "tee", 20)

	_, err := AddProductToCart(db, 1, p.ID, 2)
	require.NoError(t, err)
	cart, err := AddProductToCart(db, 1, p.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.InDelta(t, 100, cart.CartTotal, 0.001)
}

func TestAddProductToCartUnknownProduct(t *testing.T) {
	db := setupTestDB(t)

	_, err := AddProductToCart(db, 1, 999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartTotalSumsAcrossLines(t *testing.T) {
	db := setupTestDB(t)
	a := seedProduct(t, db, "socks", 5.50)
	b := seedProduct(t, db, "belt", 12.25)

	_, err := AddProductToCart(db, 1, a.ID, 3)
	require.NoError(t, err)
	cart, err := AddProductToCart(db, 1, b.ID, 2)
	require.NoError(t, err)

	assert.InDelta(t, 3*5.50+2*12.25, cart.CartTotal, 0.001)
}

func TestSnapshotPriceSurvivesProductEdit(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "cap", 15)

	_, err := AddProductToCart(db, 1, p.ID, 1)
	require.NoError(t, err)

	require.NoError(t, db.Model(p).Update("price", 99).Error)

	var cart models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", 1).First(&cart).Error)
	assert.Equal(t, 15.0, cart.Items[0].Price)
	assert.InDelta(t, 15, cart.CartTotal, 0.001)
}

func TestRemoveProductFromCart(t *testing.T) {
	db := setupTestDB(t)
	a := seedProduct(t, db, "scarf", 10)
	b := seedProduct(t, db, "gloves", 8)

	_, err := AddProductToCart(db, 1, a.ID, 1)
	require.NoError(t, err)
	_, err = AddProductToCart(db, 1, b.ID, 1)
	require.NoError(t, err)

	cart, err := RemoveProductFromCart(db, 1, a.ID)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, b.ID, cart.Items[0].ProductID)
	assert.InDelta(t, 8, cart.CartTotal, 0.001)
}

func TestRemoveAbsentProductIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "jacket", 80)

	_, err := AddProductToCart(db, 1, p.ID, 1)
	require.NoError(t, err)

	cart, err := RemoveProductFromCart(db, 1, 999)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestRemoveWithoutCart(t *testing.T) {
	db := setupTestDB(t)

	_, err := RemoveProductFromCart(db, 1, 1)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestIncreaseAndDecreaseQuantity(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "shoes", 60)

	_, err := AddProductToCart(db, 1, p.ID, 1)
	require.NoError(t, err)

	cart, err := ChangeQuantity(db, 1, p.ID, +1)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 120, cart.CartTotal, 0.001)

	cart, err = ChangeQuantity(db, 1, p.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.InDelta(t, 60, cart.CartTotal, 0.001)
}

func TestDecreaseBelowOneRemovesLine(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "watch", 120)

	_, err := AddProductToCart(db, 1, p.ID, 1)
	require.NoError(t, err)

	cart, err := ChangeQuantity(db, 1, p.ID, -1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.InDelta(t, 0, cart.CartTotal, 0.001)

	// The line is gone, so a further decrease reports a missing item.
	_, err = ChangeQuantity(db, 1, p.ID, -1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestChangeQuantityMissingItem(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "bag", 45)

	_, err := AddProductToCart(db, 1, p.ID, 1)
	require.NoError(t, err)

	_, err = ChangeQuantity(db, 1, 999, +1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestClearCartDeletesCartEntity(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "shirt", 30)

	_, err := AddProductToCart(db, 1, p.ID, 2)
	require.NoError(t, err)

	require.NoError(t, ClearCart(db, 1))

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestClearCartWithoutCart(t *testing.T) {
	db := setupTestDB(t)

	assert.ErrorIs(t, ClearCart(db, 1), ErrCartNotFound)
}

func TestVersionAdvancesPerMutation(t *testing.T) {
	db := setupTestDB(t)
	a := seedProduct(t, db, "tee", 20)
	b := seedProduct(t, db, "cap", 15)

	_, err := AddProductToCart(db, 1, a.ID, 1)
	require.NoError(t, err)
	_, err = AddProductToCart(db, 1, b.ID, 1)
	require.NoError(t, err)
	_, err = ChangeQuantity(db, 1, a.ID, +1)
	require.NoError(t, err)
	_, err = RemoveProductFromCart(db, 1, b.ID)
	require.NoError(t, err)

	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", 1).First(&cart).Error)
	assert.EqualValues(t, 4, cart.Version)
}

func TestMutateCartRetriesOnVersionConflict(t *testing.T) {
	db := setupFileTestDB(t)
	p := seedProduct(t, db, "hoodie", 25)

	_, err := AddProductToCart(db, 1, p.ID, 1)
	require.NoError(t, err)

	// Bump the version out of band right after the next cart read, so the
	// conditional update misses and the mutation has to reload and retry.
	fired := false
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("conflict_once", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "carts" {
			return
		}
		fired = true
		require.NoError(t, tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.Cart{}).Where("user_id = ?", 1).
			Update("version", gorm.Expr("version + 1")).Error)
	}))
	t.Cleanup(func() { db.Callback().Query().Remove("conflict_once") })

	cart, err := AddProductToCart(db, 1, p.ID, 1)
	require.NoError(t, err)
	require.True(t, fired)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	var stored models.Cart
	require.NoError(t, db.Where("user_id = ?", 1).First(&stored).Error)
	// first add, out-of-band bump, then the retried second add
	assert.EqualValues(t, 3, stored.Version)
}

func TestConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	db := setupFileTestDB(t)
	p := seedProduct(t, db, "hoodie", 10)

	const workers = 4
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := AddProductToCart(db, 1, p.ID, 1); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Positive(t, succeeded)

	var cart models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", 1).First(&cart).Error)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, succeeded, cart.Items[0].Quantity)
	assert.InDelta(t, float64(succeeded)*10, cart.CartTotal, 0.001)
}

func TestCartCreateFailureIsNotMaskedAsContention(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "tee", 20)

	require.NoError(t, db.Exec(
		`CREATE TRIGGER carts_block BEFORE INSERT ON carts BEGIN SELECT RAISE(ABORT, 'carts blocked'); END`,
	).Error)

	_, err := AddProductToCart(db, 1, p.ID, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errCartContention)
	assert.Contains(t, err.Error(), "carts blocked")
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "jeans", 55)

	_, err := AddProductToCart(db, 1, p.ID, 1)
	require.NoError(t, err)
	cart2, err := AddProductToCart(db, 2, p.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, cart2.Items[0].Quantity)

	var cart1 models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", 1).First(&cart1).Error)
	assert.Equal(t, 1, cart1.Items[0].Quantity)
}
