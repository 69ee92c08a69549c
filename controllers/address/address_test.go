package addressControllers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
		&models.Country{},
		&models.State{},
		&models.ShippingAddress{},
	))
	return db
}

func validInput() *AddressInput {
	return &AddressInput{
		FullName:    "Asha Rao",
		PhoneNumber: "9876543210",
		Address1:    "12 MG Road",
		City:        "Bengaluru",
		StateID:     1,
		ZipCode:     "560001",
		CountryID:   1,
	}
}

func TestResolveExistingAddress(t *testing.T) {
	db := setupTestDB(t)
	addr := validInput().toModel(1)
	require.NoError(t, db.Create(&addr).Error)

	id, err := Resolve(db, 1, addr.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, addr.ID, id)
}

func TestResolveRejectsForeignAddress(t *testing.T) {
	db := setupTestDB(t)
	addr := validInput().toModel(2)
	require.NoError(t, db.Create(&addr).Error)

	_, err := Resolve(db, 1, addr.ID, nil)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestResolveRejectsUnknownAddressID(t *testing.T) {
	db := setupTestDB(t)

	_, err := Resolve(db, 1, 42, nil)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestResolveCreatesInlineAddress(t *testing.T) {
	db := setupTestDB(t)

	id, err := Resolve(db, 1, 0, validInput())
	require.NoError(t, err)
	require.NotZero(t, id)

	var stored models.ShippingAddress
	require.NoError(t, db.First(&stored, id).Error)
	assert.EqualValues(t, 1, stored.UserID)
	assert.Equal(t, "12 MG Road", stored.Address1)
}

func TestResolveExistingIDWinsOverInlinePayload(t *testing.T) {
	db := setupTestDB(t)
	addr := validInput().toModel(1)
	require.NoError(t, db.Create(&addr).Error)

	id, err := Resolve(db, 1, addr.ID, validInput())
	require.NoError(t, err)
	assert.Equal(t, addr.ID, id)

	// No second address was written.
	var count int64
	require.NoError(t, db.Model(&models.ShippingAddress{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveRequiresOneOfIDOrPayload(t *testing.T) {
	db := setupTestDB(t)

	_, err := Resolve(db, 1, 0, nil)
	assert.ErrorIs(t, err, ErrMissingAddress)
}

func TestResolveRejectsIncompleteInline(t *testing.T) {
	db := setupTestDB(t)

	in := validInput()
	in.ZipCode = ""
	_, err := Resolve(db, 1, 0, in)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
