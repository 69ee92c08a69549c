package addressControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/middleware"
	"github.com/Rahul-rk007/shopping-kart-api/models"
)

var (
	// ErrMissingAddress: neither an existing address id nor an inline payload given.
	ErrMissingAddress = errors.New("shipping address is required")
	// ErrInvalidAddress: the referenced address does not exist or belongs to
	// someone else, or the inline payload is incomplete.
	ErrInvalidAddress = errors.New("invalid shipping address")
)

type AddressInput struct {
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	Address1       string `json:"address1"`
	Address2       string `json:"address2"`
	City           string `json:"city"`
	StateID        uint   `json:"stateId"`
	ZipCode        string `json:"zipCode"`
	CountryID      uint   `json:"countryId"`
	DefaultAddress bool   `json:"defaultAddress"`
}

func (in *AddressInput) validate() error {
	if in.FullName == "" || in.PhoneNumber == "" || in.Address1 == "" ||
		in.City == "" || in.StateID == 0 || in.ZipCode == "" || in.CountryID == 0 {
		return ErrInvalidAddress
	}
	return nil
}

func (in *AddressInput) toModel(userID uint) models.ShippingAddress {
	return models.ShippingAddress{
		UserID:         userID,
		FullName:       in.FullName,
		PhoneNumber:    in.PhoneNumber,
		Address1:       in.Address1,
		Address2:       in.Address2,
		City:           in.City,
		StateID:        in.StateID,
		ZipCode:        in.ZipCode,
		CountryID:      in.CountryID,
		DefaultAddress: in.DefaultAddress,
	}
}

// Resolve picks the shipping address for a checkout: an existing address id
// (which must belong to userID) or an inline payload persisted as a new address.
// Exactly one of the two paths runs.
func Resolve(tx *gorm.DB, userID uint, addressID uint, input *AddressInput) (uint, error) {
	if addressID != 0 {
		var existing models.ShippingAddress
		if err := tx.First(&existing, "id = ?", addressID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrInvalidAddress
			}
			return 0, err
		}
		if existing.UserID != userID {
			return 0, ErrInvalidAddress
		}
		return existing.ID, nil
	}

	if input != nil {
		if err := input.validate(); err != nil {
			return 0, err
		}
		addr := input.toModel(userID)
		if err := tx.Create(&addr).Error; err != nil {
			return 0, err
		}
		return addr.ID, nil
	}

	return 0, ErrMissingAddress
}

// -------- Handlers --------

// GET /api/shipping-addresses
func ListAddresses(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var addresses []models.ShippingAddress
		if err := db.Preload("State").Preload("Country").
			Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
			logger.Error("failed to list shipping addresses", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, addresses)
	}
}

// GET /api/shipping-addresses/:addressId
func GetAddress(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		addressID, err := strconv.ParseUint(c.Param("addressId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid address id"})
			return
		}

		var address models.ShippingAddress
		if err := db.Preload("State").Preload("Country").
			First(&address, "id = ?", addressID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Shipping address not found"})
				return
			}
			logger.Error("failed to fetch shipping address", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if address.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shipping address not found"})
			return
		}

		c.JSON(http.StatusOK, address)
	}
}

// POST /api/shipping-addresses
func CreateAddress(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		if err := input.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields except address2 are required"})
			return
		}

		addr := input.toModel(userID)
		if err := db.Create(&addr).Error; err != nil {
			logger.Error("failed to create shipping address", zap.Uint("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusCreated, addr)
	}
}

// PUT /api/shipping-addresses/:addressId
func UpdateAddress(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		addressID, err := strconv.ParseUint(c.Param("addressId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid address id"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		if err := input.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields except address2 are required"})
			return
		}

		var address models.ShippingAddress
		if err := db.First(&address, "id = ?", addressID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Shipping address not found"})
				return
			}
			logger.Error("failed to fetch shipping address", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if address.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shipping address not found"})
			return
		}

		address.FullName = input.FullName
		address.PhoneNumber = input.PhoneNumber
		address.Address1 = input.Address1
		address.Address2 = input.Address2
		address.City = input.City
		address.StateID = input.StateID
		address.ZipCode = input.ZipCode
		address.CountryID = input.CountryID
		address.DefaultAddress = input.DefaultAddress

		if err := db.Save(&address).Error; err != nil {
			logger.Error("failed to update shipping address", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, address)
	}
}
