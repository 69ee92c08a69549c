package orderControllers

import (
	"errors"
	"strconv"

	"github.com/Rahul-rk007/shopping-kart-api/models"
)

// ErrInvalidCoupon: the coupon carries a value that is not a number.
var ErrInvalidCoupon = errors.New("invalid coupon value")

// Discount converts a coupon descriptor and a subtotal into a discount amount.
// A nil coupon or one without a value yields zero. The result is deliberately
// not clamped to [0, subTotal]; a large "amount" coupon can push the order
// total negative, matching the historic checkout behavior.
func Discount(subTotal float64, coupon *models.CouponDetails) (float64, error) {
	if coupon == nil || coupon.Value == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(coupon.Value, 64)
	if err != nil {
		return 0, ErrInvalidCoupon
	}

	switch coupon.Type {
	case models.CouponTypePercentage:
		return subTotal * value / 100, nil
	case models.CouponTypeAmount:
		return value, nil
	default:
		return 0, nil
	}
}
