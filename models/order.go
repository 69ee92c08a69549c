package models

import (
	"encoding/json"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

type CouponType string

const (
	CouponTypePercentage CouponType = "percentage"
	CouponTypeAmount     CouponType = "amount"
)

// CouponDetails is passed through from the client at checkout and stored on the
// order verbatim. Value accepts either a JSON number or a numeric string.
type CouponDetails struct {
	Type  CouponType `json:"type"`
	Value string     `json:"value"`
}

func (cd *CouponDetails) UnmarshalJSON(b []byte) error {
	var raw struct {
		Type  CouponType      `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	cd.Type = raw.Type
	if len(raw.Value) == 0 || string(raw.Value) == "null" {
		cd.Value = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(raw.Value, &s); err == nil {
		cd.Value = s
		return nil
	}
	cd.Value = string(raw.Value)
	return nil
}

type Order struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	UserID            uint             `gorm:"index;not null" json:"userId"`
	OrderNumber       string           `gorm:"uniqueIndex;not null" json:"orderNumber"`
	OrderDate         time.Time        `gorm:"not null" json:"orderDate"`
	Items             []OrderItem      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	SubTotal          float64          `gorm:"not null" json:"subTotal"`
	CouponCode        string           `json:"couponCode"`
	CouponDetails     *CouponDetails   `gorm:"serializer:json" json:"couponDetails"`
	ShippingAddressID uint             `gorm:"not null" json:"shippingAddressId"`
	ShippingAddress   *ShippingAddress `gorm:"foreignKey:ShippingAddressID" json:"shippingAddress,omitempty"`
	PhoneNumber       string           `gorm:"not null" json:"phoneNumber"`
	ShippingMethod    string           `gorm:"not null" json:"shippingMethod"`
	ShippingCharges   float64          `gorm:"not null" json:"shippingCharges"`
	TotalAmount       float64          `gorm:"not null" json:"totalAmount"`
	PaymentMethod     string           `gorm:"not null" json:"paymentMethod"`
	Status            OrderStatus      `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// OrderItem is a by-value snapshot of a cart line at checkout time.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index;not null" json:"-"`
	ProductID   uint    `gorm:"not null" json:"product"`
	ProductName string  `gorm:"not null" json:"productName"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image"`
}
