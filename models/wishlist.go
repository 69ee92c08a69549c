package models

import "time"

type Wishlist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"userId"`
	Items     []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"products"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type WishlistItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	WishlistID  uint    `gorm:"index;not null" json:"-"`
	ProductID   uint    `gorm:"index;not null" json:"product"`
	ProductName string  `gorm:"not null" json:"productName"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image"`
}
