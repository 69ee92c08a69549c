package models

import "time"

type Cart struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID uint       `gorm:"uniqueIndex;not null" json:"userId"` // one cart per user
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"products"`
	// Derived: sum of Price * Quantity over Items, maintained on every mutation.
	CartTotal float64 `json:"cartTotal"`
	// Optimistic-concurrency token; every mutation does a conditional bump.
	Version   int64     `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CartItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CartID      uint   `gorm:"index;not null" json:"-"`
	ProductID   uint   `gorm:"index;not null" json:"product"`
	ProductName string `gorm:"not null" json:"productName"`
	Quantity    int    `gorm:"not null" json:"quantity"`
	// Price and Image are snapshots taken when the product was added;
	// they are not re-synced when the product changes.
	Price float64 `gorm:"not null" json:"price"`
	Image string  `json:"image"`
}
