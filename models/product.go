package models

import "time"

type Product struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ProductName   string      `gorm:"not null" json:"productName"`
	SubcategoryID uint        `gorm:"index;not null" json:"subcategoryId"`
	Subcategory   Subcategory `gorm:"foreignKey:SubcategoryID" json:"subcategory"`
	Price         float64     `gorm:"not null" json:"price"`
	StockQuantity int         `gorm:"not null" json:"stockQuantity"`
	Description   string      `json:"description"`
	// Bare filenames under uploads/products/<id>/; expanded to full URLs at the boundary.
	ImageURLs   []string  `gorm:"serializer:json" json:"imageUrls"`
	SKU         string    `gorm:"uniqueIndex;not null" json:"sku"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	ProductType string    `json:"productType"`
	Brand       string    `json:"brand"`
	Color       string    `json:"color"`
	Size        string    `json:"size"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
