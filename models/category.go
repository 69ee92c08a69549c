package models

import "time"

type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CategoryName string    `gorm:"not null" json:"categoryName"`
	Description  string    `gorm:"not null" json:"description"`
	ImageURL     string    `json:"imageUrl"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Subcategory struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	SubcategoryName string    `gorm:"not null" json:"subcategoryName"`
	CategoryID      uint      `gorm:"index;not null" json:"categoryId"`
	Category        Category  `gorm:"foreignKey:CategoryID" json:"-"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"imageUrl"`
	IsActive        bool      `gorm:"default:true" json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
