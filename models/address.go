package models

import "time"

type ShippingAddress struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"userId"`
	FullName       string    `gorm:"not null" json:"fullName"`
	PhoneNumber    string    `gorm:"not null" json:"phoneNumber"`
	Address1       string    `gorm:"not null" json:"address1"`
	Address2       string    `json:"address2"`
	City           string    `gorm:"not null" json:"city"`
	StateID        uint      `gorm:"not null" json:"stateId"`
	State          *State    `gorm:"foreignKey:StateID" json:"state,omitempty"`
	ZipCode        string    `gorm:"not null" json:"zipCode"`
	CountryID      uint      `gorm:"not null" json:"countryId"`
	Country        *Country  `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	DefaultAddress bool      `gorm:"default:false" json:"defaultAddress"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Country struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CountryName string    `gorm:"uniqueIndex;not null" json:"countryName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type State struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StateName string    `gorm:"not null" json:"stateName"`
	CountryID uint      `gorm:"index;not null" json:"countryId"`
	Country   *Country  `gorm:"foreignKey:CountryID" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
