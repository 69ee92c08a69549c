package models

import "time"

type User struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	FirstName            string     `gorm:"not null" json:"firstName"`
	LastName             string     `gorm:"not null" json:"lastName"`
	Email                string     `gorm:"uniqueIndex;not null" json:"email"`
	MobileNumber         string     `gorm:"not null" json:"mobileNumber"`
	Birthdate            *time.Time `json:"birthdate"`
	Gender               string     `json:"gender"`
	Password             string     `gorm:"not null" json:"-"`
	ResetPasswordToken   string     `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}
