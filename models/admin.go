package models

import "time"

type AdminType string

const (
	AdminTypeSuper AdminType = "superadmin"
	AdminTypeSub   AdminType = "subadmin"
)

type Admin struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	FirstName            string     `gorm:"not null" json:"firstName"`
	LastName             string     `json:"lastName"`
	Email                string     `gorm:"uniqueIndex;not null" json:"email"`
	MobileNumber         string     `json:"mobileNumber"`
	Gender               string     `json:"gender"`
	Password             string     `gorm:"not null" json:"-"`
	AdminType            AdminType  `gorm:"type:VARCHAR(20);not null" json:"adminType"`
	ResetPasswordToken   string     `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}
