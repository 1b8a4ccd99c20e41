package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `json:"email" gorm:"unique;not null"`
	Password    string `json:"-" gorm:"not null"`
	Username    string `json:"username" gorm:"default:''"`
	PhoneNumber string `json:"phone_number" gorm:"default:''"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
