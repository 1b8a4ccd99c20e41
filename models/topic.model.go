package models

import "gorm.io/gorm"

type Topic struct {
	gorm.Model
	Name                 string `json:"name" gorm:"not null"`
	Difficulty           string `json:"difficulty" gorm:"default:''"`
	Duration             int    `json:"duration" gorm:"default:0"` // minutes
	SubscriptionRequired bool   `json:"subscription_required" gorm:"default:false"`
}
