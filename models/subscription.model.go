package models

import (
	"time"

	"gorm.io/gorm"
)

// UserSubscription gives a user access to subscription-gated topics until ExpireAt.
// A daily sweep flips IsActive off once ExpireAt has passed.
type UserSubscription struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ExpireAt  time.Time `json:"expire_at"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	IsDeleted bool      `json:"-" gorm:"default:false"`
}
