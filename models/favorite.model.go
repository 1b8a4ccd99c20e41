package models

import "gorm.io/gorm"

type UserFavoriteQuestion struct {
	gorm.Model
	UserID     uint `json:"user_id" gorm:"index:idx_user_favorite,unique;not null"`
	QuestionID uint `json:"question_id" gorm:"index:idx_user_favorite,unique;not null"`
}
