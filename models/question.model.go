package models

import "gorm.io/gorm"

type Question struct {
	gorm.Model
	TopicID     uint    `json:"topic_id" gorm:"index;not null"`
	Name        string  `json:"name" gorm:"not null"`
	Lang        string  `json:"lang" gorm:"index;not null"`
	Content     *string `json:"content"`
	Explanation string  `json:"explanation" gorm:"default:''"`
}
