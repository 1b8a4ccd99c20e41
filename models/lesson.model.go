package models

import "gorm.io/gorm"

type Lesson struct {
	gorm.Model
	TopicID uint   `json:"topic_id" gorm:"index;not null"`
	Content string `json:"content"`
}
