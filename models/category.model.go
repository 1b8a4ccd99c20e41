package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name string `json:"name" gorm:"not null"`
}

// QuestionCategory links a question to a category (many-to-many)
type QuestionCategory struct {
	gorm.Model
	QuestionID uint `json:"question_id" gorm:"index:idx_question_category,unique;not null"`
	CategoryID uint `json:"category_id" gorm:"index:idx_question_category,unique;not null"`
}
