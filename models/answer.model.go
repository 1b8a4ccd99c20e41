package models

import "gorm.io/gorm"

// Answer is one option of a question. More than one answer of a question
// may be flagged correct (multi-select questions).
type Answer struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Value      string `json:"value" gorm:"not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
}
