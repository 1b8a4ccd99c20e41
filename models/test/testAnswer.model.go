package test

import "gorm.io/gorm"

// TestQuestionAnswer records one answer the user picked for a slot.
// Rows are append-only: one per chosen answer id, never updated or deleted.
type TestQuestionAnswer struct {
	gorm.Model
	TestID     uint `json:"test_id" gorm:"index;not null"`
	QuestionID uint `json:"question_id" gorm:"index;not null"`
	AnswerID   uint `json:"answer_id" gorm:"not null"`
}
