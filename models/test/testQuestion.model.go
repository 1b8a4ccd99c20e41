package test

import (
	"time"

	"gorm.io/gorm"
)

// TestQuestion is one question slot inside a test. QuestionOrder is 1-based
// and the orders of a test form a permutation of 1..TotalQuestions.
// IsCorrect and AnsweredAt are set together, exactly once, never unset.
type TestQuestion struct {
	gorm.Model
	TestID        uint       `json:"test_id" gorm:"index;not null"`
	QuestionID    uint       `json:"question_id" gorm:"index;not null"`
	QuestionOrder int        `json:"order" gorm:"not null"`
	IsCorrect     *bool      `json:"is_correct"`
	AnsweredAt    *time.Time `json:"answered_at"`
}
