package test

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Status of a test session. Completed and Abandoned are terminal; soft
// deletion is a separate flag and never touches the status.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// ParseStatus validates a raw status value at construction time so that
// unknown states are rejected before they ever reach a query or transition.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusCompleted, StatusAbandoned:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown test status: %q", s)
}

// IsTerminal reports whether no further slot mutation is possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// FilterTypes accepted when creating a test.
const (
	FilterFavorites = "favorites"
	FilterCategory  = "category"
	FilterTopic     = "topic"
)

// Test is one instance of a user taking a sampled quiz.
type Test struct {
	gorm.Model
	UserID         uint       `json:"user_id" gorm:"index;not null"`
	FilterType     string     `json:"filter_type" gorm:"not null"`
	FilterID       *uint      `json:"filter_id"`
	Lang           string     `json:"lang" gorm:"not null"`
	FilterHash     string     `json:"-" gorm:"index;not null"`
	TotalQuestions int        `json:"total_questions" gorm:"not null"`
	CorrectCount   int        `json:"correct_count" gorm:"default:0"`
	Status         Status     `json:"status" gorm:"type:varchar(20);default:'active'"`
	ScorePercent   *int       `json:"score_percent"`
	CompletedAt    *time.Time `json:"completed_at"`
	IsDeleted      bool       `json:"-" gorm:"default:false"`
}

// FilterHashFor derives the deduplication fingerprint for a filter shape.
// The no-id shape is deliberately distinct from any id-carrying shape.
func FilterHashFor(filterType string, filterID *uint, lang string) string {
	if filterID != nil {
		return fmt.Sprintf("%s:%d:%s", filterType, *filterID, lang)
	}
	return fmt.Sprintf("%s:%s", filterType, lang)
}
