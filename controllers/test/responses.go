package testController

import (
	"time"

	testModels "quizapi/models/test"
)

// TestResponse is the list/summary view of a test.
type TestResponse struct {
	ID             uint              `json:"id"`
	FilterType     string            `json:"filter_type"`
	FilterID       *uint             `json:"filter_id"`
	Lang           string            `json:"lang"`
	TotalQuestions int               `json:"total_questions"`
	AnsweredCount  int               `json:"answered_count"`
	CorrectCount   int               `json:"correct_count"`
	Status         testModels.Status `json:"status"`
	ScorePercent   *int              `json:"score_percent"`
	CreatedAt      time.Time         `json:"created_at"`
	CompletedAt    *time.Time        `json:"completed_at"`
}

func newTestResponse(t testModels.Test, answeredCount int) TestResponse {
	return TestResponse{
		ID:             t.ID,
		FilterType:     t.FilterType,
		FilterID:       t.FilterID,
		Lang:           t.Lang,
		TotalQuestions: t.TotalQuestions,
		AnsweredCount:  answeredCount,
		CorrectCount:   t.CorrectCount,
		Status:         t.Status,
		ScorePercent:   t.ScorePercent,
		CreatedAt:      t.CreatedAt,
		CompletedAt:    t.CompletedAt,
	}
}

// TestQuestionInfo is one slot row in the detail view.
type TestQuestionInfo struct {
	Order      int   `json:"order"`
	QuestionID uint  `json:"question_id"`
	IsAnswered bool  `json:"is_answered"`
	IsCorrect  *bool `json:"is_correct"`
}

// TestDetailResponse is the per-test detail view.
type TestDetailResponse struct {
	ID             uint               `json:"id"`
	FilterType     string             `json:"filter_type"`
	FilterID       *uint              `json:"filter_id"`
	Lang           string             `json:"lang"`
	TotalQuestions int                `json:"total_questions"`
	AnsweredCount  int                `json:"answered_count"`
	CorrectCount   int                `json:"correct_count"`
	Status         testModels.Status  `json:"status"`
	ScorePercent   *int               `json:"score_percent"`
	Questions      []TestQuestionInfo `json:"questions"`
}

// QuestionInfo is a question as shown during an active test (no explanation).
type QuestionInfo struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Content *string `json:"content"`
	Lang    string  `json:"lang"`
}

// AnswerOption is an option as shown during an active test (no correctness).
type AnswerOption struct {
	ID    uint   `json:"id"`
	Value string `json:"value"`
}

// CurrentQuestionResponse is the next unanswered slot of an active test.
type CurrentQuestionResponse struct {
	Order           int            `json:"order"`
	Question        QuestionInfo   `json:"question"`
	Answers         []AnswerOption `json:"answers"`
	MultipleAnswers bool           `json:"multiple_answers"`
}

// AnswerResultResponse is the outcome of one slot submission.
type AnswerResultResponse struct {
	IsCorrect        bool   `json:"is_correct"`
	CorrectAnswerIDs []uint `json:"correct_answer_ids"`
	Explanation      string `json:"explanation"`
	TestCompleted    bool   `json:"test_completed"`
	AnsweredCount    int    `json:"answered_count"`
	CorrectCount     int    `json:"correct_count"`
	ScorePercent     *int   `json:"score_percent"`
}

// CompleteTestResponse is the outcome of abandoning a test.
type CompleteTestResponse struct {
	Status        testModels.Status `json:"status"`
	AnsweredCount int               `json:"answered_count"`
	CorrectCount  int               `json:"correct_count"`
	ScorePercent  int               `json:"score_percent"`
}

// QuestionInfoWithExplanation is a question in the review view.
type QuestionInfoWithExplanation struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Content     *string `json:"content"`
	Lang        string  `json:"lang"`
	Explanation string  `json:"explanation"`
}

// AnswerOptionWithCorrectness is an option in the review view.
type AnswerOptionWithCorrectness struct {
	ID        uint   `json:"id"`
	Value     string `json:"value"`
	IsCorrect bool   `json:"is_correct"`
}

// ReviewQuestionResponse is one fully reconstructed slot.
type ReviewQuestionResponse struct {
	Order             int                           `json:"order"`
	Question          QuestionInfoWithExplanation   `json:"question"`
	Answers           []AnswerOptionWithCorrectness `json:"answers"`
	SelectedAnswerIDs []uint                        `json:"selected_answer_ids"`
	IsCorrect         bool                          `json:"is_correct"`
}

// TestReviewResponse is the full post-terminal review of a test.
type TestReviewResponse struct {
	ID             uint                     `json:"id"`
	FilterType     string                   `json:"filter_type"`
	FilterID       *uint                    `json:"filter_id"`
	Lang           string                   `json:"lang"`
	TotalQuestions int                      `json:"total_questions"`
	CorrectCount   int                      `json:"correct_count"`
	ScorePercent   int                      `json:"score_percent"`
	Status         testModels.Status        `json:"status"`
	Questions      []ReviewQuestionResponse `json:"questions"`
}
