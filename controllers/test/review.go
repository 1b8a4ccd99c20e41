package testController

import (
	"quizapi/database"
	"quizapi/middleware"
	"quizapi/models"
	testModels "quizapi/models/test"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReviewTest reconstructs the full per-slot detail of a terminated test:
// question with explanation, every option with its correctness flag, and
// the answers the caller actually picked. Active tests cannot be reviewed.
func ReviewTest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	db := database.Database.Db

	t, err := loadOwnedTest(db, c, userID)
	if err != nil {
		return respondError(c, err)
	}

	if !t.Status.IsTerminal() {
		return respondError(c, errInvalidState("Test is still active!"))
	}

	var slots []testModels.TestQuestion
	if err := db.Where("test_id = ?", t.ID).Order("question_order asc").Find(&slots).Error; err != nil {
		return respondError(c, err)
	}

	reviewQuestions := make([]ReviewQuestionResponse, 0, len(slots))
	for _, slot := range slots {
		var question models.Question
		if err := db.First(&question, slot.QuestionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return respondError(c, errNotFound("Question not found!"))
			}
			return respondError(c, err)
		}

		var answers []models.Answer
		if err := db.Where("question_id = ?", question.ID).Find(&answers).Error; err != nil {
			return respondError(c, err)
		}

		options := make([]AnswerOptionWithCorrectness, len(answers))
		for i, a := range answers {
			options[i] = AnswerOptionWithCorrectness{ID: a.ID, Value: a.Value, IsCorrect: a.IsCorrect}
		}

		var selectedIDs []uint
		if err := db.Model(&testModels.TestQuestionAnswer{}).
			Where("test_id = ? AND question_id = ?", t.ID, question.ID).
			Pluck("answer_id", &selectedIDs).Error; err != nil {
			return respondError(c, err)
		}

		// An abandoned test may hold slots that were never answered.
		isCorrect := slot.IsCorrect != nil && *slot.IsCorrect

		reviewQuestions = append(reviewQuestions, ReviewQuestionResponse{
			Order: slot.QuestionOrder,
			Question: QuestionInfoWithExplanation{
				ID:          question.ID,
				Name:        question.Name,
				Content:     question.Content,
				Lang:        question.Lang,
				Explanation: question.Explanation,
			},
			Answers:           options,
			SelectedAnswerIDs: selectedIDs,
			IsCorrect:         isCorrect,
		})
	}

	scorePercent := 0
	if t.ScorePercent != nil {
		scorePercent = *t.ScorePercent
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test review fetched successfully.", TestReviewResponse{
		ID:             t.ID,
		FilterType:     t.FilterType,
		FilterID:       t.FilterID,
		Lang:           t.Lang,
		TotalQuestions: t.TotalQuestions,
		CorrectCount:   t.CorrectCount,
		ScorePercent:   scorePercent,
		Status:         t.Status,
		Questions:      reviewQuestions,
	})
}
