package testController

import (
	"time"

	"quizapi/database"
	"quizapi/middleware"
	"quizapi/models"
	testModels "quizapi/models/test"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCurrentQuestion returns the lowest-order unanswered slot of an active
// test, with the question stripped of its explanation and the options
// stripped of their correctness flags.
func GetCurrentQuestion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	db := database.Database.Db

	t, err := loadOwnedTest(db, c, userID)
	if err != nil {
		return respondError(c, err)
	}

	if t.Status != testModels.StatusActive {
		return respondError(c, errInvalidState("Test is not active!"))
	}

	var slot testModels.TestQuestion
	if err := db.Where("test_id = ? AND answered_at IS NULL", t.ID).
		Order("question_order asc").First(&slot).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return respondError(c, errNotFound("No unanswered questions left!"))
		}
		return respondError(c, err)
	}

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

	options := make([]AnswerOption, len(answers))
	correctCount := 0
	for i, a := range answers {
		options[i] = AnswerOption{ID: a.ID, Value: a.Value}
		if a.IsCorrect {
			correctCount++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Current question fetched successfully.", CurrentQuestionResponse{
		Order: slot.QuestionOrder,
		Question: QuestionInfo{
			ID:      question.ID,
			Name:    question.Name,
			Content: question.Content,
			Lang:    question.Lang,
		},
		Answers:         options,
		MultipleAnswers: correctCount > 1,
	})
}

// AnswerQuestion scores one slot submission inside a single transaction.
// A slot is scored exactly once: the answered_at IS NULL guard on the
// update is the atomic check-and-set, so a racing duplicate loses with
// Conflict instead of double-counting.
func AnswerQuestion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	testID, err := c.ParamsInt("id")
	if err != nil || testID < 1 {
		return respondError(c, errInvalidFieldValue("Invalid test id!"))
	}

	reqData := new(struct {
		QuestionID uint   `json:"question_id"`
		AnswerIDs  []uint `json:"answer_ids"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidInput, "Invalid request body!")
	}

	if reqData.QuestionID == 0 {
		return respondError(c, errMissingField("question_id is required!"))
	}
	if len(reqData.AnswerIDs) == 0 {
		return respondError(c, errMissingField("answer_ids must not be empty!"))
	}

	var result AnswerResultResponse

	txErr := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var t testModels.Test
		if err := tx.Where("id = ? AND is_deleted = false", testID).First(&t).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errNotFound("Test not found!")
			}
			return err
		}

		if t.UserID != userID {
			return errForbidden("You do not own this test!")
		}

		if t.Status != testModels.StatusActive {
			return errInvalidState("Test is not active!")
		}

		var slot testModels.TestQuestion
		if err := tx.Where("test_id = ? AND question_id = ?", t.ID, reqData.QuestionID).First(&slot).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errNotFound("Question is not part of this test!")
			}
			return err
		}

		if slot.AnsweredAt != nil {
			return errConflict("Question has already been answered!")
		}

		var question models.Question
		if err := tx.First(&question, reqData.QuestionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errNotFound("Question not found!")
			}
			return err
		}

		var correctIDs []uint
		if err := tx.Model(&models.Answer{}).
			Where("question_id = ? AND is_correct = true", question.ID).
			Pluck("id", &correctIDs).Error; err != nil {
			return err
		}

		// Correct iff the submitted set equals the correct set exactly.
		// Supersets and subsets both fail the slot.
		isCorrect := sameIDSet(reqData.AnswerIDs, correctIDs)

		selections := make([]testModels.TestQuestionAnswer, len(reqData.AnswerIDs))
		for i, answerID := range reqData.AnswerIDs {
			selections[i] = testModels.TestQuestionAnswer{
				TestID:     t.ID,
				QuestionID: question.ID,
				AnswerID:   answerID,
			}
		}
		if err := tx.Create(&selections).Error; err != nil {
			return err
		}

		now := time.Now()
		res := tx.Model(&testModels.TestQuestion{}).
			Where("id = ? AND answered_at IS NULL", slot.ID).
			Updates(map[string]interface{}{"is_correct": isCorrect, "answered_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// A concurrent submission won the slot.
			return errConflict("Question has already been answered!")
		}

		// Bump the counter in the database instead of writing back this
		// transaction's snapshot, so a concurrent submission for another
		// slot is never lost. The write also takes the test row lock: by
		// the time the counts below run, a racing submission that held it
		// has committed and its slot is visible.
		delta := 0
		if isCorrect {
			delta = 1
		}
		if err := tx.Model(&testModels.Test{}).Where("id = ?", t.ID).
			UpdateColumn("correct_count", gorm.Expr("correct_count + ?", delta)).Error; err != nil {
			return err
		}

		var answered, correctTotal int64
		if err := tx.Model(&testModels.TestQuestion{}).
			Where("test_id = ? AND answered_at IS NOT NULL", t.ID).
			Count(&answered).Error; err != nil {
			return err
		}
		if err := tx.Model(&testModels.TestQuestion{}).
			Where("test_id = ? AND is_correct = true", t.ID).
			Count(&correctTotal).Error; err != nil {
			return err
		}

		completed := int(answered) == t.TotalQuestions
		newCorrectCount := int(correctTotal)

		var scorePercent *int
		if completed {
			// Integer division truncates on purpose.
			score := newCorrectCount * 100 / t.TotalQuestions
			if err := tx.Model(&t).Updates(map[string]interface{}{
				"status":        testModels.StatusCompleted,
				"score_percent": score,
				"completed_at":  now,
			}).Error; err != nil {
				return err
			}
			scorePercent = &score
		}

		result = AnswerResultResponse{
			IsCorrect:        isCorrect,
			CorrectAnswerIDs: correctIDs,
			Explanation:      question.Explanation,
			TestCompleted:    completed,
			AnsweredCount:    int(answered),
			CorrectCount:     newCorrectCount,
			ScorePercent:     scorePercent,
		}
		return nil
	})
	if txErr != nil {
		return respondError(c, txErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer submitted!", result)
}

// sameIDSet compares two id lists as sets.
func sameIDSet(a, b []uint) bool {
	setA := make(map[uint]struct{}, len(a))
	for _, id := range a {
		setA[id] = struct{}{}
	}
	setB := make(map[uint]struct{}, len(b))
	for _, id := range b {
		setB[id] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for id := range setA {
		if _, ok := setB[id]; !ok {
			return false
		}
	}
	return true
}
