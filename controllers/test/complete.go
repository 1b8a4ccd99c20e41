package testController

import (
	"time"

	"quizapi/database"
	"quizapi/middleware"
	testModels "quizapi/models/test"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CompleteTest abandons an active test and scores whatever was answered so
// far. Unlike auto-completion, the denominator is the answered subset: an
// abandoned test is scored on what was attempted.
func CompleteTest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	testID, err := c.ParamsInt("id")
	if err != nil || testID < 1 {
		return respondError(c, errInvalidFieldValue("Invalid test id!"))
	}

	var result CompleteTestResponse

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

		answeredCount, err := countAnswered(tx, t.ID)
		if err != nil {
			return err
		}

		scorePercent := 0
		if answeredCount > 0 {
			// Integer division truncates on purpose.
			scorePercent = t.CorrectCount * 100 / answeredCount
		}

		now := time.Now()
		if err := tx.Model(&t).Updates(map[string]interface{}{
			"status":        testModels.StatusAbandoned,
			"score_percent": scorePercent,
			"completed_at":  now,
		}).Error; err != nil {
			return err
		}

		result = CompleteTestResponse{
			Status:        testModels.StatusAbandoned,
			AnsweredCount: answeredCount,
			CorrectCount:  t.CorrectCount,
			ScorePercent:  scorePercent,
		}
		return nil
	})
	if txErr != nil {
		return respondError(c, txErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test completed.", result)
}
