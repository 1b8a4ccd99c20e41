package answerController

import (
	"quizapi/database"
	"quizapi/middleware"
	"quizapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListQuestionAnswers lists all answer options of a question, including
// correctness flags. This is the content-management view, not the one
// served to an active test.
func ListQuestionAnswers(c *fiber.Ctx) error {
	questionID, err := c.ParamsInt("question_id")
	if err != nil || questionID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid question id!")
	}

	var answers []models.Answer
	if err := database.Database.Db.Where("question_id = ?", questionID).Order("id asc").Find(&answers).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch answers!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answers fetched successfully.", answers)
}

func CreateAnswer(c *fiber.Ctx) error {
	reqData := new(struct {
		QuestionID uint   `json:"question_id"`
		Value      string `json:"value"`
		IsCorrect  bool   `json:"is_correct"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidInput, "Invalid request body!")
	}

	if err := database.Database.Db.First(&models.Question{}, reqData.QuestionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Question not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch question!")
	}

	answer := models.Answer{
		QuestionID: reqData.QuestionID,
		Value:      reqData.Value,
		IsCorrect:  reqData.IsCorrect,
	}

	if err := database.Database.Db.Create(&answer).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to create answer!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Answer created successfully.", answer)
}

func UpdateAnswer(c *fiber.Ctx) error {
	answerID, err := c.ParamsInt("id")
	if err != nil || answerID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid answer id!")
	}

	var answer models.Answer
	if err := database.Database.Db.First(&answer, answerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Answer not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch answer!")
	}

	reqData := new(struct {
		Value     *string `json:"value"`
		IsCorrect *bool   `json:"is_correct"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidInput, "Invalid request body!")
	}

	updates := map[string]interface{}{}
	if reqData.Value != nil {
		updates["value"] = *reqData.Value
	}
	if reqData.IsCorrect != nil {
		updates["is_correct"] = *reqData.IsCorrect
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&answer).Updates(updates).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to update answer!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer updated successfully.", answer)
}

func DeleteAnswer(c *fiber.Ctx) error {
	answerID, err := c.ParamsInt("id")
	if err != nil || answerID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid answer id!")
	}

	var answer models.Answer
	if err := database.Database.Db.First(&answer, answerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Answer not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch answer!")
	}

	if err := database.Database.Db.Unscoped().Delete(&answer).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to delete answer!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer deleted successfully.", nil)
}
