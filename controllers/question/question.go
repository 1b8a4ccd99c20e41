package questionController

import (
	"quizapi/database"
	"quizapi/middleware"
	"quizapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListQuestions lists questions, optionally narrowed by lang and topic_id
// query parameters.
func ListQuestions(c *fiber.Ctx) error {
	query := database.Database.Db.Order("id asc")
	if lang := c.Query("lang"); lang != "" {
		query = query.Where("lang = ?", lang)
	}
	if topicID := c.QueryInt("topic_id"); topicID > 0 {
		query = query.Where("topic_id = ?", topicID)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch questions!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully.", questions)
}

func GetQuestion(c *fiber.Ctx) error {
	questionID, err := c.ParamsInt("id")
	if err != nil || questionID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid question id!")
	}

	var question models.Question
	if err := database.Database.Db.First(&question, questionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Question not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch question!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question fetched successfully.", question)
}

func CreateQuestion(c *fiber.Ctx) error {
	reqData := new(struct {
		TopicID     uint    `json:"topic_id"`
		Name        string  `json:"name"`
		Lang        string  `json:"lang"`
		Content     *string `json:"content"`
		Explanation string  `json:"explanation"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidInput, "Invalid request body!")
	}

	if err := database.Database.Db.First(&models.Topic{}, reqData.TopicID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Topic not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch topic!")
	}

	question := models.Question{
		TopicID:     reqData.TopicID,
		Name:        reqData.Name,
		Lang:        reqData.Lang,
		Content:     reqData.Content,
		Explanation: reqData.Explanation,
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to create question!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully.", question)
}

func UpdateQuestion(c *fiber.Ctx) error {
	questionID, err := c.ParamsInt("id")
	if err != nil || questionID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid question id!")
	}

	var question models.Question
	if err := database.Database.Db.First(&question, questionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Question not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch question!")
	}

	reqData := new(struct {
		TopicID     *uint   `json:"topic_id"`
		Name        *string `json:"name"`
		Lang        *string `json:"lang"`
		Content     *string `json:"content"`
		Explanation *string `json:"explanation"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidInput, "Invalid request body!")
	}

	updates := map[string]interface{}{}
	if reqData.TopicID != nil {
		updates["topic_id"] = *reqData.TopicID
	}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Lang != nil {
		updates["lang"] = *reqData.Lang
	}
	if reqData.Content != nil {
		updates["content"] = *reqData.Content
	}
	if reqData.Explanation != nil {
		updates["explanation"] = *reqData.Explanation
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&question).Updates(updates).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to update question!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully.", question)
}

func DeleteQuestion(c *fiber.Ctx) error {
	questionID, err := c.ParamsInt("id")
	if err != nil || questionID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid question id!")
	}

	var question models.Question
	if err := database.Database.Db.First(&question, questionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Question not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch question!")
	}

	if err := database.Database.Db.Unscoped().Delete(&question).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to delete question!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully.", nil)
}

// AttachCategory links a question to a category.
func AttachCategory(c *fiber.Ctx) error {
	questionID, err := c.ParamsInt("id")
	if err != nil || questionID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid question id!")
	}
	categoryID, err := c.ParamsInt("category_id")
	if err != nil || categoryID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid category id!")
	}

	db := database.Database.Db

	if err := db.First(&models.Question{}, questionID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Question not found!")
	}
	if err := db.First(&models.Category{}, categoryID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Category not found!")
	}

	var existing models.QuestionCategory
	if err := db.Where("question_id = ? AND category_id = ?", questionID, categoryID).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.CodeAlreadyExists, "Question is already in this category!")
	}

	link := models.QuestionCategory{QuestionID: uint(questionID), CategoryID: uint(categoryID)}
	if err := db.Create(&link).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to attach category!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category attached successfully.", link)
}

// DetachCategory removes a question-category link.
func DetachCategory(c *fiber.Ctx) error {
	questionID, err := c.ParamsInt("id")
	if err != nil || questionID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid question id!")
	}
	categoryID, err := c.ParamsInt("category_id")
	if err != nil || categoryID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid category id!")
	}

	var link models.QuestionCategory
	if err := database.Database.Db.Where("question_id = ? AND category_id = ?", questionID, categoryID).First(&link).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Question is not in this category!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch link!")
	}

	if err := database.Database.Db.Unscoped().Delete(&link).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to detach category!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category detached successfully.", nil)
}
