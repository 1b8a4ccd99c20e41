package lessonController

import (
	"quizapi/database"
	"quizapi/middleware"
	"quizapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetLesson(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid lesson id!")
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Lesson not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully.", lesson)
}

func CreateLesson(c *fiber.Ctx) error {
	reqData := new(struct {
		TopicID uint   `json:"topic_id"`
		Content string `json:"content"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidInput, "Invalid request body!")
	}

	// Lessons always hang off an existing topic
	if err := database.Database.Db.First(&models.Topic{}, reqData.TopicID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Topic not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch topic!")
	}

	lesson := models.Lesson{TopicID: reqData.TopicID, Content: reqData.Content}
	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to create lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully.", lesson)
}

func UpdateLesson(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid lesson id!")
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Lesson not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch lesson!")
	}

	reqData := new(struct {
		TopicID *uint   `json:"topic_id"`
		Content *string `json:"content"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidInput, "Invalid request body!")
	}

	updates := map[string]interface{}{}
	if reqData.TopicID != nil {
		updates["topic_id"] = *reqData.TopicID
	}
	if reqData.Content != nil {
		updates["content"] = *reqData.Content
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&lesson).Updates(updates).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to update lesson!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully.", lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid lesson id!")
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Lesson not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch lesson!")
	}

	if err := database.Database.Db.Unscoped().Delete(&lesson).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to delete lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully.", nil)
}
