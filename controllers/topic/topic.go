package topicController

import (
	"quizapi/database"
	"quizapi/middleware"
	"quizapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ListTopics(c *fiber.Ctx) error {
	var topics []models.Topic
	if err := database.Database.Db.Order("id asc").Find(&topics).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch topics!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topics fetched successfully.", topics)
}

func GetTopic(c *fiber.Ctx) error {
	topicID, err := c.ParamsInt("id")
	if err != nil || topicID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid topic id!")
	}

	var topic models.Topic
	if err := database.Database.Db.First(&topic, topicID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Topic not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch topic!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic fetched successfully.", topic)
}

func CreateTopic(c *fiber.Ctx) error {
	reqData := new(struct {
		Name                 string `json:"name"`
		Difficulty           string `json:"difficulty"`
		Duration             int    `json:"duration"`
		SubscriptionRequired bool   `json:"subscription_required"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidInput, "Invalid request body!")
	}

	topic := models.Topic{
		Name:                 reqData.Name,
		Difficulty:           reqData.Difficulty,
		Duration:             reqData.Duration,
		SubscriptionRequired: reqData.SubscriptionRequired,
	}

	if err := database.Database.Db.Create(&topic).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to create topic!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic created successfully.", topic)
}

func UpdateTopic(c *fiber.Ctx) error {
	topicID, err := c.ParamsInt("id")
	if err != nil || topicID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid topic id!")
	}

	var topic models.Topic
	if err := database.Database.Db.First(&topic, topicID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Topic not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch topic!")
	}

	reqData := new(struct {
		Name                 *string `json:"name"`
		Difficulty           *string `json:"difficulty"`
		Duration             *int    `json:"duration"`
		SubscriptionRequired *bool   `json:"subscription_required"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidInput, "Invalid request body!")
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Difficulty != nil {
		updates["difficulty"] = *reqData.Difficulty
	}
	if reqData.Duration != nil {
		updates["duration"] = *reqData.Duration
	}
	if reqData.SubscriptionRequired != nil {
		updates["subscription_required"] = *reqData.SubscriptionRequired
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&topic).Updates(updates).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to update topic!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic updated successfully.", topic)
}

func DeleteTopic(c *fiber.Ctx) error {
	topicID, err := c.ParamsInt("id")
	if err != nil || topicID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid topic id!")
	}

	var topic models.Topic
	if err := database.Database.Db.First(&topic, topicID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Topic not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch topic!")
	}

	if err := database.Database.Db.Unscoped().Delete(&topic).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to delete topic!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic deleted successfully.", nil)
}

// ListTopicLessons lists lessons under a topic. Subscription gating is done
// by middleware.CheckTopicAccessMiddleware on the route.
func ListTopicLessons(c *fiber.Ctx) error {
	topicID, err := c.ParamsInt("id")
	if err != nil || topicID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid topic id!")
	}

	var lessons []models.Lesson
	if err := database.Database.Db.Where("topic_id = ?", topicID).Order("id asc").Find(&lessons).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch lessons!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully.", lessons)
}
