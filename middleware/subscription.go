package middleware

import (
	"time"

	"quizapi/database"
	"quizapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HasActiveSubscription checks whether the user currently holds an active,
// unexpired subscription.
func HasActiveSubscription(db *gorm.DB, userID uint) (bool, error) {
	var sub models.UserSubscription
	err := db.Where("user_id = ? AND is_active = true AND is_deleted = false AND expire_at > ?",
		userID, time.Now()).First(&sub).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CheckTopicAccessMiddleware guards topic-scoped routes: topics flagged
// subscription_required are only served to users with an active subscription.
func CheckTopicAccessMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return ErrorResponse(c, fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized: User ID not found")
	}

	topicID, err := c.ParamsInt("id")
	if err != nil || topicID < 1 {
		return ErrorResponse(c, fiber.StatusBadRequest, CodeInvalidFieldValue, "Invalid topic id!")
	}

	var topic models.Topic
	if err := database.Database.Db.First(&topic, topicID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrorResponse(c, fiber.StatusNotFound, CodeNotFound, "Topic not found!")
		}
		return ErrorResponse(c, fiber.StatusInternalServerError, CodeInternalError, "Server error while checking topic access!")
	}

	if topic.SubscriptionRequired {
		active, err := HasActiveSubscription(database.Database.Db, userID)
		if err != nil {
			return ErrorResponse(c, fiber.StatusInternalServerError, CodeInternalError, "Server error while checking subscription!")
		}
		if !active {
			return ErrorResponse(c, fiber.StatusPaymentRequired, CodePaymentRequired, "An active subscription is required for this topic!")
		}
	}

	return c.Next()
}
