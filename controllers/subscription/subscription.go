package subscriptionController

import (
	"time"

	"quizapi/database"
	"quizapi/middleware"
	"quizapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GrantSubscription creates a subscription for a user until expire_at.
func GrantSubscription(c *fiber.Ctx) error {
	reqData := new(struct {
		UserID   uint      `json:"user_id"`
		ExpireAt time.Time `json:"expire_at"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidInput, "Invalid request body!")
	}

	if reqData.UserID == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeMissingField, "user_id is required!")
	}
	if reqData.ExpireAt.Before(time.Now()) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "expire_at must be in the future!")
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = false", reqData.UserID).First(&models.User{}).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "User not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch user!")
	}

	subscription := models.UserSubscription{
		UserID:   reqData.UserID,
		ExpireAt: reqData.ExpireAt,
		IsActive: true,
	}

	if err := db.Create(&subscription).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to create subscription!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subscription created successfully.", subscription)
}

// ListMySubscriptions lists the caller's subscriptions, newest first.
func ListMySubscriptions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	var subscriptions []models.UserSubscription
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userID).
		Order("created_at desc").Find(&subscriptions).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch subscriptions!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscriptions fetched successfully.", subscriptions)
}
