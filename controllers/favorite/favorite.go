package favoriteController

import (
	"quizapi/database"
	"quizapi/middleware"
	"quizapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListFavorites lists the caller's favorited questions.
func ListFavorites(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	db := database.Database.Db

	var questionIDs []uint
	if err := db.Model(&models.UserFavoriteQuestion{}).
		Where("user_id = ?", userID).
		Pluck("question_id", &questionIDs).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch favorites!")
	}

	questions := []models.Question{}
	if len(questionIDs) > 0 {
		if err := db.Where("id IN ?", questionIDs).Order("id asc").Find(&questions).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch favorites!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Favorites fetched successfully.", questions)
}

// AddFavorite adds a question to the caller's favorites.
func AddFavorite(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	questionID, err := c.ParamsInt("question_id")
	if err != nil || questionID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid question id!")
	}

	db := database.Database.Db

	if err := db.First(&models.Question{}, questionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Question not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch question!")
	}

	var existing models.UserFavoriteQuestion
	if err := db.Where("user_id = ? AND question_id = ?", userID, questionID).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.CodeAlreadyExists, "Question is already in favorites!")
	}

	favorite := models.UserFavoriteQuestion{UserID: userID, QuestionID: uint(questionID)}
	if err := db.Create(&favorite).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to add favorite!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added to favorites.", favorite)
}

// RemoveFavorite removes a question from the caller's favorites.
func RemoveFavorite(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	questionID, err := c.ParamsInt("question_id")
	if err != nil || questionID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid question id!")
	}

	var favorite models.UserFavoriteQuestion
	if err := database.Database.Db.Where("user_id = ? AND question_id = ?", userID, questionID).First(&favorite).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Question is not in favorites!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch favorite!")
	}

	if err := database.Database.Db.Unscoped().Delete(&favorite).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to remove favorite!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question removed from favorites.", nil)
}
