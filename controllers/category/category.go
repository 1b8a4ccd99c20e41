package categoryController

import (
	"quizapi/database"
	"quizapi/middleware"
	"quizapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Order("id asc").Find(&categories).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch categories!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully.", categories)
}

func GetCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid category id!")
	}

	var category models.Category
	if err := database.Database.Db.First(&category, categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Category not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch category!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched successfully.", category)
}

func CreateCategory(c *fiber.Ctx) error {
	reqData := new(struct {
		Name string `json:"name"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidInput, "Invalid request body!")
	}

	category := models.Category{Name: reqData.Name}
	if err := database.Database.Db.Create(&category).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to create category!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully.", category)
}

func UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid category id!")
	}

	var category models.Category
	if err := database.Database.Db.First(&category, categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Category not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch category!")
	}

	reqData := new(struct {
		Name *string `json:"name"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidInput, "Invalid request body!")
	}

	if reqData.Name != nil {
		if err := database.Database.Db.Model(&category).Update("name", *reqData.Name).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to update category!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully.", category)
}

func DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid category id!")
	}

	var category models.Category
	if err := database.Database.Db.First(&category, categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Category not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch category!")
	}

	if err := database.Database.Db.Unscoped().Delete(&category).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to delete category!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully.", nil)
}
