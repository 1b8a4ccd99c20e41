package imageController

import (
	"log"

	"quizapi/config"
	"quizapi/database"
	"quizapi/middleware"
	"quizapi/models"
	"quizapi/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UploadImage stores a multipart upload on disk under a unique name and
// records its metadata.
func UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeMissingField, "A file upload is required!")
	}

	storedName, err := utils.SaveUploadedFile(fileHeader, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to store the file!")
	}

	image := models.Image{
		OriginalName: fileHeader.Filename,
		StoredName:   storedName,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
	}

	if err := database.Database.Db.Create(&image).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to save image record!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Image uploaded successfully.", fiber.Map{
		"id":          image.ID,
		"stored_name": image.StoredName,
		"url":         utils.GetFileURL(image.StoredName),
	})
}

func ListImages(c *fiber.Ctx) error {
	var images []models.Image
	if err := database.Database.Db.Order("id desc").Find(&images).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch images!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Images fetched successfully.", images)
}

func GetImage(c *fiber.Ctx) error {
	imageID, err := c.ParamsInt("id")
	if err != nil || imageID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, "Invalid image id!")
	}

	var image models.Image
	if err := database.Database.Db.First(&image, imageID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Image not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Failed to fetch image!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image fetched successfully.", image)
}
