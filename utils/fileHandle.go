package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveUploadedFile writes an uploaded file into destDir under a unique
// name and returns the stored name.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Unique filename so concurrent uploads never collide
	ext := filepath.Ext(file.Filename)
	storedName := uuid.NewString() + ext
	filePath := filepath.Join(destDir, storedName)

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return storedName, nil
}

func GetFileURL(storedName string) string {
	if storedName == "" {
		return ""
	}
	return "/uploads/" + storedName
}
