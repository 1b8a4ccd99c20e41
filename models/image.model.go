package models

import "gorm.io/gorm"

type Image struct {
	gorm.Model
	OriginalName string `json:"original_name"`
	StoredName   string `json:"stored_name" gorm:"unique;not null"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
}
