package testController

import (
	"quizapi/middleware"
	"quizapi/models"
	testModels "quizapi/models/test"

	"gorm.io/gorm"
)

// resolveQuestionPool turns a filter descriptor into the candidate pool of
// question ids for the requested language. The matching fingerprint comes
// from testModels.FilterHashFor over the same three inputs.
func resolveQuestionPool(db *gorm.DB, userID uint, filterType string, filterID *uint, lang string) ([]uint, error) {
	switch filterType {
	case testModels.FilterFavorites:
		var favQuestionIDs []uint
		if err := db.Model(&models.UserFavoriteQuestion{}).
			Where("user_id = ?", userID).
			Pluck("question_id", &favQuestionIDs).Error; err != nil {
			return nil, err
		}
		if len(favQuestionIDs) == 0 {
			return nil, nil
		}
		var ids []uint
		if err := db.Model(&models.Question{}).
			Where("id IN ? AND lang = ?", favQuestionIDs, lang).
			Pluck("id", &ids).Error; err != nil {
			return nil, err
		}
		return ids, nil

	case testModels.FilterCategory:
		if filterID == nil {
			return nil, errMissingField("filter_id is required for the category filter!")
		}
		var category models.Category
		if err := db.First(&category, *filterID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errNotFound("Category not found!")
			}
			return nil, err
		}
		var catQuestionIDs []uint
		if err := db.Model(&models.QuestionCategory{}).
			Where("category_id = ?", category.ID).
			Pluck("question_id", &catQuestionIDs).Error; err != nil {
			return nil, err
		}
		if len(catQuestionIDs) == 0 {
			return nil, nil
		}
		var ids []uint
		if err := db.Model(&models.Question{}).
			Where("id IN ? AND lang = ?", catQuestionIDs, lang).
			Pluck("id", &ids).Error; err != nil {
			return nil, err
		}
		return ids, nil

	case testModels.FilterTopic:
		if filterID == nil {
			return nil, errMissingField("filter_id is required for the topic filter!")
		}
		var topic models.Topic
		if err := db.First(&topic, *filterID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errNotFound("Topic not found!")
			}
			return nil, err
		}
		if topic.SubscriptionRequired {
			active, err := middleware.HasActiveSubscription(db, userID)
			if err != nil {
				return nil, err
			}
			if !active {
				return nil, errPaymentRequired("An active subscription is required for this topic!")
			}
		}
		var ids []uint
		if err := db.Model(&models.Question{}).
			Where("topic_id = ? AND lang = ?", topic.ID, lang).
			Pluck("id", &ids).Error; err != nil {
			return nil, err
		}
		return ids, nil
	}

	return nil, errInvalidFieldValue("Unknown filter_type!")
}
