package testController

import (
	"math/rand"
	"sync"
	"time"

	"quizapi/database"
	"quizapi/middleware"
	testModels "quizapi/models/test"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	minQuestionsCount = 1
	maxQuestionsCount = 25
)

// testRng is the sampling source. Package-level so tests can swap in a
// seeded source and assert the exact composition of a created test.
// rand.Rand is not safe for concurrent use and handlers run on concurrent
// goroutines, so every use goes through testRngMu.
var (
	testRng   = rand.New(rand.NewSource(time.Now().UnixNano()))
	testRngMu sync.Mutex
)

// sampleQuestionIDs picks count distinct ids uniformly at random without
// replacement: unbiased shuffle, then prefix.
func sampleQuestionIDs(pool []uint, count int) []uint {
	ids := make([]uint, len(pool))
	copy(ids, pool)
	testRngMu.Lock()
	testRng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	testRngMu.Unlock()
	return ids[:count]
}

// CreateTest materializes a new test: resolves the filter pool, enforces the
// one-active-test-per-filter rule, samples the questions and persists the
// test together with its question slots in a single transaction.
func CreateTest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	reqData := new(struct {
		FilterType     string `json:"filter_type"`
		FilterID       *uint  `json:"filter_id"`
		Lang           string `json:"lang"`
		QuestionsCount int    `json:"questions_count"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidInput, "Invalid request body!")
	}

	switch reqData.FilterType {
	case testModels.FilterFavorites, testModels.FilterCategory, testModels.FilterTopic:
	default:
		return respondError(c, errInvalidFieldValue("Unknown filter_type!"))
	}

	if reqData.FilterType != testModels.FilterFavorites && reqData.FilterID == nil {
		return respondError(c, errMissingField("filter_id is required for this filter_type!"))
	}

	if reqData.QuestionsCount < minQuestionsCount || reqData.QuestionsCount > maxQuestionsCount {
		return respondError(c, errInvalidInput("questions_count must be between 1 and 25!"))
	}

	filterHash := testModels.FilterHashFor(reqData.FilterType, reqData.FilterID, reqData.Lang)

	db := database.Database.Db

	pool, err := resolveQuestionPool(db, userID, reqData.FilterType, reqData.FilterID, reqData.Lang)
	if err != nil {
		return respondError(c, err)
	}

	if len(pool) < reqData.QuestionsCount {
		return respondError(c, errInvalidInput("Not enough questions match this filter!"))
	}

	selectedIDs := sampleQuestionIDs(pool, reqData.QuestionsCount)

	newTest := testModels.Test{
		UserID:         userID,
		FilterType:     reqData.FilterType,
		FilterID:       reqData.FilterID,
		Lang:           reqData.Lang,
		FilterHash:     filterHash,
		TotalQuestions: reqData.QuestionsCount,
		CorrectCount:   0,
		Status:         testModels.StatusActive,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// At most one active test per (user, filter shape) at any time.
		var existing testModels.Test
		err := tx.Where("user_id = ? AND filter_hash = ? AND status = ? AND is_deleted = false",
			userID, filterHash, testModels.StatusActive).First(&existing).Error
		if err == nil {
			return errAlreadyExists("You already have an active test for this filter!")
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := tx.Create(&newTest).Error; err != nil {
			return err
		}

		slots := make([]testModels.TestQuestion, len(selectedIDs))
		for i, questionID := range selectedIDs {
			slots[i] = testModels.TestQuestion{
				TestID:        newTest.ID,
				QuestionID:    questionID,
				QuestionOrder: i + 1,
			}
		}
		return tx.Create(&slots).Error
	})
	if err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Test created successfully.", newTestResponse(newTest, 0))
}

// ListTests lists the caller's tests, optionally filtered by status.
func ListTests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	db := database.Database.Db

	query := db.Where("user_id = ? AND is_deleted = false", userID)
	if raw := c.Query("status"); raw != "" {
		status, err := testModels.ParseStatus(raw)
		if err != nil {
			return respondError(c, errInvalidFieldValue("Unknown status filter!"))
		}
		query = query.Where("status = ?", status)
	}

	var tests []testModels.Test
	if err := query.Order("created_at desc").Find(&tests).Error; err != nil {
		return respondError(c, err)
	}

	responses := make([]TestResponse, 0, len(tests))
	for _, t := range tests {
		answered, err := countAnswered(db, t.ID)
		if err != nil {
			return respondError(c, err)
		}
		responses = append(responses, newTestResponse(t, answered))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tests fetched successfully.", responses)
}

// TestHistory lists the caller's terminated tests, most recent first.
func TestHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	db := database.Database.Db

	var tests []testModels.Test
	if err := db.Where("user_id = ? AND is_deleted = false AND status <> ?", userID, testModels.StatusActive).
		Order("completed_at desc").Find(&tests).Error; err != nil {
		return respondError(c, err)
	}

	responses := make([]TestResponse, 0, len(tests))
	for _, t := range tests {
		answered := t.TotalQuestions
		if t.Status == testModels.StatusAbandoned {
			// Abandoned tests may have unanswered slots.
			var err error
			answered, err = countAnswered(db, t.ID)
			if err != nil {
				return respondError(c, err)
			}
		}
		responses = append(responses, newTestResponse(t, answered))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test history fetched successfully.", responses)
}

// GetTest returns the per-slot state of one test.
func GetTest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	db := database.Database.Db

	t, err := loadOwnedTest(db, c, userID)
	if err != nil {
		return respondError(c, err)
	}

	var slots []testModels.TestQuestion
	if err := db.Where("test_id = ?", t.ID).Order("question_order asc").Find(&slots).Error; err != nil {
		return respondError(c, err)
	}

	questions := make([]TestQuestionInfo, len(slots))
	answered := 0
	for i, slot := range slots {
		isAnswered := slot.AnsweredAt != nil
		if isAnswered {
			answered++
		}
		questions[i] = TestQuestionInfo{
			Order:      slot.QuestionOrder,
			QuestionID: slot.QuestionID,
			IsAnswered: isAnswered,
			IsCorrect:  slot.IsCorrect,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test fetched successfully.", TestDetailResponse{
		ID:             t.ID,
		FilterType:     t.FilterType,
		FilterID:       t.FilterID,
		Lang:           t.Lang,
		TotalQuestions: t.TotalQuestions,
		AnsweredCount:  answered,
		CorrectCount:   t.CorrectCount,
		Status:         t.Status,
		ScorePercent:   t.ScorePercent,
		Questions:      questions,
	})
}

// DeleteTest soft-deletes a test. The row stays for audit but is excluded
// from every further read regardless of status.
func DeleteTest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	db := database.Database.Db

	t, err := loadOwnedTest(db, c, userID)
	if err != nil {
		return respondError(c, err)
	}

	if err := db.Model(t).Update("is_deleted", true).Error; err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test deleted successfully.", nil)
}

// loadOwnedTest fetches the non-deleted test from the :id route param and
// verifies the caller owns it.
func loadOwnedTest(db *gorm.DB, c *fiber.Ctx, userID uint) (*testModels.Test, error) {
	testID, err := c.ParamsInt("id")
	if err != nil || testID < 1 {
		return nil, errInvalidFieldValue("Invalid test id!")
	}

	var t testModels.Test
	if err := db.Where("id = ? AND is_deleted = false", testID).First(&t).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errNotFound("Test not found!")
		}
		return nil, err
	}

	if t.UserID != userID {
		return nil, errForbidden("You do not own this test!")
	}

	return &t, nil
}

func countAnswered(db *gorm.DB, testID uint) (int, error) {
	var answered int64
	err := db.Model(&testModels.TestQuestion{}).
		Where("test_id = ? AND answered_at IS NOT NULL", testID).
		Count(&answered).Error
	return int(answered), err
}
