package testController

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	testModels "quizapi/models/test"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAnswerScoresExactSetMatchOnly(t *testing.T) {
	env := setupEnv(t)
	topic := env.createTopic(t, "Sets", false)

	q1, correct1, _ := env.createQuestion(t, topic.ID, "en", "Q1", []string{"a", "b", "c", "d"}, 2)
	q2, correct2, _ := env.createQuestion(t, topic.ID, "en", "Q2", []string{"a", "b", "c", "d"}, 2)
	q3, correct3, wrong3 := env.createQuestion(t, topic.ID, "en", "Q3", []string{"a", "b", "c", "d"}, 2)

	testID := env.createTestSession(t, testModels.FilterTopic, &topic.ID, "en", 3)

	// Exact match in any order is correct.
	code, body := env.answerSlot(t, testID, q1.ID, []uint{correct1[1], correct1[0]})
	require.Equal(t, fiber.StatusOK, code)
	result := dataMap(t, body)
	assert.Equal(t, true, result["is_correct"])
	assert.Equal(t, float64(1), result["correct_count"])
	assert.Equal(t, "because", result["explanation"])

	// A strict subset of the correct set fails the slot.
	code, body = env.answerSlot(t, testID, q2.ID, []uint{correct2[0]})
	require.Equal(t, fiber.StatusOK, code)
	result = dataMap(t, body)
	assert.Equal(t, false, result["is_correct"])

	// A superset fails as well, even though it covers every correct answer.
	code, body = env.answerSlot(t, testID, q3.ID, []uint{correct3[0], correct3[1], wrong3[0]})
	require.Equal(t, fiber.StatusOK, code)
	result = dataMap(t, body)
	assert.Equal(t, false, result["is_correct"])

	// The last submission completed the test: 1 of 3 truncates to 33.
	assert.Equal(t, true, result["test_completed"])
	assert.Equal(t, float64(3), result["answered_count"])
	assert.Equal(t, float64(33), result["score_percent"])
}

func TestAnswerRejectsDuplicateSubmission(t *testing.T) {
	env := setupEnv(t)
	topic, _, correct := env.seedTopicPool(t, "en", 3)
	testID := env.createTestSession(t, testModels.FilterTopic, &topic.ID, "en", 2)

	var slots []testModels.TestQuestion
	require.NoError(t, env.db.Where("test_id = ?", testID).Order("question_order asc").Find(&slots).Error)

	code, _ := env.answerSlot(t, testID, slots[0].QuestionID, correct[slots[0].QuestionID])
	require.Equal(t, fiber.StatusOK, code)

	code, body := env.answerSlot(t, testID, slots[0].QuestionID, correct[slots[0].QuestionID])
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, "CONFLICT", errorCode(body))

	// The duplicate must not inflate the running correct count.
	var reloaded testModels.Test
	require.NoError(t, env.db.First(&reloaded, testID).Error)
	assert.Equal(t, 1, reloaded.CorrectCount)
	assert.Equal(t, testModels.StatusActive, reloaded.Status)
}

func TestAnswerAutoCompletesWithTruncatedScore(t *testing.T) {
	env := setupEnv(t)
	topic, _, correct := env.seedTopicPool(t, "en", 3)
	testID := env.createTestSession(t, testModels.FilterTopic, &topic.ID, "en", 3)

	var slots []testModels.TestQuestion
	require.NoError(t, env.db.Where("test_id = ?", testID).Order("question_order asc").Find(&slots).Error)

	// Two right, one wrong: 2/3 truncates to 66.
	code, body := env.answerSlot(t, testID, slots[0].QuestionID, correct[slots[0].QuestionID])
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, false, dataMap(t, body)["test_completed"])
	assert.Nil(t, dataMap(t, body)["score_percent"])

	code, _ = env.answerSlot(t, testID, slots[1].QuestionID, correct[slots[1].QuestionID])
	require.Equal(t, fiber.StatusOK, code)

	var wrongIDs []uint
	require.NoError(t, env.db.Table("answers").
		Where("question_id = ? AND is_correct = false", slots[2].QuestionID).
		Pluck("id", &wrongIDs).Error)
	require.NotEmpty(t, wrongIDs)

	code, body = env.answerSlot(t, testID, slots[2].QuestionID, []uint{wrongIDs[0]})
	require.Equal(t, fiber.StatusOK, code)
	result := dataMap(t, body)
	assert.Equal(t, true, result["test_completed"])
	assert.Equal(t, float64(66), result["score_percent"])

	var reloaded testModels.Test
	require.NoError(t, env.db.First(&reloaded, testID).Error)
	assert.Equal(t, testModels.StatusCompleted, reloaded.Status)
	require.NotNil(t, reloaded.ScorePercent)
	assert.Equal(t, 66, *reloaded.ScorePercent)
	assert.NotNil(t, reloaded.CompletedAt)
}

func TestAnswerSlotStolenBetweenLoadAndUpdate(t *testing.T) {
	env := setupEnv(t)
	topic, _, correct := env.seedTopicPool(t, "en", 2)
	testID := env.createTestSession(t, testModels.FilterTopic, &topic.ID, "en", 2)

	var slots []testModels.TestQuestion
	require.NoError(t, env.db.Where("test_id = ?", testID).Order("question_order asc").Find(&slots).Error)
	target := slots[0]

	// Mark the slot answered after the handler has loaded it but before its
	// conditional update runs, the way a faster concurrent submission would.
	stolen := false
	err := env.db.Callback().Update().Before("gorm:update").Register("steal_slot", func(d *gorm.DB) {
		if stolen {
			return
		}
		if _, ok := d.Statement.Model.(*testModels.TestQuestion); !ok {
			return
		}
		stolen = true
		d.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE test_questions SET answered_at = ? WHERE id = ?", time.Now(), target.ID)
	})
	require.NoError(t, err)
	defer env.db.Callback().Update().Remove("steal_slot")

	code, body := env.answerSlot(t, testID, target.QuestionID, correct[target.QuestionID])
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, "CONFLICT", errorCode(body))
	assert.True(t, stolen)

	// The losing submission rolled back completely: no recorded selections
	// and an untouched counter.
	var selections int64
	require.NoError(t, env.db.Model(&testModels.TestQuestionAnswer{}).
		Where("test_id = ?", testID).Count(&selections).Error)
	assert.Equal(t, int64(0), selections)

	var reloaded testModels.Test
	require.NoError(t, env.db.First(&reloaded, testID).Error)
	assert.Equal(t, 0, reloaded.CorrectCount)
	assert.Equal(t, testModels.StatusActive, reloaded.Status)
}

func TestAnswerCompletionDerivedFromSlotRows(t *testing.T) {
	env := setupEnv(t)
	topic, _, correct := env.seedTopicPool(t, "en", 2)
	testID := env.createTestSession(t, testModels.FilterTopic, &topic.ID, "en", 2)

	var slots []testModels.TestQuestion
	require.NoError(t, env.db.Where("test_id = ?", testID).Order("question_order asc").Find(&slots).Error)

	code, _ := env.answerSlot(t, testID, slots[0].QuestionID, correct[slots[0].QuestionID])
	require.Equal(t, fiber.StatusOK, code)

	// A stale counter on the test row must not leak into the final score;
	// the submission path recomputes everything from the slot rows.
	require.NoError(t, env.db.Model(&testModels.Test{}).
		Where("id = ?", testID).UpdateColumn("correct_count", 0).Error)

	code, body := env.answerSlot(t, testID, slots[1].QuestionID, correct[slots[1].QuestionID])
	require.Equal(t, fiber.StatusOK, code)
	result := dataMap(t, body)
	assert.Equal(t, true, result["test_completed"])
	assert.Equal(t, float64(2), result["correct_count"])
	assert.Equal(t, float64(100), result["score_percent"])

	var reloaded testModels.Test
	require.NoError(t, env.db.First(&reloaded, testID).Error)
	assert.Equal(t, testModels.StatusCompleted, reloaded.Status)
	require.NotNil(t, reloaded.ScorePercent)
	assert.Equal(t, 100, *reloaded.ScorePercent)
}

func TestAnswerRejectsQuestionOutsideTest(t *testing.T) {
	env := setupEnv(t)
	topic, _, _ := env.seedTopicPool(t, "en", 3)
	testID := env.createTestSession(t, testModels.FilterTopic, &topic.ID, "en", 2)

	stranger, correctIDs, _ := env.createQuestion(t, topic.ID, "de", "Stray", []string{"right", "wrong"}, 1)

	code, body := env.answerSlot(t, testID, stranger.ID, correctIDs)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", errorCode(body))
}

func TestAnswerOnTerminatedTestRejected(t *testing.T) {
	env := setupEnv(t)
	topic, _, correct := env.seedTopicPool(t, "en", 2)
	testID := env.createTestSession(t, testModels.FilterTopic, &topic.ID, "en", 1)

	var slots []testModels.TestQuestion
	require.NoError(t, env.db.Where("test_id = ?", testID).Find(&slots).Error)

	code, _ := env.answerSlot(t, testID, slots[0].QuestionID, correct[slots[0].QuestionID])
	require.Equal(t, fiber.StatusOK, code)

	code, body := env.answerSlot(t, testID, slots[0].QuestionID, correct[slots[0].QuestionID])
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Equal(t, "INVALID_STATE", errorCode(body))
}

func TestGetCurrentQuestionAdvancesInOrder(t *testing.T) {
	env := setupEnv(t)
	topic := env.createTopic(t, "Ordered", false)
	q1, correct1, _ := env.createQuestion(t, topic.ID, "en", "Q1", []string{"a", "b", "c"}, 2)
	env.createQuestion(t, topic.ID, "en", "Q2", []string{"a", "b"}, 1)

	testID := env.createTestSession(t, testModels.FilterTopic, &topic.ID, "en", 2)

	var slots []testModels.TestQuestion
	require.NoError(t, env.db.Where("test_id = ?", testID).Order("question_order asc").Find(&slots).Error)

	code, body := env.request(t, http.MethodGet, fmt.Sprintf("/tests/%d/current", testID), nil)
	require.Equal(t, fiber.StatusOK, code)
	current := dataMap(t, body)
	assert.Equal(t, float64(1), current["order"])

	question := current["question"].(map[string]interface{})
	assert.Equal(t, float64(slots[0].QuestionID), question["id"])
	// The active view never exposes the explanation or the correct flags.
	assert.NotContains(t, question, "explanation")
	answers := current["answers"].([]interface{})
	require.NotEmpty(t, answers)
	assert.NotContains(t, answers[0].(map[string]interface{}), "is_correct")

	if slots[0].QuestionID == q1.ID {
		assert.Equal(t, true, current["multiple_answers"])
	} else {
		assert.Equal(t, false, current["multiple_answers"])
	}

	// Answering the first slot advances the cursor to order 2.
	first := slots[0].QuestionID
	submit := correct1
	if first != q1.ID {
		var ids []uint
		require.NoError(t, env.db.Table("answers").
			Where("question_id = ? AND is_correct = true", first).
			Pluck("id", &ids).Error)
		submit = ids
	}
	code, _ = env.answerSlot(t, testID, first, submit)
	require.Equal(t, fiber.StatusOK, code)

	code, body = env.request(t, http.MethodGet, fmt.Sprintf("/tests/%d/current", testID), nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, float64(2), dataMap(t, body)["order"])
}
