package testController

import (
	"fmt"
	"net/http"
	"testing"

	testModels "quizapi/models/test"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbandonScoresAnsweredSubset(t *testing.T) {
	env := setupEnv(t)
	topic, _, correct := env.seedTopicPool(t, "en", 5)
	testID := env.createTestSession(t, testModels.FilterTopic, &topic.ID, "en", 5)

	var slots []testModels.TestQuestion
	require.NoError(t, env.db.Where("test_id = ?", testID).Order("question_order asc").Find(&slots).Error)

	// One right answer and one wrong, three slots untouched.
	code, _ := env.answerSlot(t, testID, slots[0].QuestionID, correct[slots[0].QuestionID])
	require.Equal(t, fiber.StatusOK, code)

	var wrongIDs []uint
	require.NoError(t, env.db.Table("answers").
		Where("question_id = ? AND is_correct = false", slots[1].QuestionID).
		Pluck("id", &wrongIDs).Error)
	code, _ = env.answerSlot(t, testID, slots[1].QuestionID, []uint{wrongIDs[0]})
	require.Equal(t, fiber.StatusOK, code)

	// 1 of 2 answered slots is 50, the unanswered three do not count.
	code, body := env.request(t, http.MethodPost, fmt.Sprintf("/tests/%d/complete", testID), nil)
	require.Equal(t, fiber.StatusOK, code)
	result := dataMap(t, body)
	assert.Equal(t, string(testModels.StatusAbandoned), result["status"])
	assert.Equal(t, float64(2), result["answered_count"])
	assert.Equal(t, float64(1), result["correct_count"])
	assert.Equal(t, float64(50), result["score_percent"])

	var reloaded testModels.Test
	require.NoError(t, env.db.First(&reloaded, testID).Error)
	assert.Equal(t, testModels.StatusAbandoned, reloaded.Status)
	require.NotNil(t, reloaded.ScorePercent)
	assert.Equal(t, 50, *reloaded.ScorePercent)
	assert.NotNil(t, reloaded.CompletedAt)
}

func TestAbandonWithoutAnswersScoresZero(t *testing.T) {
	env := setupEnv(t)
	topic, _, _ := env.seedTopicPool(t, "en", 3)
	testID := env.createTestSession(t, testModels.FilterTopic, &topic.ID, "en", 3)

	code, body := env.request(t, http.MethodPost, fmt.Sprintf("/tests/%d/complete", testID), nil)
	require.Equal(t, fiber.StatusOK, code)
	result := dataMap(t, body)
	assert.Equal(t, float64(0), result["answered_count"])
	assert.Equal(t, float64(0), result["score_percent"])
}

func TestAbandonTwiceRejected(t *testing.T) {
	env := setupEnv(t)
	topic, _, _ := env.seedTopicPool(t, "en", 2)
	testID := env.createTestSession(t, testModels.FilterTopic, &topic.ID, "en", 2)

	code, _ := env.request(t, http.MethodPost, fmt.Sprintf("/tests/%d/complete", testID), nil)
	require.Equal(t, fiber.StatusOK, code)

	code, body := env.request(t, http.MethodPost, fmt.Sprintf("/tests/%d/complete", testID), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Equal(t, "INVALID_STATE", errorCode(body))
}
