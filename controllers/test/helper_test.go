package testController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quizapi/config"
	"quizapi/database"
	"quizapi/middleware"
	"quizapi/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv wires a fresh in-memory database and a fiber app with the test
// session routes behind real JWT auth.
type testEnv struct {
	app   *fiber.App
	db    *gorm.DB
	user  models.User
	token string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	config.LoadConfig()

	// Unique DSN per test so parallel packages never share state.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	// Deterministic sampling.
	testRng = rand.New(rand.NewSource(1))

	app := fiber.New()
	testGroup := app.Group("/tests", middleware.JWTMiddleware)
	testGroup.Post("/", CreateTest)
	testGroup.Get("/", ListTests)
	testGroup.Get("/history", TestHistory)
	testGroup.Get("/:id", GetTest)
	testGroup.Delete("/:id", DeleteTest)
	testGroup.Get("/:id/current", GetCurrentQuestion)
	testGroup.Post("/:id/answer", AnswerQuestion)
	testGroup.Post("/:id/complete", CompleteTest)
	testGroup.Get("/:id/review", ReviewTest)

	env := &testEnv{app: app, db: db}
	env.user = env.createUser(t, "taker@example.com")
	env.token = env.tokenFor(t, env.user)
	return env
}

func (e *testEnv) createUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "hashed", Username: "taker"}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}

func (e *testEnv) tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.Email)
	require.NoError(t, err)
	return token
}

func (e *testEnv) createTopic(t *testing.T, name string, subscriptionRequired bool) models.Topic {
	t.Helper()
	topic := models.Topic{Name: name, SubscriptionRequired: subscriptionRequired}
	require.NoError(t, e.db.Create(&topic).Error)
	return topic
}

// createQuestion seeds a question with one answer row per value. The first
// correctCount values are flagged correct.
func (e *testEnv) createQuestion(t *testing.T, topicID uint, lang, name string, values []string, correctCount int) (models.Question, []uint, []uint) {
	t.Helper()
	question := models.Question{TopicID: topicID, Name: name, Lang: lang, Explanation: "because"}
	require.NoError(t, e.db.Create(&question).Error)

	var correctIDs, wrongIDs []uint
	for i, value := range values {
		answer := models.Answer{QuestionID: question.ID, Value: value, IsCorrect: i < correctCount}
		require.NoError(t, e.db.Create(&answer).Error)
		if answer.IsCorrect {
			correctIDs = append(correctIDs, answer.ID)
		} else {
			wrongIDs = append(wrongIDs, answer.ID)
		}
	}
	return question, correctIDs, wrongIDs
}

func (e *testEnv) addFavorite(t *testing.T, userID, questionID uint) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.UserFavoriteQuestion{UserID: userID, QuestionID: questionID}).Error)
}

func (e *testEnv) createCategory(t *testing.T, name string, questionIDs ...uint) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, e.db.Create(&category).Error)
	for _, questionID := range questionIDs {
		require.NoError(t, e.db.Create(&models.QuestionCategory{QuestionID: questionID, CategoryID: category.ID}).Error)
	}
	return category
}

func (e *testEnv) grantSubscription(t *testing.T, userID uint, expireAt time.Time) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.UserSubscription{UserID: userID, ExpireAt: expireAt, IsActive: true}).Error)
}

// seedTopicPool creates n single-answer questions under a fresh topic and
// returns the topic with the pool of question ids. Every question's first
// answer is the correct one.
func (e *testEnv) seedTopicPool(t *testing.T, lang string, n int) (models.Topic, []uint, map[uint][]uint) {
	t.Helper()
	topic := e.createTopic(t, "Seeded Topic", false)
	pool := make([]uint, 0, n)
	correctByQuestion := make(map[uint][]uint, n)
	for i := 0; i < n; i++ {
		q, correctIDs, _ := e.createQuestion(t, topic.ID, lang, fmt.Sprintf("Q%d", i+1), []string{"right", "wrong"}, 1)
		pool = append(pool, q.ID)
		correctByQuestion[q.ID] = correctIDs
	}
	return topic, pool, correctByQuestion
}

// do performs a request with the given bearer token and decodes the JSON body.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	parsed := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp.StatusCode, parsed
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	return e.do(t, method, path, e.token, body)
}

// createTestSession drives the create endpoint and returns the new test id.
func (e *testEnv) createTestSession(t *testing.T, filterType string, filterID *uint, lang string, count int) uint {
	t.Helper()
	payload := map[string]interface{}{
		"filter_type":     filterType,
		"lang":            lang,
		"questions_count": count,
	}
	if filterID != nil {
		payload["filter_id"] = *filterID
	}
	code, body := e.request(t, http.MethodPost, "/tests/", payload)
	require.Equal(t, fiber.StatusCreated, code, "create failed: %v", body)
	return uint(dataMap(t, body)["id"].(float64))
}

// answerSlot submits answer ids for one question of a test.
func (e *testEnv) answerSlot(t *testing.T, testID, questionID uint, answerIDs []uint) (int, map[string]interface{}) {
	t.Helper()
	return e.request(t, http.MethodPost, fmt.Sprintf("/tests/%d/answer", testID), map[string]interface{}{
		"question_id": questionID,
		"answer_ids":  answerIDs,
	})
}

func dataMap(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	return data
}

func errorCode(body map[string]interface{}) string {
	code, _ := body["code"].(string)
	return code
}
