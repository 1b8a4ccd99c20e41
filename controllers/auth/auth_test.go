package authController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizapi/config"
	"quizapi/database"
	"quizapi/middleware"
	authValidators "quizapi/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authGroup := app.Group("/auth")
	authGroup.Post("/signup", authValidators.Signup(), Signup)
	authGroup.Post("/login", authValidators.Login(), Login)
	authGroup.Get("/current", middleware.JWTMiddleware, Current)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	parsed := map[string]interface{}{}
	if len(body) > 0 {
		require.NoError(t, json.Unmarshal(body, &parsed))
	}
	return resp.StatusCode, parsed
}

func TestSignupAndLogin(t *testing.T) {
	app := setupAuthApp(t)

	code, body := postJSON(t, app, "/auth/signup", map[string]string{
		"email":    "new@example.com",
		"password": "supersecret",
		"username": "newbie",
	})
	require.Equal(t, fiber.StatusCreated, code, "signup failed: %v", body)

	// The password hash must never appear in a response.
	user := body["data"].(map[string]interface{})
	assert.NotContains(t, user, "password")

	// Duplicate email is rejected.
	code, body = postJSON(t, app, "/auth/signup", map[string]string{
		"email":    "new@example.com",
		"password": "supersecret",
		"username": "newbie",
	})
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, "ALREADY_EXISTS", body["code"])

	code, body = postJSON(t, app, "/auth/login", map[string]string{
		"email":    "new@example.com",
		"password": "supersecret",
	})
	require.Equal(t, fiber.StatusOK, code)
	data := body["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)

	// The token works against an authenticated route.
	req := httptest.NewRequest(http.MethodGet, "/auth/current", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := setupAuthApp(t)

	code, body := postJSON(t, app, "/auth/signup", map[string]string{
		"email":    "someone@example.com",
		"password": "rightpassword",
		"username": "someone",
	})
	require.Equal(t, fiber.StatusCreated, code, "signup failed: %v", body)

	code, body = postJSON(t, app, "/auth/login", map[string]string{
		"email":    "someone@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", body["code"])

	code, body = postJSON(t, app, "/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestSignupValidation(t *testing.T) {
	app := setupAuthApp(t)

	code, body := postJSON(t, app, "/auth/signup", map[string]string{
		"email":    "not-an-email",
		"password": "short",
		"username": "ab",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])

	errors := body["data"].(map[string]interface{})
	assert.Contains(t, errors, "email")
	assert.Contains(t, errors, "password")
	assert.Contains(t, errors, "username")
}
