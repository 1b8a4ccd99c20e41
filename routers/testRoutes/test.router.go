package testRoutes

import (
	testControllers "quizapi/controllers/test"
	"quizapi/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupTestRoutes(app *fiber.App) {
	testGroup := app.Group("/tests", middleware.JWTMiddleware)

	testGroup.Post("/", testControllers.CreateTest)
	testGroup.Get("/", testControllers.ListTests)
	// Registered before /:id so "history" is not parsed as a test id
	testGroup.Get("/history", testControllers.TestHistory)
	testGroup.Get("/:id", testControllers.GetTest)
	testGroup.Delete("/:id", testControllers.DeleteTest)

	testGroup.Get("/:id/current", testControllers.GetCurrentQuestion)
	testGroup.Post("/:id/answer", testControllers.AnswerQuestion)
	testGroup.Post("/:id/complete", testControllers.CompleteTest)
	testGroup.Get("/:id/review", testControllers.ReviewTest)
}
