package authRoutes

import (
	authControllers "quizapi/controllers/auth"
	"quizapi/middleware"
	authValidators "quizapi/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/current", middleware.JWTMiddleware, authControllers.Current)
}
