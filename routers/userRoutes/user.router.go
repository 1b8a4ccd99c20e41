package userRoutes

import (
	favoriteControllers "quizapi/controllers/favorite"
	subscriptionControllers "quizapi/controllers/subscription"
	"quizapi/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	favoriteGroup := app.Group("/favorites", middleware.JWTMiddleware)
	favoriteGroup.Get("/", favoriteControllers.ListFavorites)
	favoriteGroup.Post("/questions/:question_id", favoriteControllers.AddFavorite)
	favoriteGroup.Delete("/questions/:question_id", favoriteControllers.RemoveFavorite)

	subscriptionGroup := app.Group("/subscriptions", middleware.JWTMiddleware)
	subscriptionGroup.Post("/", subscriptionControllers.GrantSubscription)
	subscriptionGroup.Get("/my", subscriptionControllers.ListMySubscriptions)
}
