package contentRoutes

import (
	answerControllers "quizapi/controllers/answer"
	categoryControllers "quizapi/controllers/category"
	imageControllers "quizapi/controllers/image"
	lessonControllers "quizapi/controllers/lesson"
	questionControllers "quizapi/controllers/question"
	topicControllers "quizapi/controllers/topic"
	"quizapi/middleware"
	contentValidators "quizapi/validators/content"

	"github.com/gofiber/fiber/v2"
)

func SetupContentRoutes(app *fiber.App) {
	topicGroup := app.Group("/topics", middleware.JWTMiddleware)
	topicGroup.Get("/", topicControllers.ListTopics)
	topicGroup.Post("/", contentValidators.CreateTopic(), topicControllers.CreateTopic)
	topicGroup.Get("/:id", topicControllers.GetTopic)
	topicGroup.Put("/:id", topicControllers.UpdateTopic)
	topicGroup.Delete("/:id", topicControllers.DeleteTopic)
	topicGroup.Get("/:id/lessons", middleware.CheckTopicAccessMiddleware, topicControllers.ListTopicLessons)

	categoryGroup := app.Group("/categories", middleware.JWTMiddleware)
	categoryGroup.Get("/", categoryControllers.ListCategories)
	categoryGroup.Post("/", contentValidators.CreateCategory(), categoryControllers.CreateCategory)
	categoryGroup.Get("/:id", categoryControllers.GetCategory)
	categoryGroup.Put("/:id", categoryControllers.UpdateCategory)
	categoryGroup.Delete("/:id", categoryControllers.DeleteCategory)

	lessonGroup := app.Group("/lessons", middleware.JWTMiddleware)
	lessonGroup.Post("/", contentValidators.CreateLesson(), lessonControllers.CreateLesson)
	lessonGroup.Get("/:id", lessonControllers.GetLesson)
	lessonGroup.Put("/:id", lessonControllers.UpdateLesson)
	lessonGroup.Delete("/:id", lessonControllers.DeleteLesson)

	questionGroup := app.Group("/questions", middleware.JWTMiddleware)
	questionGroup.Get("/", questionControllers.ListQuestions)
	questionGroup.Post("/", contentValidators.CreateQuestion(), questionControllers.CreateQuestion)
	questionGroup.Get("/:id", questionControllers.GetQuestion)
	questionGroup.Put("/:id", questionControllers.UpdateQuestion)
	questionGroup.Delete("/:id", questionControllers.DeleteQuestion)
	questionGroup.Post("/:id/categories/:category_id", questionControllers.AttachCategory)
	questionGroup.Delete("/:id/categories/:category_id", questionControllers.DetachCategory)
	questionGroup.Get("/:question_id/answers", answerControllers.ListQuestionAnswers)

	answerGroup := app.Group("/answers", middleware.JWTMiddleware)
	answerGroup.Post("/", contentValidators.CreateAnswer(), answerControllers.CreateAnswer)
	answerGroup.Put("/:id", answerControllers.UpdateAnswer)
	answerGroup.Delete("/:id", answerControllers.DeleteAnswer)

	imageGroup := app.Group("/images", middleware.JWTMiddleware)
	imageGroup.Post("/", imageControllers.UploadImage)
	imageGroup.Get("/", imageControllers.ListImages)
	imageGroup.Get("/:id", imageControllers.GetImage)
}
