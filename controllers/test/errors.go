package testController

import (
	"errors"
	"log"

	"quizapi/middleware"

	"github.com/gofiber/fiber/v2"
)

// apiError is a client-caused failure carrying its HTTP status and stable code.
type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string { return e.message }

func errNotFound(message string) *apiError {
	return &apiError{fiber.StatusNotFound, middleware.CodeNotFound, message}
}

func errForbidden(message string) *apiError {
	return &apiError{fiber.StatusForbidden, middleware.CodeForbidden, message}
}

func errConflict(message string) *apiError {
	return &apiError{fiber.StatusConflict, middleware.CodeConflict, message}
}

func errAlreadyExists(message string) *apiError {
	return &apiError{fiber.StatusConflict, middleware.CodeAlreadyExists, message}
}

func errInvalidState(message string) *apiError {
	return &apiError{fiber.StatusUnprocessableEntity, middleware.CodeInvalidState, message}
}

func errInvalidInput(message string) *apiError {
	return &apiError{fiber.StatusBadRequest, middleware.CodeInvalidInput, message}
}

func errInvalidFieldValue(message string) *apiError {
	return &apiError{fiber.StatusBadRequest, middleware.CodeInvalidFieldValue, message}
}

func errMissingField(message string) *apiError {
	return &apiError{fiber.StatusBadRequest, middleware.CodeMissingField, message}
}

func errPaymentRequired(message string) *apiError {
	return &apiError{fiber.StatusPaymentRequired, middleware.CodePaymentRequired, message}
}

// respondError maps client-caused errors to their stable code and hides
// everything else behind a logged internal error.
func respondError(c *fiber.Ctx, err error) error {
	var ae *apiError
	if errors.As(err, &ae) {
		return middleware.ErrorResponse(c, ae.status, ae.code, ae.message)
	}
	log.Printf("test controller error: %v", err)
	return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternalError, "Something went wrong!")
}
