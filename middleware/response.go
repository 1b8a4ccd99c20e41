package middleware

import "github.com/gofiber/fiber/v2"

// Stable, client-facing error codes. These are part of the API contract
// and must not leak storage internals.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeForbidden         = "FORBIDDEN"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeConflict          = "CONFLICT"
	CodeAlreadyExists     = "ALREADY_EXISTS"
	CodeInvalidState      = "INVALID_STATE"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeInvalidFieldValue = "INVALID_FIELD_VALUE"
	CodeMissingField      = "MISSING_FIELD"
	CodePaymentRequired   = "PAYMENT_REQUIRED"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeInternalError     = "INTERNAL_SERVER_ERROR"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ErrorResponse surfaces a client-caused failure with a stable code.
func ErrorResponse(c *fiber.Ctx, statusCode int, code, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  false,
		"code":    code,
		"message": message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":  false,
		"code":    CodeValidationFailed,
		"message": "Validation failed!",
		"data":    errors,
	})
}
