package models

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Respond writes a success envelope. Pass an empty message or nil data to
// omit those fields from the body.
func Respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// RespondWithError renders an error into the uniform envelope. Domain errors
// select their own body shape; anything else is masked as an internal error
// so raw details never reach the caller.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}

	status := appErr.HTTPStatus()
	switch appErr.Code {
	case CodeValidation:
		return c.Status(status).JSON(fiber.Map{
			"success":    false,
			"statusCode": status,
			"error":      "Bad Request",
			"message":    appErr.Messages,
		})
	case CodeUnauthorized:
		return c.Status(status).JSON(fiber.Map{
			"success":    false,
			"statusCode": status,
			"error":      "Unauthorized",
			"message":    "Unauthorized",
		})
	case CodeNotFound:
		// The contract requires an explicit null data field here.
		return c.Status(status).JSON(fiber.Map{
			"success":    false,
			"statusCode": status,
			"error":      "Not Found",
			"data":       nil,
		})
	case CodeConflict:
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": appErr.Message,
		})
	default:
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}
}
