package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"starwars/internal/logging"
	"starwars/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// APIError is an error with an HTTP status, rendered as {"message": ...}.
type APIError struct {
	Message    string
	StatusCode int
}

// NewAPIError creates an APIError.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{Message: message, StatusCode: statusCode}
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrorHandler is the Fiber error handler of the API.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var apiErr *APIError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &apiErr):
		code, message = apiErr.StatusCode, apiErr.Message
	case errors.As(err, &fiberErr):
		code, message = fiberErr.Code, fiberErr.Message
	}

	if code >= fiber.StatusInternalServerError {
		logging.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(code).JSON(fiber.Map{"message": message})
}

// storageError converts repository errors into API errors. Clients get a fixed message
// per sentinel; the wrapped chain is only logged.
func storageError(c *fiber.Ctx, err error, notFound, conflict string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		logging.Debug().Err(err).Str("path", c.Path()).Msg("record not found")
		return NewAPIError(fiber.StatusNotFound, notFound)
	case errors.Is(err, repositories.ErrConflict):
		logging.Info().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("storage conflict")
		return NewAPIError(fiber.StatusConflict, conflict)
	}
	return err
}

// pathID parses a positive integer path parameter.
func pathID(c *fiber.Ctx, key string) (uint, error) {
	raw := c.Params(key)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, NewAPIError(fiber.StatusBadRequest, fmt.Sprintf("invalid %s: %q", key, raw))
	}
	return uint(id), nil
}

// parseBody decodes the JSON body into out and checks its validate tags.
func parseBody(c *fiber.Ctx, validate *validator.Validate, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		logging.Debug().Err(err).Str("path", c.Path()).Msg("error parsing request body")
		return NewAPIError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			e := validationErrors[0]
			return NewAPIError(fiber.StatusBadRequest, fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
		}
		return NewAPIError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
