package core

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type ResponseBase[T any] struct {
	Status  string `json:"status"`
	Content T      `json:"content"`
	Error   string `json:"error,omitempty"`
}

// CreatedRules is returned by rule creation
type CreatedRules struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// LoginResponse carries the session token and the compiled policy of the principal
type LoginResponse struct {
	AccessToken string         `json:"accessToken"`
	User        ActingUser     `json:"user"`
	AccessRules CompiledPolicy `json:"accessRules"`
}

// ErrorResponse writes err with the status code of its kind
func ErrorResponse(c echo.Context, err error) error {
	var badRequest ErrorBadRequest
	switch {
	case errors.As(err, &badRequest):
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": badRequest.Message, "detail": badRequest.Details})
	case errors.Is(err, ErrorNotFound{}):
		return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": err.Error()})
	case errors.Is(err, ErrorPermissionDenied{}):
		return c.JSON(http.StatusForbidden, echo.Map{"status": "error", "error": err.Error()})
	case errors.Is(err, ErrorAlreadyExists{}):
		return c.JSON(http.StatusConflict, echo.Map{"status": "error", "error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "error": err.Error()})
	}
}
