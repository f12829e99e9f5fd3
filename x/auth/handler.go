package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sipradi/pvbu/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Login(c echo.Context) error
	Logout(c echo.Context) error
}

type handler struct {
	service core.AuthService
}

// NewHandler creates a new handler
func NewHandler(service core.AuthService) Handler {
	return &handler{service}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h handler) Login(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.Login")
	defer span.End()

	var request loginRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	role, err := core.ParseRole(request.Role)
	if err != nil {
		return core.ErrorResponse(c, err)
	}

	response, err := h.service.Login(ctx, role, request.Email, request.Password)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": response})
}

// Logout revokes the token the request was made with
func (h handler) Logout(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.Logout")
	defer span.End()

	claims, ok := c.Get(RequesterClaimsCtxKey).(*Claims)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	if claims.ExpiresAt == nil {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}

	err := h.service.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
