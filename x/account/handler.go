package account

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sipradi/pvbu/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	ListOwners(c echo.Context) error
	ListDrivers(c echo.Context) error
	ListPassengers(c echo.Context) error
	AssignPolicy(c echo.Context) error
}

type handler struct {
	service core.AccountService
}

// NewHandler creates a new handler
func NewHandler(service core.AccountService) Handler {
	return &handler{service}
}

func (h handler) ListOwners(c echo.Context) error {
	return h.list(c, core.RoleOwner)
}

func (h handler) ListDrivers(c echo.Context) error {
	return h.list(c, core.RoleDriver)
}

func (h handler) ListPassengers(c echo.Context) error {
	return h.list(c, core.RolePassenger)
}

// list returns the principals of role, scoped by the filter the guard attached to the request
func (h handler) list(c echo.Context, role core.Role) error {
	ctx, span := tracer.Start(c.Request().Context(), "Account.Handler.List")
	defer span.End()

	filter, _ := c.Get(core.RequestFilterCtxKey).(core.Filter)

	users, err := h.service.List(ctx, role, filter)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": users})
}

type assignPolicyRequest struct {
	PolicyID uint `json:"policyId"`
}

func (h handler) AssignPolicy(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Account.Handler.AssignPolicy")
	defer span.End()

	role, err := core.ParseRole(c.Param("role"))
	if err != nil {
		return core.ErrorResponse(c, err)
	}

	var request assignPolicyRequest
	err = c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	updated, err := h.service.AssignPolicy(ctx, role, c.Param("id"), request.PolicyID)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}
