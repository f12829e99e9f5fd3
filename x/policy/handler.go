package policy

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sipradi/pvbu/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Create(c echo.Context) error
	Update(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	GetRules(c echo.Context) error
	Mine(c echo.Context) error
}

type handler struct {
	service core.PolicyService
}

// NewHandler creates a new handler
func NewHandler(service core.PolicyService) Handler {
	return &handler{service}
}

type policyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, core.NewErrorBadRequest("invalid " + name)
	}
	return uint(id), nil
}

// Create creates a new policy
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.Create")
	defer span.End()

	var request policyRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	created, err := h.service.Create(ctx, core.AccessPolicy{
		Title:       request.Title,
		Description: request.Description,
	})
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

// Update updates title and description of a policy
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.Update")
	defer span.End()

	id, err := parseID(c, "id")
	if err != nil {
		return core.ErrorResponse(c, err)
	}

	var request policyRequest
	err = c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	updated, err := h.service.Update(ctx, id, core.AccessPolicy{
		Title:       request.Title,
		Description: request.Description,
	})
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.Get")
	defer span.End()

	id, err := parseID(c, "id")
	if err != nil {
		return core.ErrorResponse(c, err)
	}

	policy, err := h.service.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": policy})
}

func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.List")
	defer span.End()

	policies, err := h.service.List(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": policies})
}

// GetRules returns the compiled form of a policy
func (h handler) GetRules(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.GetRules")
	defer span.End()

	id, err := parseID(c, "policy_id")
	if err != nil {
		return core.ErrorResponse(c, err)
	}

	compiled, err := h.service.Compile(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": compiled})
}

// Mine returns the compiled policy of the requester
func (h handler) Mine(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.Mine")
	defer span.End()

	requester, ok := c.Get(core.RequesterCtxKey).(core.ActingUser)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	if requester.PolicyID == nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "User does not have access permissions"})
	}

	compiled, err := h.service.Compile(ctx, *requester.PolicyID)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": compiled})
}
