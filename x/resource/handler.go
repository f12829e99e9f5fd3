package resource

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sipradi/pvbu/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	CreateResource(c echo.Context) error
	Generate(c echo.Context) error
	AddActions(c echo.Context) error
	AddCondition(c echo.Context) error
	ListResources(c echo.Context) error
	ListResourceActions(c echo.Context) error
	ListActionsByResource(c echo.Context) error
	ListConditionsByAction(c echo.Context) error
}

type handler struct {
	service core.ResourceService
}

// NewHandler creates a new handler
func NewHandler(service core.ResourceService) Handler {
	return &handler{service}
}

type createResourceRequest struct {
	Name    string   `json:"name"`
	Actions []string `json:"actions"`
}

type generateRequest struct {
	Entries []core.CatalogEntry `json:"entries"`
}

type addActionsRequest struct {
	Actions []string `json:"actions"`
}

type addConditionRequest struct {
	Label     string         `json:"label"`
	Condition map[string]any `json:"condition"`
}

func paramID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (h handler) CreateResource(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Resource.Handler.CreateResource")
	defer span.End()

	var request createResourceRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	created, err := h.service.CreateResource(ctx, request.Name, request.Actions)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

// Generate seeds the given catalog entries, or the built-in catalog when the body is empty
func (h handler) Generate(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Resource.Handler.Generate")
	defer span.End()

	var request generateRequest
	if c.Request().ContentLength > 0 {
		err := c.Bind(&request)
		if err != nil {
			span.RecordError(err)
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
	}

	err := h.service.Generate(ctx, request.Entries)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": echo.Map{"message": "Resources generated"}})
}

func (h handler) AddActions(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Resource.Handler.AddActions")
	defer span.End()

	resourceID, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid resource id"})
	}

	var request addActionsRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	count, err := h.service.AddActions(ctx, resourceID, request.Actions)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": echo.Map{"count": count}})
}

func (h handler) AddCondition(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Resource.Handler.AddCondition")
	defer span.End()

	actionID, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid action id"})
	}

	var request addConditionRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	created, err := h.service.AddCondition(ctx, actionID, request.Label, request.Condition)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": created})
}

func (h handler) ListResources(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Resource.Handler.ListResources")
	defer span.End()

	resources, err := h.service.ListResources(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": resources})
}

func (h handler) ListResourceActions(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Resource.Handler.ListResourceActions")
	defer span.End()

	actions, err := h.service.ListResourceActions(ctx)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": actions})
}

func (h handler) ListActionsByResource(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Resource.Handler.ListActionsByResource")
	defer span.End()

	resourceID, ok := paramID(c, "resource_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid resource_id"})
	}

	actions, err := h.service.ListActionsByResource(ctx, resourceID)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": actions})
}

func (h handler) ListConditionsByAction(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Resource.Handler.ListConditionsByAction")
	defer span.End()

	actionID, ok := paramID(c, "action_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid action_id"})
	}

	conditions, err := h.service.ListConditionsByAction(ctx, actionID)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": conditions})
}
