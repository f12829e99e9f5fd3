package rule

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sipradi/pvbu/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Create(c echo.Context) error
	Sync(c echo.Context) error
}

type handler struct {
	service core.RuleService
}

// NewHandler creates a new handler
func NewHandler(service core.RuleService) Handler {
	return &handler{service}
}

type createRequest struct {
	PolicyID     uint             `json:"policyId"`
	AllowActions []core.RuleEntry `json:"allowActions"`
	DenyActions  []core.RuleEntry `json:"denyActions"`
}

type syncRequest struct {
	AllowActions []core.RuleEntry `json:"allowActions"`
	DenyActions  []core.RuleEntry `json:"denyActions"`
}

// Create adds rules to a policy
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Rule.Handler.Create")
	defer span.End()

	var request createRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	created, err := h.service.Create(ctx, request.PolicyID, request.AllowActions, request.DenyActions)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

// Sync replaces the rule set of a policy
func (h handler) Sync(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Rule.Handler.Sync")
	defer span.End()

	policyID, err := strconv.ParseUint(c.Param("policy_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid policy_id"})
	}

	var request syncRequest
	err = c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	result, err := h.service.Sync(ctx, uint(policyID), request.AllowActions, request.DenyActions)
	if err != nil {
		span.RecordError(err)
		return core.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": result})
}
