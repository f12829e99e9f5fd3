package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sipradi/pvbu/core"
)

// IdentifyIdentity resolves the Bearer token of the request into an acting user.
// Requests without a valid token pass through anonymously.
func (s *service) IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Service.IdentifyIdentity")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skip
			}

			authType, token := split[0], split[1]
			if authType != "Bearer" {
				span.RecordError(fmt.Errorf("only Bearer is acceptable"))
				goto skip
			}

			claims, err := s.parseToken(token)
			if err != nil {
				span.RecordError(err)
				goto skip
			}

			revoked, err := s.repository.IsRevoked(ctx, claims.ID)
			if err != nil || revoked {
				span.RecordError(fmt.Errorf("token is revoked"))
				goto skip
			}

			user, err := s.account.Get(ctx, claims.Role, claims.Subject)
			if err != nil {
				span.RecordError(err)
				goto skip
			}

			c.Set(RequesterClaimsCtxKey, claims)
			c.Set(core.RequesterCtxKey, user)
			c.Set(core.RequesterRoleCtxKey, user.Role)
			span.SetAttributes(
				attribute.String("RequesterId", user.ID),
				attribute.String("RequesterRole", string(user.Role)),
			)
		}
	skip:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// Guard lets the request through only when the requester's policy allows action on resource.
// The filter derived from the matching condition is stored on the context and merged into the query.
func (s *service) Guard(resource core.ResourceName, action core.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "Auth.Service.Guard")
			defer span.End()

			span.SetAttributes(
				attribute.String("resource", string(resource)),
				attribute.String("action", string(action)),
			)

			requester, ok := c.Get(core.RequesterCtxKey).(core.ActingUser)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error":  "you are not authorized to perform this action",
					"detail": "authentication required",
				})
			}

			decision, err := s.policy.Evaluate(ctx, requester, resource, action)
			if err != nil {
				span.RecordError(err)
				if errors.Is(err, core.ErrorPermissionDenied{}) {
					return c.JSON(http.StatusForbidden, echo.Map{"error": "User does not have access permissions"})
				}
				return core.ErrorResponse(c, err)
			}

			if !decision.Allowed {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Access Denied"})
			}

			if decision.Filter != nil {
				c.Set(core.RequestFilterCtxKey, decision.Filter)
				query := c.QueryParams()
				for key, values := range decision.Filter.Query() {
					query[key] = values
				}
				c.Request().URL.RawQuery = query.Encode()
			}

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
