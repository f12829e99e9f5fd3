//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/sipradi/pvbu/core"
)

const (
	defaultTimeout = 10 * time.Second
)

var tracer = otel.Tracer("client")

// Client talks to the access administration API of a pvbu server
type Client interface {
	Login(ctx context.Context, role core.Role, email, password string) (core.LoginResponse, error)
	MyPolicy(ctx context.Context, token string) (core.CompiledPolicy, error)
	CreatePolicy(ctx context.Context, token string, policy core.AccessPolicy) (core.AccessPolicy, error)
	CreateRules(ctx context.Context, token string, policyID uint, allow, deny []core.RuleEntry) (core.CreatedRules, error)
	SyncRules(ctx context.Context, token string, policyID uint, allow, deny []core.RuleEntry) (core.SyncResult, error)
	ListResourceActions(ctx context.Context, token string) ([]core.ResourceActionView, error)
	AssignPolicy(ctx context.Context, token string, role core.Role, id string, policyID uint) (core.ActingUser, error)
}

type client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a client for the server at endpoint, e.g. "https://access.example.com"
func NewClient(endpoint string) Client {
	return &client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
	}
}

// ErrorResponse is a non-ok reply of the server
type ErrorResponse struct {
	StatusCode int
	Message    string
}

func (e ErrorResponse) Error() string {
	return fmt.Sprintf("server replied %d: %s", e.StatusCode, e.Message)
}

func request[T any](ctx context.Context, c *client, method, path, token string, body any) (T, error) {
	var zero T

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return zero, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return zero, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, err
	}

	var response core.ResponseBase[T]
	err = json.Unmarshal(respBody, &response)
	if err != nil {
		return zero, ErrorResponse{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if response.Status != "ok" {
		return zero, ErrorResponse{StatusCode: resp.StatusCode, Message: response.Error}
	}

	return response.Content, nil
}

func (c *client) Login(ctx context.Context, role core.Role, email, password string) (core.LoginResponse, error) {
	ctx, span := tracer.Start(ctx, "Client.Login")
	defer span.End()

	response, err := request[core.LoginResponse](ctx, c, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
		"role":     string(role),
	})
	if err != nil {
		span.RecordError(err)
		return core.LoginResponse{}, err
	}

	return response, nil
}

func (c *client) MyPolicy(ctx context.Context, token string) (core.CompiledPolicy, error) {
	ctx, span := tracer.Start(ctx, "Client.MyPolicy")
	defer span.End()

	compiled, err := request[core.CompiledPolicy](ctx, c, http.MethodGet, "/access-policy/me", token, nil)
	if err != nil {
		span.RecordError(err)
		return core.CompiledPolicy{}, err
	}

	return compiled, nil
}

func (c *client) CreatePolicy(ctx context.Context, token string, policy core.AccessPolicy) (core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Client.CreatePolicy")
	defer span.End()

	created, err := request[core.AccessPolicy](ctx, c, http.MethodPost, "/access-policy", token, map[string]string{
		"title":       policy.Title,
		"description": policy.Description,
	})
	if err != nil {
		span.RecordError(err)
		return core.AccessPolicy{}, err
	}

	return created, nil
}

func (c *client) CreateRules(ctx context.Context, token string, policyID uint, allow, deny []core.RuleEntry) (core.CreatedRules, error) {
	ctx, span := tracer.Start(ctx, "Client.CreateRules")
	defer span.End()

	created, err := request[core.CreatedRules](ctx, c, http.MethodPost, "/access-rules", token, map[string]any{
		"policyId":     policyID,
		"allowActions": allow,
		"denyActions":  deny,
	})
	if err != nil {
		span.RecordError(err)
		return core.CreatedRules{}, err
	}

	return created, nil
}

func (c *client) SyncRules(ctx context.Context, token string, policyID uint, allow, deny []core.RuleEntry) (core.SyncResult, error) {
	ctx, span := tracer.Start(ctx, "Client.SyncRules")
	defer span.End()

	if allow == nil {
		allow = []core.RuleEntry{}
	}
	if deny == nil {
		deny = []core.RuleEntry{}
	}

	result, err := request[core.SyncResult](ctx, c, http.MethodPatch, fmt.Sprintf("/access-rules/%d", policyID), token, map[string]any{
		"allowActions": allow,
		"denyActions":  deny,
	})
	if err != nil {
		span.RecordError(err)
		return core.SyncResult{}, err
	}

	return result, nil
}

func (c *client) ListResourceActions(ctx context.Context, token string) ([]core.ResourceActionView, error) {
	ctx, span := tracer.Start(ctx, "Client.ListResourceActions")
	defer span.End()

	actions, err := request[[]core.ResourceActionView](ctx, c, http.MethodGet, "/access-rules/resources/actions", token, nil)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return actions, nil
}

func (c *client) AssignPolicy(ctx context.Context, token string, role core.Role, id string, policyID uint) (core.ActingUser, error) {
	ctx, span := tracer.Start(ctx, "Client.AssignPolicy")
	defer span.End()

	user, err := request[core.ActingUser](ctx, c, http.MethodPatch, fmt.Sprintf("/accounts/%s/%s/policy", role, id), token, map[string]uint{
		"policyId": policyID,
	})
	if err != nil {
		span.RecordError(err)
		return core.ActingUser{}, err
	}

	return user, nil
}
