package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sipradi/pvbu/core"
	"github.com/sipradi/pvbu/core/mock"
	"github.com/sipradi/pvbu/internal/testutil"
	"github.com/sipradi/pvbu/x/auth/mock"
)

var testConfig = core.Config{
	JWTSecret: "test-secret",
	TokenTTL:  time.Hour,
}

type fixture struct {
	repository *mock_auth.MockRepository
	account    *mock_core.MockAccountService
	policy     *mock_core.MockPolicyService
	service    core.AuthService
}

func setup(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		repository: mock_auth.NewMockRepository(ctrl),
		account:    mock_core.NewMockAccountService(ctrl),
		policy:     mock_core.NewMockPolicyService(ctrl),
	}
	f.service = NewService(f.repository, f.account, f.policy, testConfig)
	return f
}

func driver() core.ActingUser {
	policyID := uint(2)
	return core.ActingUser{
		Principal: core.Principal{ID: "d1", Email: "d1@example.com", PolicyID: &policyID},
		Role:      core.RoleDriver,
		CreatedBy: "o1",
	}
}

func TestGuardAllowsWithFilter(t *testing.T) {
	f := setup(t)
	user := driver()

	f.policy.EXPECT().Evaluate(gomock.Any(), user, core.ResourceTrips, core.ActionRead).
		Return(core.Decision{Allowed: true, Filter: core.Filter{"driverId": "d1"}}, nil)

	checker := testutil.SetupMockTraceProvider()

	c, req, rec, traceID := testutil.CreateHttpRequest()
	req.URL.RawQuery = "page=2&driverId=someone"
	c.Set(core.RequesterCtxKey, user)

	called := false
	next := func(c echo.Context) error {
		called = true
		assert.Equal(t, "d1", c.QueryParam("driverId"))
		assert.Equal(t, "2", c.QueryParam("page"))
		assert.Equal(t, core.Filter{"driverId": "d1"}, c.Get(core.RequestFilterCtxKey))
		return c.NoContent(http.StatusNoContent)
	}

	err := f.service.Guard(core.ResourceTrips, core.ActionRead)(next)(c)
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	spans := checker.GetSpans()
	assert.Contains(t, testutil.SpanNames(spans, traceID), "Auth.Service.Guard")
	testutil.PrintSpans(t, spans, traceID)
}

func TestGuardDenies(t *testing.T) {
	f := setup(t)
	user := driver()

	f.policy.EXPECT().Evaluate(gomock.Any(), user, core.ResourceWallet, core.ActionDelete).
		Return(core.Decision{Allowed: false}, nil)

	c, _, rec, _ := testutil.CreateHttpRequest()
	c.Set(core.RequesterCtxKey, user)

	next := func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	}

	err := f.service.Guard(core.ResourceWallet, core.ActionDelete)(next)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Access Denied"}`, rec.Body.String())
}

func TestGuardWithoutRequester(t *testing.T) {
	f := setup(t)

	c, _, rec, _ := testutil.CreateHttpRequest()
	err := f.service.Guard(core.ResourceVehicle, core.ActionRead)(func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"you are not authorized to perform this action","detail":"authentication required"}`, rec.Body.String())
}

func TestGuardWithoutPolicy(t *testing.T) {
	f := setup(t)
	user := driver()
	user.PolicyID = nil

	f.policy.EXPECT().Evaluate(gomock.Any(), user, core.ResourceVehicle, core.ActionRead).
		Return(core.Decision{}, core.NewErrorPermissionDenied())

	c, _, rec, _ := testutil.CreateHttpRequest()
	c.Set(core.RequesterCtxKey, user)

	err := f.service.Guard(core.ResourceVehicle, core.ActionRead)(func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"User does not have access permissions"}`, rec.Body.String())
}

func TestIdentifyIdentity(t *testing.T) {
	f := setup(t)
	user := driver()

	token, err := f.service.IssueToken(user)
	assert.NoError(t, err)

	f.repository.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
	f.account.EXPECT().Get(gomock.Any(), core.RoleDriver, "d1").Return(user, nil)

	checker := testutil.SetupMockTraceProvider()

	c, req, _, traceID := testutil.CreateHttpRequest()
	req.Header.Set("Authorization", "Bearer "+token)

	called := false
	err = f.service.IdentifyIdentity(func(c echo.Context) error {
		called = true
		assert.Equal(t, user, c.Get(core.RequesterCtxKey))
		assert.Equal(t, core.RoleDriver, c.Get(core.RequesterRoleCtxKey))
		claims, ok := c.Get(RequesterClaimsCtxKey).(*Claims)
		if assert.True(t, ok) {
			assert.Equal(t, "d1@example.com", claims.Email)
		}
		return nil
	})(c)
	assert.NoError(t, err)
	assert.True(t, called)

	spans := checker.GetSpans()
	assert.Contains(t, testutil.SpanNames(spans, traceID), "Auth.Service.IdentifyIdentity")
	testutil.PrintSpans(t, spans, traceID)
}

func TestIdentifyIdentityRejectsBadTokens(t *testing.T) {
	f := setup(t)
	user := driver()

	token, err := f.service.IssueToken(user)
	assert.NoError(t, err)

	other := NewService(f.repository, f.account, f.policy, core.Config{JWTSecret: "other", TokenTTL: time.Hour})
	forged, err := other.IssueToken(user)
	assert.NoError(t, err)

	f.repository.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(true, nil)

	for _, header := range []string{
		"Bearer " + token, // revoked
		"Bearer " + forged,
		"Basic " + token,
		"Bearer",
	} {
		c, req, _, _ := testutil.CreateHttpRequest()
		req.Header.Set("Authorization", header)

		err = f.service.IdentifyIdentity(func(c echo.Context) error {
			assert.Nil(t, c.Get(core.RequesterCtxKey), header)
			return nil
		})(c)
		assert.NoError(t, err)
	}
}
