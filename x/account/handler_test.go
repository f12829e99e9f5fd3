package account

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sipradi/pvbu/core"
	"github.com/sipradi/pvbu/core/mock"
	"github.com/sipradi/pvbu/internal/testutil"
)

func TestListUsesGuardFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mock_core.NewMockAccountService(ctrl)
	handler := NewHandler(service)

	filter := core.Filter{"createdBy": "o1"}
	service.EXPECT().List(gomock.Any(), core.RoleDriver, filter).Return([]core.ActingUser{{Role: core.RoleDriver}}, nil)

	c, _, rec, _ := testutil.CreateHttpRequest()
	c.Set(core.RequestFilterCtxKey, filter)

	assert.NoError(t, handler.ListDrivers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"driver"`)
}

func TestAssignPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mock_core.NewMockAccountService(ctrl)
	handler := NewHandler(service)

	policyID := uint(4)
	service.EXPECT().AssignPolicy(gomock.Any(), core.RolePassenger, "p1", policyID).
		Return(core.ActingUser{Principal: core.Principal{ID: "p1", PolicyID: &policyID}, Role: core.RolePassenger}, nil)
	service.EXPECT().AssignPolicy(gomock.Any(), core.RolePassenger, "p2", policyID).
		Return(core.ActingUser{}, core.NewErrorNotFound())

	c, _, rec, _ := testutil.CreateJSONRequest(http.MethodPatch, `{"policyId":4}`)
	c.SetParamNames("role", "id")
	c.SetParamValues("passenger", "p1")
	assert.NoError(t, handler.AssignPolicy(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"policyId":4`)

	c, _, rec, _ = testutil.CreateJSONRequest(http.MethodPatch, `{"policyId":4}`)
	c.SetParamNames("role", "id")
	c.SetParamValues("passenger", "p2")
	assert.NoError(t, handler.AssignPolicy(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, _, rec, _ = testutil.CreateJSONRequest(http.MethodPatch, `{"policyId":4}`)
	c.SetParamNames("role", "id")
	c.SetParamValues("pilot", "p1")
	assert.NoError(t, handler.AssignPolicy(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
