package rbac

import (
	"errors"
	"testing"

	"grainsync-console/internal/rbac/infra"
	"grainsync-console/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepo struct{}

func (failingRepo) GetRolePermissions() ([]RolePermissionRow, error) {
	return nil, errors.New("policy unavailable")
}

func (failingRepo) GetRoleInheritance() ([]RoleInheritanceRow, error) {
	return nil, nil
}

func newLoadedService(t *testing.T) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)

	svc := NewService(NewStaticRepository(), enforcer)
	require.NoError(t, svc.LoadPolicy())
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newLoadedService(t)

	tests := []struct {
		name     string
		req      EnforceRequest
		expected bool
	}{
		{"admin wildcard", EnforceRequest{Role: session.RoleAdmin, Resource: "dashboard.users", Action: ActionRead}, true},
		{"admin any action", EnforceRequest{Role: session.RoleAdmin, Resource: "bills", Action: ActionDelete}, true},
		{"hr creates employee", EnforceRequest{Role: session.RoleHRManager, Resource: "employee", Action: ActionCreate}, true},
		{"hr cannot delete employee", EnforceRequest{Role: session.RoleHRManager, Resource: "employee", Action: ActionDelete}, false},
		{"finance manages bills", EnforceRequest{Role: session.RoleFinanceManager, Resource: "bills", Action: ActionUpdate}, true},
		{"finance cannot see hr dashboard", EnforceRequest{Role: session.RoleFinanceManager, Resource: "dashboard.hr", Action: ActionRead}, false},
		{"inherited staff permission", EnforceRequest{Role: session.RoleSalesManager, Resource: "designation", Action: ActionRead}, true},
		{"unknown role", EnforceRequest{Role: "intern", Resource: "designation", Action: ActionRead}, false},
		{"empty role", EnforceRequest{Resource: "designation", Action: ActionRead}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tt.req)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, allowed)
		})
	}
}

func TestRBACService_LoadPolicyIsRepeatable(t *testing.T) {
	svc := newLoadedService(t)
	require.NoError(t, svc.LoadPolicy())

	allowed, err := svc.Enforce(EnforceRequest{Role: session.RoleWarehouseManager, Resource: "suppliers", Action: ActionCreate})
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestRBACService_LoadPolicyRepoError(t *testing.T) {
	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)

	svc := NewService(failingRepo{}, enforcer)
	assert.EqualError(t, svc.LoadPolicy(), "policy unavailable")
}

func TestRBACService_PermissionsForRole(t *testing.T) {
	svc := newLoadedService(t)

	perms, err := svc.PermissionsForRole(session.RoleProductionSupervisor)
	require.NoError(t, err)

	assert.Contains(t, perms, PermissionResponse{Resource: "dashboard.production", Action: ActionRead})
	assert.Contains(t, perms, PermissionResponse{Resource: "batches", Action: ActionCreate})
	assert.Contains(t, perms, PermissionResponse{Resource: "designation", Action: ActionRead})
	assert.NotContains(t, perms, PermissionResponse{Resource: "bills", Action: ActionRead})
}
