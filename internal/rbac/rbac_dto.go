package rbac

import "grainsync-console/internal/domain"

type (
	EnforceRequest     = domain.EnforceRequest
	EnforceResponse    = domain.EnforceResponse
	PermissionResponse = domain.PermissionResponse
)

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

type RoleInheritanceRow struct {
	Role   string
	Parent string
}
