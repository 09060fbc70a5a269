package rbac

import "grainsync-console/internal/session"

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	// roleStaff is inherited by every signed-in role.
	roleStaff = "staff"
)

// Repository supplies the role policy.
type Repository interface {
	GetRolePermissions() ([]RolePermissionRow, error)
	GetRoleInheritance() ([]RoleInheritanceRow, error)
}

type staticRepository struct{}

// NewStaticRepository serves the built-in role policy.
func NewStaticRepository() Repository {
	return staticRepository{}
}

func crud(role, resource string) []RolePermissionRow {
	return []RolePermissionRow{
		{role, resource, ActionRead},
		{role, resource, ActionCreate},
		{role, resource, ActionUpdate},
		{role, resource, ActionDelete},
	}
}

func (staticRepository) GetRolePermissions() ([]RolePermissionRow, error) {
	rows := []RolePermissionRow{
		{session.RoleAdmin, "*", "*"},

		{roleStaff, "department", ActionRead},
		{roleStaff, "designation", ActionRead},

		{session.RoleHRManager, "dashboard.hr", ActionRead},
		{session.RoleHRManager, "employee", ActionRead},
		{session.RoleHRManager, "employee", ActionCreate},
		{session.RoleHRManager, "employee", ActionUpdate},
		{session.RoleHRManager, "subtype_repair", ActionRead},
		{session.RoleHRManager, "subtype_repair", ActionUpdate},

		{session.RoleFinanceManager, "dashboard.finance", ActionRead},
		{session.RoleFinanceManager, "sales", ActionRead},
		{session.RoleFinanceManager, "purchases", ActionRead},
		{session.RoleFinanceManager, "salaries", ActionRead},

		{session.RoleSalesManager, "dashboard.sales", ActionRead},
		{session.RoleSalesManager, "sales", ActionRead},
		{session.RoleSalesManager, "deliveries", ActionRead},

		{session.RoleProductionSupervisor, "dashboard.production", ActionRead},

		{session.RoleWarehouseManager, "dashboard.warehouse", ActionRead},
		{session.RoleWarehouseManager, "purchases", ActionRead},
	}
	rows = append(rows, crud(session.RoleFinanceManager, "bills")...)
	rows = append(rows, crud(session.RoleSalesManager, "customers")...)
	rows = append(rows, crud(session.RoleSalesManager, "orders")...)
	rows = append(rows, crud(session.RoleProductionSupervisor, "batches")...)
	rows = append(rows, crud(session.RoleWarehouseManager, "suppliers")...)
	return rows, nil
}

func (staticRepository) GetRoleInheritance() ([]RoleInheritanceRow, error) {
	return []RoleInheritanceRow{
		{session.RoleHRManager, roleStaff},
		{session.RoleFinanceManager, roleStaff},
		{session.RoleSalesManager, roleStaff},
		{session.RoleProductionSupervisor, roleStaff},
		{session.RoleWarehouseManager, roleStaff},
	}, nil
}
