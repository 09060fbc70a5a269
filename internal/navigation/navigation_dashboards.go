package navigation

import "grainsync-console/internal/session"

const (
	DashboardAdmin      = "admin"
	DashboardHR         = "hr"
	DashboardFinance    = "finance"
	DashboardSales      = "sales"
	DashboardProduction = "production"
	DashboardWarehouse  = "warehouse"
	DashboardUsers      = "users"
)

type Card struct {
	Title       string `json:"title"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Resource    string `json:"-"`
	Action      string `json:"-"`
}

type Dashboard struct {
	Name      string
	Title     string
	Path      string
	OwnerRole string
	Cards     []Card
}

// Resource is the rbac object guarding the dashboard itself.
func (d Dashboard) Resource() string {
	return "dashboard." + d.Name
}

var dashboards = []Dashboard{
	{
		Name:      DashboardAdmin,
		Title:     "Admin Dashboard",
		Path:      "/admin-dashboard",
		OwnerRole: session.RoleAdmin,
		Cards: []Card{
			{"HR", "/hr-dashboard", "Manage employees and designations", "dashboard.hr", "read"},
			{"Finance", "/finance-dashboard", "Bills, salaries and revenue", "dashboard.finance", "read"},
			{"Sales and Distribution", "/sd-dashboard", "Orders, customers and deliveries", "dashboard.sales", "read"},
			{"Production", "/production-dashboard", "Batch logging and summaries", "dashboard.production", "read"},
			{"Warehouse", "/warehouse-dashboard", "Suppliers and purchases", "dashboard.warehouse", "read"},
			{"User Management", "/user-management", "Register and remove system users", "dashboard.users", "read"},
		},
	},
	{
		Name:      DashboardHR,
		Title:     "HR Dashboard",
		Path:      "/hr-dashboard",
		OwnerRole: session.RoleHRManager,
		Cards: []Card{
			{"Add Employee", "/hr/add-employee", "Register a new employee", "employee", "create"},
			{"View Employees", "/hr/employees", "Browse and update employee records", "employee", "read"},
			{"Subtype Repairs", "/hr/subtype-repairs", "Finish employees whose role record failed", "subtype_repair", "read"},
		},
	},
	{
		Name:      DashboardFinance,
		Title:     "Finance Dashboard",
		Path:      "/finance-dashboard",
		OwnerRole: session.RoleFinanceManager,
		Cards: []Card{
			{"Add Bill", "/finance/add-bill", "Create and log new financial bills", "bills", "create"},
			{"View Bills", "/finance/view-bill", "Access and settle outstanding bills", "bills", "read"},
			{"Manage Salaries", "/finance/salaries", "Adjust and maintain employee salary records", "salaries", "read"},
			{"Track Sales", "/finance/track-finance", "Monitor revenue and financial performance", "sales", "read"},
		},
	},
	{
		Name:      DashboardSales,
		Title:     "Sales and Distribution Dashboard",
		Path:      "/sd-dashboard",
		OwnerRole: session.RoleSalesManager,
		Cards: []Card{
			{"Add Order", "/sd/orders/add", "Create new orders", "orders", "create"},
			{"View Orders", "/sd/orders/view", "Browse all orders", "orders", "read"},
			{"Manage Customers", "/sd/customers", "Manage customer records", "customers", "read"},
			{"Manage Deliveries", "/sd/deliveries", "Track deliveries", "deliveries", "read"},
		},
	},
	{
		Name:      DashboardProduction,
		Title:     "Production Dashboard",
		Path:      "/production-dashboard",
		OwnerRole: session.RoleProductionSupervisor,
		Cards: []Card{
			{"Log Batch", "/product/log", "Enter production data for new batches", "batches", "create"},
			{"View Batch Summary", "/product/summary", "Analyze and review batch reports", "batches", "read"},
		},
	},
	{
		Name:      DashboardWarehouse,
		Title:     "Warehouse Dashboard",
		Path:      "/warehouse-dashboard",
		OwnerRole: session.RoleWarehouseManager,
		Cards: []Card{
			{"Suppliers", "/warehouse/suppliers", "Manage supplier records", "suppliers", "read"},
			{"Purchases", "/warehouse/purchases", "Review purchase history", "purchases", "read"},
		},
	},
	{
		Name:      DashboardUsers,
		Title:     "User Management",
		Path:      "/user-management",
		OwnerRole: session.RoleAdmin,
		Cards: []Card{
			{"Register User", "/register-user", "Create a login for an existing employee", "user", "create"},
			{"Remove User", "/remove-user", "Delete users or grant admin rights", "user", "delete"},
		},
	},
}

func lookup(name string) (Dashboard, bool) {
	for _, d := range dashboards {
		if d.Name == name {
			return d, true
		}
	}
	return Dashboard{}, false
}
