package designation

// catalog lists the designations each department accepts, in display order.
var catalog = map[string][]string{
	"HR":         {"HR Officer", "Training and Development Officer", "Attendance Supervisor"},
	"Warehouse":  {"Inventory Supervisor", "Dispatch Officer"},
	"Production": {"Supervisor", "Machine Operator", "Quality Inspector", "Process Technician"},
	"Finance":    {"Accountant", "Billing Officer", "Audit Officer", "Financial Analyst"},
	"Sales":      {"Sales Representative", "Customer Relations Officer", "Marketing Assistant"},
	"Logistics":  {"Driver", "Delivery Supervisor", "Vehicle Maintenance Coordinator"},
}

// Designations returns a copy of the department's designations. Unknown departments
// yield an empty, non-nil slice.
func Designations(department string) []string {
	list := catalog[department]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Allowed reports whether designation belongs to department.
func Allowed(department, designation string) bool {
	for _, d := range catalog[department] {
		if d == designation {
			return true
		}
	}
	return false
}

// Departments returns the department names the catalog knows, in a stable order.
func Departments() []string {
	return []string{"HR", "Warehouse", "Production", "Finance", "Sales", "Logistics"}
}
