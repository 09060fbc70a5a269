package resource

// Resource is a backend collection proxied as opaque JSON.
type Resource struct {
	Name       string
	Permission string
	ReadOnly   bool
}

// Path is the backend collection path.
func (r Resource) Path() string {
	return "/api/" + r.Name
}

var catalog = []Resource{
	{Name: "customers", Permission: "customers"},
	{Name: "suppliers", Permission: "suppliers"},
	{Name: "bills", Permission: "bills"},
	{Name: "sales", Permission: "sales"},
	{Name: "purchases", Permission: "purchases"},
	{Name: "batches", Permission: "batches"},
	{Name: "orders", Permission: "orders"},
	{Name: "salaries", Permission: "salaries"},
	{Name: "deliveries", Permission: "deliveries"},
	// Employees are created through the draft workflow; only the listing is proxied.
	{Name: "employees", Permission: "employee", ReadOnly: true},
}

func Catalog() []Resource {
	out := make([]Resource, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(name string) (Resource, bool) {
	for _, r := range catalog {
		if r.Name == name {
			return r, true
		}
	}
	return Resource{}, false
}
