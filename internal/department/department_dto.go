package department

type DepartmentResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Designations []string `json:"designations"`
}
