package erpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

type Department struct {
	ID   int64  `json:"dept_id"`
	Name string `json:"name,omitempty"`
}

type Employee struct {
	ID          int64      `json:"employee_id,omitempty"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth string     `json:"date_of_birth"`
	CNIC        string     `json:"cnic"`
	Email       string     `json:"email"`
	Designation string     `json:"designation"`
	Address     string     `json:"address"`
	Gender      string     `json:"gender"`
	Department  Department `json:"department"`
	Absences    int        `json:"absences"`
	Leaves      int        `json:"leaves"`
}

type EmployeeRef struct {
	EmployeeID int64 `json:"employee_id"`
}

func (c *Client) ListDepartments(ctx context.Context) ([]Department, error) {
	var out []Department
	if err := c.doJSON(ctx, http.MethodGet, "/api/departments", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, e Employee) (Employee, error) {
	var out Employee
	if err := c.doJSON(ctx, http.MethodPost, "/api/employees", nil, e, &out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (c *Client) GetEmployee(ctx context.Context, id string) (Employee, error) {
	var out Employee
	if err := c.doJSON(ctx, http.MethodGet, "/api/employees/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, e Employee) (Employee, error) {
	var out Employee
	if err := c.doJSON(ctx, http.MethodPut, "/api/employees/"+url.PathEscape(id), nil, e, &out); err != nil {
		return Employee{}, err
	}
	if out.ID == 0 {
		// Some backend builds answer PUT with an empty body.
		out = e
	}
	return out, nil
}

// CreateSubtype creates the dependent record in collection (drivers, accountants,
// supervisors) as {"employee":{"employee_id":id}, field: value}.
func (c *Client) CreateSubtype(ctx context.Context, collection, field string, employeeID int64, value string) (json.RawMessage, error) {
	payload := map[string]any{
		"employee": EmployeeRef{EmployeeID: employeeID},
		field:      value,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, http.MethodPost, "/api/"+collection, nil, body)
}
