package erpclient

import (
	"context"
	"net/http"
	"net/url"
)

type User struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type UnregisteredEmployee struct {
	ID         int64      `json:"employee_id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Department Department `json:"department"`
}

type RegisterFromEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.doJSON(ctx, http.MethodGet, "/api/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListUnregisteredEmployees(ctx context.Context) ([]UnregisteredEmployee, error) {
	var out []UnregisteredEmployee
	if err := c.doJSON(ctx, http.MethodGet, "/api/employees/unregistered", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UsernameTaken asks the backend whether username already exists.
func (c *Client) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var taken bool
	q := url.Values{"username": []string{username}}
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/check-username", q, nil, &taken); err != nil {
		return false, err
	}
	return taken, nil
}

func (c *Client) RegisterFromEmployee(ctx context.Context, req RegisterFromEmployeeRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/api/users/register-from-employee", nil, req, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) MakeAdmin(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id)+"/make-admin", nil, nil, nil)
}
