package user

import (
	"context"

	"grainsync-console/internal/erpclient"
)

// Repository is the backend's user API. Users are not stored locally.
//
//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	ListUsers(ctx context.Context) ([]erpclient.User, error)
	ListUnregisteredEmployees(ctx context.Context) ([]erpclient.UnregisteredEmployee, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	RegisterFromEmployee(ctx context.Context, req erpclient.RegisterFromEmployeeRequest) error
	DeleteUser(ctx context.Context, id string) error
	MakeAdmin(ctx context.Context, id string) error
}

var _ Repository = (*erpclient.Client)(nil)
