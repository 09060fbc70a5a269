package department

import (
	"context"

	"grainsync-console/internal/erpclient"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Department, error)
}

type Backend interface {
	ListDepartments(ctx context.Context) ([]erpclient.Department, error)
}

type repository struct {
	backend Backend
}

func NewRepository(backend Backend) Repository {
	return &repository{backend: backend}
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	rows, err := r.backend.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}

	depts := make([]Department, len(rows))
	for i, row := range rows {
		depts[i] = Department{ID: row.ID, Name: row.Name}
	}
	return depts, nil
}
