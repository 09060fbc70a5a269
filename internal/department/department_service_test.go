package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"grainsync-console/internal/department"
	departmenterrors "grainsync-console/internal/department/errors"
	departmentMock "grainsync-console/internal/department/mock"
	"grainsync-console/internal/erpclient"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service   department.Service
	repo      *departmentMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:   department.NewService(repo, dbRedis),
		repo:      repo,
		redismock: redisMock,
	}
}

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the backend", func(t *testing.T) {
		deps := setupServiceTest(t)
		expected := []department.DepartmentResponse{
			{ID: 1, Name: "HR", Designations: []string{"HR Officer"}},
		}
		jsonResp, _ := json.Marshal(expected)
		deps.redismock.ExpectGet(department.DepartmentAllKey).SetVal(string(jsonResp))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores with designations", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(department.DepartmentAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(gomock.Any()).Return([]department.Department{
			{ID: 6, Name: "Logistics"},
			{ID: 9, Name: "Research"},
		}, nil)

		expected := []department.DepartmentResponse{
			{ID: 6, Name: "Logistics", Designations: []string{"Driver", "Delivery Supervisor", "Vehicle Maintenance Coordinator"}},
			{ID: 9, Name: "Research", Designations: []string{}},
		}
		jsonData, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(department.DepartmentAllKey, jsonData, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("backend error is returned", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(department.DepartmentAllKey).RedisNil()
		backendErr := &erpclient.ServerError{Method: "GET", Path: "/api/departments", Status: 500, Message: "boom"}
		deps.repo.EXPECT().FindAll(gomock.Any()).Return(nil, backendErr)

		resp, err := deps.service.GetAll(ctx)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, backendErr)
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(department.DepartmentAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(gomock.Any()).Return([]department.Department{{ID: 2, Name: "Warehouse"}}, nil)
		deps.redismock.Regexp().ExpectSet(department.DepartmentAllKey, `.*`, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetByID(ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, "Warehouse", resp.Name)
		assert.Equal(t, []string{"Inventory Supervisor", "Dispatch Officer"}, resp.Designations)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(department.DepartmentAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(gomock.Any()).Return([]department.Department{{ID: 2, Name: "Warehouse"}}, nil)
		deps.redismock.Regexp().ExpectSet(department.DepartmentAllKey, `.*`, 30*time.Minute).SetVal("OK")

		_, err := deps.service.GetByID(ctx, 3)
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.GetByID(ctx, 0)
		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentID)
	})
}

func TestDepartmentService_Invalidate(t *testing.T) {
	deps := setupServiceTest(t)
	deps.redismock.ExpectDel(department.DepartmentAllKey).SetVal(1)

	assert.NoError(t, deps.service.Invalidate(context.Background()))
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

func TestRepository_FindAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := departmentMock.NewMockBackend(ctrl)
	repo := department.NewRepository(backend)

	backend.EXPECT().ListDepartments(gomock.Any()).Return([]erpclient.Department{{ID: 4, Name: "Finance"}}, nil)
	depts, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []department.Department{{ID: 4, Name: "Finance"}}, depts)

	backend.EXPECT().ListDepartments(gomock.Any()).Return(nil, errors.New("down"))
	_, err = repo.FindAll(context.Background())
	assert.EqualError(t, err, "down")
}
