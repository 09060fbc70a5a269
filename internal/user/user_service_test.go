package user_test

import (
	"context"
	"errors"
	"testing"

	"grainsync-console/internal/audit"
	"grainsync-console/internal/erpclient"
	"grainsync-console/internal/user"
	usererrors "grainsync-console/internal/user/errors"
	mock_user "grainsync-console/internal/user/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mock_user.MockRepository, user.Service) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_user.NewMockRepository(ctrl)
	svc := user.NewService(mockRepo, "h_malik")
	return mockRepo, svc
}

type recordingAudit struct {
	entries []audit.Entry
}

func (r *recordingAudit) Log(_ context.Context, entry audit.Entry) {
	r.entries = append(r.entries, entry)
}

var backendUsers = []erpclient.User{
	{ID: 1, Username: "h_malik", Role: "admin"},
	{ID: 2, Username: "sara", Role: "admin"},
	{ID: 3, Username: "omar", Role: "sales_manager"},
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	valid := user.RegisterRequest{
		EmployeeID:      "42",
		Username:        "ali.k",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
	}

	t.Run("short password stops before any call", func(t *testing.T) {
		_, svc := setup(t)
		req := valid
		req.Password = "short"
		req.ConfirmPassword = "short"

		assert.ErrorIs(t, svc.Register(ctx, req), usererrors.ErrPasswordTooShort)
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		_, svc := setup(t)
		req := valid
		req.ConfirmPassword = "s3cretpasz"

		assert.ErrorIs(t, svc.Register(ctx, req), usererrors.ErrPasswordMismatch)
	})

	t.Run("username taken", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().UsernameTaken(gomock.Any(), "ali.k").Return(true, nil)

		assert.ErrorIs(t, svc.Register(ctx, valid), usererrors.ErrUsernameTaken)
	})

	t.Run("success", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().UsernameTaken(gomock.Any(), "ali.k").Return(false, nil)
		mockRepo.EXPECT().RegisterFromEmployee(gomock.Any(), erpclient.RegisterFromEmployeeRequest{
			EmployeeID: "42",
			Username:   "ali.k",
			Password:   "s3cretpass",
		}).Return(nil)

		assert.NoError(t, svc.Register(ctx, valid))
	})

	t.Run("backend error is returned", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().UsernameTaken(gomock.Any(), "ali.k").Return(false, errors.New("down"))

		assert.Error(t, svc.Register(ctx, valid))
	})
}

func TestUserService_List(t *testing.T) {
	mockRepo, svc := setup(t)
	mockRepo.EXPECT().ListUsers(gomock.Any()).Return(backendUsers, nil)

	res, err := svc.List(context.Background(), "sara")

	assert.NoError(t, err)
	assert.Equal(t, []user.UserResponse{
		{ID: 1, Username: "h_malik", Role: "admin", CanDelete: false, CanMakeAdmin: false},
		{ID: 2, Username: "sara", Role: "admin", CanDelete: false, CanMakeAdmin: false},
		{ID: 3, Username: "omar", Role: "sales_manager", CanDelete: true, CanMakeAdmin: true},
	}, res)
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("root user is protected", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().ListUsers(gomock.Any()).Return(backendUsers, nil)

		assert.ErrorIs(t, svc.Delete(ctx, "sara", 1), usererrors.ErrProtectedUser)
	})

	t.Run("cannot delete self", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().ListUsers(gomock.Any()).Return(backendUsers, nil)

		assert.ErrorIs(t, svc.Delete(ctx, "sara", 2), usererrors.ErrProtectedUser)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().ListUsers(gomock.Any()).Return(backendUsers, nil)

		assert.ErrorIs(t, svc.Delete(ctx, "sara", 99), usererrors.ErrUserNotFound)
	})

	t.Run("success", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().ListUsers(gomock.Any()).Return(backendUsers, nil)
		mockRepo.EXPECT().DeleteUser(gomock.Any(), "3").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "sara", 3))
	})

	t.Run("audits deletion but not refusals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mock_user.NewMockRepository(ctrl)
		rec := &recordingAudit{}
		svc := user.NewServiceWithAudit(mockRepo, "h_malik", rec)

		mockRepo.EXPECT().ListUsers(gomock.Any()).Return(backendUsers, nil).Times(2)
		mockRepo.EXPECT().DeleteUser(gomock.Any(), "3").Return(nil)

		assert.ErrorIs(t, svc.Delete(ctx, "sara", 1), usererrors.ErrProtectedUser)
		assert.NoError(t, svc.Delete(ctx, "sara", 3))

		if assert.Len(t, rec.entries, 1) {
			assert.Equal(t, audit.ActionUserDeleted, rec.entries[0].Action)
			assert.Equal(t, "omar", rec.entries[0].Meta["username"])
		}
	})
}

func TestUserService_MakeAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("already admin", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().ListUsers(gomock.Any()).Return(backendUsers, nil)

		assert.ErrorIs(t, svc.MakeAdmin(ctx, 2), usererrors.ErrAlreadyAdmin)
	})

	t.Run("success", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().ListUsers(gomock.Any()).Return(backendUsers, nil)
		mockRepo.EXPECT().MakeAdmin(gomock.Any(), "3").Return(nil)

		assert.NoError(t, svc.MakeAdmin(ctx, 3))
	})

	t.Run("invalid id", func(t *testing.T) {
		_, svc := setup(t)

		assert.ErrorIs(t, svc.MakeAdmin(ctx, 0), usererrors.ErrInvalidUserID)
	})
}

func TestUserService_ListUnregistered(t *testing.T) {
	mockRepo, svc := setup(t)
	mockRepo.EXPECT().ListUnregisteredEmployees(gomock.Any()).Return([]erpclient.UnregisteredEmployee{
		{ID: 42, FirstName: "Ali", LastName: "Khan", Department: erpclient.Department{ID: 6, Name: "Logistics"}},
	}, nil)

	res, err := svc.ListUnregistered(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []user.UnregisteredEmployeeResponse{{EmployeeID: 42, FullName: "Ali Khan", Department: "Logistics"}}, res)
}
