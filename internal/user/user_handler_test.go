package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"grainsync-console/internal/middleware"
	"grainsync-console/internal/shared/apperror"
	"grainsync-console/internal/user"
	usererrors "grainsync-console/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeUserService struct {
	ListUnregisteredFn func(ctx context.Context) ([]user.UnregisteredEmployeeResponse, error)
	RegisterFn         func(ctx context.Context, req user.RegisterRequest) error
	ListFn             func(ctx context.Context, currentUsername string) ([]user.UserResponse, error)
	DeleteFn           func(ctx context.Context, currentUsername string, id int64) error
	MakeAdminFn        func(ctx context.Context, id int64) error
}

func (f *fakeUserService) ListUnregistered(ctx context.Context) ([]user.UnregisteredEmployeeResponse, error) {
	return f.ListUnregisteredFn(ctx)
}

func (f *fakeUserService) Register(ctx context.Context, req user.RegisterRequest) error {
	return f.RegisterFn(ctx, req)
}

func (f *fakeUserService) List(ctx context.Context, currentUsername string) ([]user.UserResponse, error) {
	return f.ListFn(ctx, currentUsername)
}

func (f *fakeUserService) Delete(ctx context.Context, currentUsername string, id int64) error {
	return f.DeleteFn(ctx, currentUsername, id)
}

func (f *fakeUserService) MakeAdmin(ctx context.Context, id int64) error {
	return f.MakeAdminFn(ctx, id)
}

func newRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	h := user.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUsername, "sara")
		c.Next()
	})
	r.GET("/users", h.List)
	r.POST("/users", h.Register)
	r.DELETE("/users/:id", h.Delete)
	r.PUT("/users/:id/make-admin", h.MakeAdmin)
	return r
}

func TestUserHandler_List(t *testing.T) {
	svc := &fakeUserService{
		ListFn: func(ctx context.Context, currentUsername string) ([]user.UserResponse, error) {
			assert.Equal(t, "sara", currentUsername)
			return []user.UserResponse{{ID: 3, Username: "omar", CanDelete: true}}, nil
		},
	}

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"can_delete":true`)
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"employee_id":"42","username":"ali"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(&fakeUserService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Password")
	})

	t.Run("username taken", func(t *testing.T) {
		svc := &fakeUserService{
			RegisterFn: func(ctx context.Context, req user.RegisterRequest) error {
				return usererrors.ErrUsernameTaken
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(
			`{"employee_id":"42","username":"ali","password":"s3cretpass","confirm_password":"s3cretpass"}`,
		))
		req.Header.Set("Content-Type", "application/json")
		newRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		svc := &fakeUserService{
			RegisterFn: func(ctx context.Context, req user.RegisterRequest) error { return nil },
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(
			`{"employee_id":"42","username":"ali","password":"s3cretpass","confirm_password":"s3cretpass"}`,
		))
		req.Header.Set("Content-Type", "application/json")
		newRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(&fakeUserService{}).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("protected", func(t *testing.T) {
		svc := &fakeUserService{
			DeleteFn: func(ctx context.Context, currentUsername string, id int64) error {
				assert.Equal(t, int64(1), id)
				return usererrors.ErrProtectedUser
			},
		}

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/1", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUserHandler_MakeAdmin(t *testing.T) {
	svc := &fakeUserService{
		MakeAdminFn: func(ctx context.Context, id int64) error { return nil },
	}

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/users/3/make-admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
