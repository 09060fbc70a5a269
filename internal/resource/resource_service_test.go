package resource_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"grainsync-console/internal/erpclient"
	"grainsync-console/internal/resource"
	resourceerrors "grainsync-console/internal/resource/errors"
	resourceMock "grainsync-console/internal/resource/mock"
	"grainsync-console/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupService(t *testing.T) (*resourceMock.MockBackend, resource.Service) {
	ctrl := gomock.NewController(t)
	backend := resourceMock.NewMockBackend(ctrl)
	return backend, resource.NewService(backend)
}

func TestResourceService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards query", func(t *testing.T) {
		backend, svc := setupService(t)
		q := url.Values{"status": []string{"open"}}
		backend.EXPECT().Do(gomock.Any(), http.MethodGet, "/api/orders", q, nil).
			Return(json.RawMessage(`[{"order_id":1}]`), nil)

		out, err := svc.List(ctx, "orders", q)

		assert.NoError(t, err)
		assert.JSONEq(t, `[{"order_id":1}]`, string(out))
	})

	t.Run("empty backend answer is an empty list", func(t *testing.T) {
		backend, svc := setupService(t)
		backend.EXPECT().Do(gomock.Any(), http.MethodGet, "/api/bills", gomock.Any(), nil).Return(nil, nil)

		out, err := svc.List(ctx, "bills", nil)

		assert.NoError(t, err)
		assert.Equal(t, "[]", string(out))
	})

	t.Run("unknown resource", func(t *testing.T) {
		_, svc := setupService(t)

		_, err := svc.List(ctx, "payroll", nil)

		assert.ErrorIs(t, err, resourceerrors.ErrUnknownResource)
	})
}

func TestResourceService_Writes(t *testing.T) {
	ctx := context.Background()

	t.Run("create passes body through", func(t *testing.T) {
		backend, svc := setupService(t)
		body := json.RawMessage(`{"name":"Acme","phone":"042"}`)
		backend.EXPECT().Do(gomock.Any(), http.MethodPost, "/api/customers", gomock.Nil(), []byte(body)).
			Return(json.RawMessage(`{"customer_id":9}`), nil)

		out, err := svc.Create(ctx, "customers", body)

		assert.NoError(t, err)
		assert.JSONEq(t, `{"customer_id":9}`, string(out))
	})

	t.Run("create rejects non object body", func(t *testing.T) {
		_, svc := setupService(t)

		_, err := svc.Create(ctx, "customers", json.RawMessage(`[1,2]`))

		assert.ErrorIs(t, err, resourceerrors.ErrInvalidBody)
	})

	t.Run("update escapes id", func(t *testing.T) {
		backend, svc := setupService(t)
		backend.EXPECT().Do(gomock.Any(), http.MethodPut, "/api/suppliers/a%20b", gomock.Nil(), gomock.Any()).
			Return(json.RawMessage(`{}`), nil)

		_, err := svc.Update(ctx, "suppliers", "a b", json.RawMessage(`{"name":"x"}`))

		assert.NoError(t, err)
	})

	t.Run("delete rejects slash in id", func(t *testing.T) {
		_, svc := setupService(t)

		assert.ErrorIs(t, svc.Delete(ctx, "batches", "1/2"), resourceerrors.ErrInvalidID)
	})

	t.Run("employees are read only", func(t *testing.T) {
		_, svc := setupService(t)

		_, err := svc.Create(ctx, "employees", json.RawMessage(`{}`))

		assert.ErrorIs(t, err, resourceerrors.ErrReadOnlyResource)
	})

	t.Run("backend error keeps status", func(t *testing.T) {
		backend, svc := setupService(t)
		backend.EXPECT().Do(gomock.Any(), http.MethodDelete, "/api/bills/4", gomock.Nil(), gomock.Nil()).
			Return(nil, &erpclient.ServerError{Method: http.MethodDelete, Path: "/api/bills/4", Status: 409, Message: "bill is paid"})

		err := svc.Delete(ctx, "bills", "4")

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, "bill is paid", httpErr.Message)
	})
}
