package repair_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"grainsync-console/internal/domain"
	"grainsync-console/internal/erpclient"
	"grainsync-console/internal/repair"
	repairerrors "grainsync-console/internal/repair/errors"
	repairMock "grainsync-console/internal/repair/mock"
	"grainsync-console/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type allowAll struct{}

func (allowAll) Enforce(domain.EnforceRequest) (bool, error) { return true, nil }

func setupRouter(t *testing.T) (*gin.Engine, *repairMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := repairMock.NewMockService(gomock.NewController(t))
	r := gin.New()
	withSession := func(c *gin.Context) {
		ctx := session.With(c.Request.Context(), session.Session{Role: session.RoleAdmin, Username: "h_malik"})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
	repair.RegisterRoutes(r.Group("/api/v1"), repair.NewHandler(svc), allowAll{}, withSession)
	return r, svc
}

func TestRepairHandler_RequiresSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := repairMock.NewMockService(gomock.NewController(t))
	r := gin.New()
	repair.RegisterRoutes(r.Group("/api/v1"), repair.NewHandler(svc), allowAll{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/subtype-repairs", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRepairHandler_ListPending(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().ListPending(gomock.Any()).Return([]repair.RepairResponse{{ID: "r-1", Status: repair.StatusPending}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/subtype-repairs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"r-1"`)
	assert.Contains(t, w.Body.String(), `"meta":{"total":1}`)
}

func TestRepairHandler_GetById(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		resp     repair.RepairResponse
		err      error
		status   int
		contains string
	}{
		{
			name:     "found",
			id:       "r-1",
			resp:     repair.RepairResponse{ID: "r-1", EmployeeID: 42, Status: repair.StatusPending},
			status:   http.StatusOK,
			contains: `"employee_id":42`,
		},
		{
			name:     "not found",
			id:       "r-2",
			err:      repairerrors.ErrRepairNotFound,
			status:   http.StatusNotFound,
			contains: `"code":"NOT_FOUND"`,
		},
		{
			name:     "malformed id",
			id:       "nope",
			err:      repairerrors.ErrInvalidRepairID,
			status:   http.StatusBadRequest,
			contains: `"message":"Invalid repair ID"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := setupRouter(t)
			svc.EXPECT().GetByID(gomock.Any(), tt.id).Return(tt.resp, tt.err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/subtype-repairs/"+tt.id, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestRepairHandler_Retry(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Retry(gomock.Any(), "r-1").Return(repair.RepairResponse{ID: "r-1", Status: repair.StatusResolved}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/subtype-repairs/r-1/retry", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("backend failure carries the record", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Retry(gomock.Any(), "r-1").Return(
			repair.RepairResponse{ID: "r-1", Status: repair.StatusPending, Attempts: 3},
			&erpclient.ServerError{Status: 500, Message: "boom"},
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/subtype-repairs/r-1/retry", nil))
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), `"attempts":3`)
	})

	t.Run("not found", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Retry(gomock.Any(), "r-2").Return(repair.RepairResponse{}, repairerrors.ErrRepairNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/subtype-repairs/r-2/retry", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NotContains(t, w.Body.String(), `"attempts"`)
	})
}

func TestRepairHandler_Resolve(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().Resolve(gomock.Any(), "r-1").Return(repair.RepairResponse{ID: "r-1", Status: repair.StatusResolved}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/subtype-repairs/r-1/resolve", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
