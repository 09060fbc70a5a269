package rbac

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"grainsync-console/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	lastReq EnforceRequest
}

func (f *fakeService) LoadPolicy() error { return nil }

func (f *fakeService) Enforce(req EnforceRequest) (bool, error) {
	f.lastReq = req
	return req.Role == session.RoleHRManager && req.Resource == "employee" && req.Action == ActionRead, nil
}

func (f *fakeService) PermissionsForRole(role string) ([]PermissionResponse, error) {
	return []PermissionResponse{{Resource: "employee", Action: ActionRead}}, nil
}

func newRouter(h *Handler, sess *session.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if sess != nil {
			c.Request = c.Request.WithContext(session.With(c.Request.Context(), *sess))
		}
		c.Next()
	})
	RegisterRoutes(r.Group(""), h)
	return r
}

func TestHandler_Enforce(t *testing.T) {
	svc := &fakeService{}
	router := newRouter(NewHandler(svc), &session.Session{Role: session.RoleHRManager, Username: "sara"})

	body, _ := json.Marshal(EnforceRequest{Role: session.RoleAdmin, Resource: "employee", Action: "read"})
	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session.RoleHRManager, svc.lastReq.Role)

	var resp struct {
		Data EnforceResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Allowed)
}

func TestHandler_EnforceWithoutSession(t *testing.T) {
	router := newRouter(NewHandler(&fakeService{}), nil)

	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"employee","action":"read"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_EnforceValidation(t *testing.T) {
	router := newRouter(NewHandler(&fakeService{}), &session.Session{Role: session.RoleHRManager, Username: "sara"})

	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"employee"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"INVALID_INPUT"`)
	assert.Contains(t, w.Body.String(), `"message":"Action is required"`)
}

func TestHandler_MyPermissions(t *testing.T) {
	router := newRouter(NewHandler(&fakeService{}), &session.Session{Role: session.RoleHRManager, Username: "sara"})

	req := httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"resource":"employee"`)
}
