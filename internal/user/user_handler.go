package user

import (
	"net/http"
	"strconv"

	"grainsync-console/internal/middleware"
	"grainsync-console/internal/shared/apperror"
	"grainsync-console/internal/shared/response"
	usererrors "grainsync-console/internal/user/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("user request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.GetString(middleware.ContextUsername))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp)))
}

func (h *Handler) ListUnregistered(c *gin.Context) {
	resp, err := h.svc.ListUnregistered(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp)))
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.svc.Register(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "User registered", nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		h.writeServiceError(c, usererrors.ErrInvalidUserID)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.GetString(middleware.ContextUsername), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", nil)
}

func (h *Handler) MakeAdmin(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		h.writeServiceError(c, usererrors.ErrInvalidUserID)
		return
	}

	if err := h.svc.MakeAdmin(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User is now an admin", nil)
}
