package resource

import (
	"net/http"

	resourceerrors "grainsync-console/internal/resource/errors"
	"grainsync-console/internal/shared/apperror"
	"grainsync-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("resource.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("resource.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("resource request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h.service.List(c.Request.Context(), name, c.Request.URL.Query())
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) Get(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h.service.Get(c.Request.Context(), name, c.Param("id"))
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) Create(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			h.writeServiceError(c, resourceerrors.ErrInvalidBody)
			return
		}

		resp, err := h.service.Create(c.Request.Context(), name, body)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, resp, nil)
	}
}

func (h *Handler) Update(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			h.writeServiceError(c, resourceerrors.ErrInvalidBody)
			return
		}

		resp, err := h.service.Update(c.Request.Context(), name, c.Param("id"), body)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) Delete(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.service.Delete(c.Request.Context(), name, c.Param("id")); err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "Deleted", nil)
	}
}
