package repair

import (
	"net/http"

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
	l := zap.L().Named("repair.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("repair.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error, details any) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("repair request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	if details == nil {
		details = httpErr.Details
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, details)
}

func (h *Handler) ListPending(c *gin.Context) {
	resp, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp)))
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Retry reports the updated record alongside a failed attempt so the UI can show the attempt count.
func (h *Handler) Retry(c *gin.Context) {
	resp, err := h.service.Retry(c.Request.Context(), c.Param("id"))
	if err != nil {
		var details any
		if resp.ID != "" {
			details = resp
		}
		h.writeServiceError(c, err, details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Resolve(c *gin.Context) {
	resp, err := h.service.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
