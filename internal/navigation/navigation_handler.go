package navigation

import (
	"net/http"

	navigationerrors "grainsync-console/internal/navigation/errors"
	"grainsync-console/internal/session"
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
	l := zap.L().Named("navigation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("navigation.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("navigation request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	sess, ok := session.From(c.Request.Context())
	if !ok {
		h.writeServiceError(c, navigationerrors.ErrMissingSession)
		return
	}

	resp, err := h.service.Dashboards(sess)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	sess, ok := session.From(c.Request.Context())
	if !ok {
		h.writeServiceError(c, navigationerrors.ErrMissingSession)
		return
	}

	resp, err := h.service.Build(sess, c.Param("dashboard"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
