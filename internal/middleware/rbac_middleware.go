package middleware

import (
	"net/http"

	"grainsync-console/internal/domain"
	"grainsync-console/internal/session"
	"grainsync-console/internal/shared/apperror"
	"grainsync-console/internal/shared/contextutil"
	"grainsync-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by anything that can answer an enforce request.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := session.From(c.Request.Context())
		if !ok {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing session")
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     sess.Role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed", zap.Error(err))
			response.Abort(c, http.StatusInternalServerError, apperror.CodeInternalError, "Internal server error")
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				"You do not have permission to access this resource",
				gin.H{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
