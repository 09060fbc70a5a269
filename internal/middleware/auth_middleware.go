package middleware

import (
	"errors"
	"net/http"
	"strings"

	"grainsync-console/internal/session"
	"grainsync-console/internal/shared/apperror"
	"grainsync-console/internal/shared/contextutil"
	"grainsync-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	ContextRole     = "role"
	ContextUsername = "username"
)

// SessionMiddleware reads the access token from the Authorization header or the
// access_token cookie and puts the resulting session on the request context.
func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		sess, err := session.Parse(tokenString, secret)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrMissingToken):
				response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found")
			case errors.Is(err, session.ErrTokenExpired):
				response.Abort(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "Token has expired")
			case errors.Is(err, session.ErrMissingClaims):
				response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Role or username not found in token")
			default:
				response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			}
			return
		}

		ctx := session.With(c.Request.Context(), sess)
		ctx = contextutil.WithUsername(ctx, sess.Username)
		c.Request = c.Request.WithContext(ctx)

		c.Set(ContextRole, sess.Role)
		c.Set(ContextUsername, sess.Username)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextRole)
		if userRole == "" {
			response.Abort(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message)
			return
		}

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Abort(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message)
	}
}
