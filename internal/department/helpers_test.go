package department_test

import (
	"grainsync-console/internal/session"

	"github.com/gin-gonic/gin"
)

func withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(session.With(c.Request.Context(), session.Session{Role: session.RoleHRManager, Username: "sara"}))
		c.Next()
	}
}
