package user

import (
	"grainsync-console/internal/middleware"
	"grainsync-console/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	mw ...gin.HandlerFunc,
) {
	users := r.Group("/users")
	users.Use(mw...)
	users.Use(middleware.RoleMiddleware(session.RoleAdmin))
	{
		users.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.List,
		)

		users.GET("/unregistered",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.ListUnregistered,
		)

		users.POST("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "user", "create"),
			handler.Register,
		)

		users.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "user", "delete"),
			handler.Delete,
		)

		users.PUT("/:id/make-admin",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "user", "update"),
			handler.MakeAdmin,
		)
	}
}
