package department

import (
	"grainsync-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	mw ...gin.HandlerFunc,
) {
	departments := r.Group("/departments")
	departments.Use(mw...)
	{
		departments.GET("", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetAll)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetById)
		departments.POST("/refresh", middleware.RBACAuthorize(rbacService, "department", "update"), h.Refresh)
	}
}
