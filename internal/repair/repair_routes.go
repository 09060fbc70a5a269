package repair

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
	repairs := r.Group("/subtype-repairs")
	repairs.Use(mw...)
	{
		repairs.GET("", middleware.RBACAuthorize(rbacService, "subtype_repair", "read"), h.ListPending)
		repairs.GET("/:id", middleware.RBACAuthorize(rbacService, "subtype_repair", "read"), h.GetById)
		repairs.POST("/:id/retry", middleware.RBACAuthorize(rbacService, "subtype_repair", "update"), h.Retry)
		repairs.POST("/:id/resolve", middleware.RBACAuthorize(rbacService, "subtype_repair", "update"), h.Resolve)
	}
}
