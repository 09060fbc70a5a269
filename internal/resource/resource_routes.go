package resource

import (
	"grainsync-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts one group per catalog entry so each is gated on its own permission.
func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	mw ...gin.HandlerFunc,
) {
	resources := r.Group("/resources")
	resources.Use(mw...)

	for _, res := range Catalog() {
		g := resources.Group("/" + res.Name)
		g.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, res.Permission, "read"),
			h.List(res.Name),
		)
		g.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, res.Permission, "read"),
			h.Get(res.Name),
		)
		if res.ReadOnly {
			continue
		}
		g.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, res.Permission, "create"),
			h.Create(res.Name),
		)
		g.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, res.Permission, "update"),
			h.Update(res.Name),
		)
		g.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, res.Permission, "delete"),
			h.Delete(res.Name),
		)
	}
}
