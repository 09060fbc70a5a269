package employee

import (
	"time"

	"grainsync-console/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb redis.Cmdable,
	mw ...gin.HandlerFunc,
) {
	withIdempotency := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		if rdb == nil {
			return handlers
		}
		return append([]gin.HandlerFunc{middleware.Idempotency(rdb, idempotencyTTL)}, handlers...)
	}

	drafts := r.Group("/employee-drafts")
	drafts.Use(mw...)
	{
		drafts.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			handler.CreateDraft,
		)
		drafts.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			handler.GetDraft,
		)
		drafts.PATCH("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			handler.UpdateDraft,
		)
		drafts.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			handler.DeleteDraft,
		)
		drafts.POST("/:id/submit", withIdempotency(
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			handler.SubmitDraft,
		)...)
	}

	employees := r.Group("/employees")
	employees.Use(mw...)
	{
		employees.POST("", withIdempotency(
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			handler.Create,
		)...)
		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetById,
		)
		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "update"),
			handler.Update,
		)
	}
}
