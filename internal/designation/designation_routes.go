package designation

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, mw ...gin.HandlerFunc) {
	designations := r.Group("/designations")
	designations.Use(mw...)
	{
		designations.GET("", h.GetOptions)
		designations.GET("/kind", h.GetKind)
	}
}
